package product_test

import (
	"testing"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(2599, kernel.RON)
	require.NoError(t, err)
	return price
}

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Keyboard", "Mechanical keyboard", mustPrice(t), stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates_valid_product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "SKU-001", "Keyboard", "Mechanical keyboard", mustPrice(t), 5)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "SKU-001", p.Code())
		assert.Equal(t, "Keyboard", p.Name())
		assert.Equal(t, "Mechanical keyboard", p.Description())
		assert.Equal(t, 5, p.AvailableQuantity())
		require.NoError(t, p.Validate())
	})

	t.Run("rejects_empty_code", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "Keyboard", "", mustPrice(t), 5)
		require.ErrorIs(t, err, product.ErrCodeIsRequired)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "", "", mustPrice(t), 5)
		require.ErrorIs(t, err, product.ErrNameIsRequired)
	})

	t.Run("rejects_negative_stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Keyboard", "", mustPrice(t), -1)
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "SKU-001", "Keyboard", "", kernel.Money{}, 5)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_HasSufficientStock(t *testing.T) {
	p := newTestProduct(t, 5)

	assert.True(t, p.HasSufficientStock(1))
	assert.True(t, p.HasSufficientStock(5))
	assert.False(t, p.HasSufficientStock(6))
	assert.False(t, p.HasSufficientStock(0))
	assert.False(t, p.HasSufficientStock(-1))
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("decrements_stock", func(t *testing.T) {
		p := newTestProduct(t, 5)

		require.NoError(t, p.Reserve(3))

		assert.Equal(t, 2, p.AvailableQuantity())
	})

	t.Run("can_drain_stock_to_zero", func(t *testing.T) {
		p := newTestProduct(t, 2)

		require.NoError(t, p.Reserve(2))

		assert.Equal(t, 0, p.AvailableQuantity())
	})

	t.Run("fails_on_shortfall_without_mutating", func(t *testing.T) {
		p := newTestProduct(t, 2)

		require.ErrorIs(t, p.Reserve(3), product.ErrInsufficientStock)

		assert.Equal(t, 2, p.AvailableQuantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		p := newTestProduct(t, 2)

		require.Error(t, p.Reserve(0))
		require.Error(t, p.Reserve(-1))
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("increments_stock", func(t *testing.T) {
		p := newTestProduct(t, 2)

		require.NoError(t, p.Release(3))

		assert.Equal(t, 5, p.AvailableQuantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		p := newTestProduct(t, 2)

		require.Error(t, p.Release(0))
	})
}

func TestProduct_ReserveReleaseRoundTrip(t *testing.T) {
	p := newTestProduct(t, 7)

	require.NoError(t, p.Reserve(4))
	require.NoError(t, p.Release(4))

	assert.Equal(t, 7, p.AvailableQuantity())
}

func TestProduct_Rename(t *testing.T) {
	p := newTestProduct(t, 1)

	require.NoError(t, p.Rename("Ergonomic keyboard", "Split layout"))
	assert.Equal(t, "Ergonomic keyboard", p.Name())
	assert.Equal(t, "Split layout", p.Description())

	require.ErrorIs(t, p.Rename("", ""), product.ErrNameIsRequired)
}

func TestProduct_ChangePrice(t *testing.T) {
	p := newTestProduct(t, 1)

	newPrice, err := kernel.NewMoney(999, kernel.EUR)
	require.NoError(t, err)

	require.NoError(t, p.ChangePrice(newPrice))
	assert.True(t, p.Price().IsEqual(newPrice))

	require.Error(t, p.ChangePrice(kernel.Money{}))
}
