package order_test

import (
	"testing"

	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("creates_valid_line", func(t *testing.T) {
		productID := kernel.NewUUID()

		line, err := order.NewLine(productID, 3)

		require.NoError(t, err)
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, 3, line.Quantity())
		require.NoError(t, line.Validate())
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), 0)
		require.Error(t, err)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), -2)
		require.Error(t, err)
	})

	t.Run("rejects_zero_product_id", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var line order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_created_status", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		lines := []order.Line{mustLine(t, 2), mustLine(t, 5)}

		ord, err := order.NewOrder(id, customerID, lines)

		require.NoError(t, err)
		assert.True(t, ord.ID().IsEqual(id))
		assert.True(t, ord.CustomerID().IsEqual(customerID))
		assert.Equal(t, order.Created, ord.Status())
		assert.Len(t, ord.Lines(), 2)
		require.NoError(t, ord.Validate())
	})

	t.Run("rejects_empty_lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("rejects_invalid_customer_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, []order.Line{mustLine(t, 1)})

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_line", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{{}})

		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("nil_order_fails_validation", func(t *testing.T) {
		var ord *order.Order
		require.ErrorIs(t, ord.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_order_with_status", func(t *testing.T) {
		ord, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Line{mustLine(t, 4)},
			order.Delivered,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, ord.Status())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Line{mustLine(t, 4)},
			order.Unknown,
		)

		require.Error(t, err)
	})
}

func TestOrder_LinesAreFrozen(t *testing.T) {
	original := []order.Line{mustLine(t, 2)}
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), original)
	require.NoError(t, err)

	// Mutating the returned slice must not affect the aggregate.
	leaked := ord.Lines()
	leaked[0] = order.Line{}

	assert.Equal(t, 2, ord.Lines()[0].Quantity())
}

func TestOrder_Lifecycle(t *testing.T) {
	newCreatedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{mustLine(t, 1)})
		require.NoError(t, err)
		return ord
	}

	t.Run("deliver_then_return", func(t *testing.T) {
		ord := newCreatedOrder(t)

		require.NoError(t, ord.Deliver())
		assert.Equal(t, order.Delivered, ord.Status())

		require.NoError(t, ord.Return())
		assert.Equal(t, order.Returned, ord.Status())
	})

	t.Run("cancel_blocks_delivery", func(t *testing.T) {
		ord := newCreatedOrder(t)

		require.NoError(t, ord.Cancel())
		assert.Equal(t, order.Canceled, ord.Status())

		require.ErrorIs(t, ord.Deliver(), order.ErrOrderCanceled)
		assert.Equal(t, order.Canceled, ord.Status())
	})

	t.Run("delivery_blocks_cancel", func(t *testing.T) {
		ord := newCreatedOrder(t)

		require.NoError(t, ord.Deliver())
		require.ErrorIs(t, ord.Cancel(), order.ErrOrderAlreadyDelivered)
		assert.Equal(t, order.Delivered, ord.Status())
	})

	t.Run("return_requires_delivery", func(t *testing.T) {
		ord := newCreatedOrder(t)

		require.ErrorIs(t, ord.Return(), order.ErrOrderNotDeliveredYet)
		assert.Equal(t, order.Created, ord.Status())
	})

	t.Run("second_return_is_rejected", func(t *testing.T) {
		ord := newCreatedOrder(t)

		require.NoError(t, ord.Deliver())
		require.NoError(t, ord.Return())

		require.Error(t, ord.Return())
		assert.Equal(t, order.Returned, ord.Status())
	})
}
