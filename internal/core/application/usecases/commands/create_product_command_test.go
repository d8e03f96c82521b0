package commands_test

import (
	"testing"

	"onlineshop/internal/core/application/usecases/commands"
	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(2499, kernel.EUR)
	require.NoError(t, err)
	return price
}

func TestNewCreateProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(
		productID, "KB-42", "Keyboard", "Mechanical, tenkeyless", testPrice(t), 25)

	require.NoError(t, err)
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.Equal(t, "KB-42", cmd.Code())
	assert.Equal(t, "Keyboard", cmd.Name())
	assert.Equal(t, "Mechanical, tenkeyless", cmd.Description())
	assert.Equal(t, 25, cmd.Stock())
}

func TestNewCreateProductCommand_ZeroStockIsAllowed(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "KB-42", "Keyboard", "", testPrice(t), 0)

	require.NoError(t, err)
}

func TestNewCreateProductCommand_NegativeStock(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "KB-42", "Keyboard", "", testPrice(t), -1)

	require.Error(t, err)
}

func TestNewCreateProductCommand_EmptyCode(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "", "Keyboard", "", testPrice(t), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrCodeIsRequired)
}

func TestNewCreateProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "KB-42", "", "", testPrice(t), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrNameIsRequired)
}

func TestNewCreateProductCommand_InvalidPrice(t *testing.T) {
	_, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "KB-42", "Keyboard", "", kernel.Money{}, 10)

	require.Error(t, err)
}

func TestCreateProductCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateProductCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
}

func TestNewUpdateProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()

	cmd, err := commands.NewUpdateProductCommand(productID, "Keyboard v2", "Updated", testPrice(t))

	require.NoError(t, err)
	assert.True(t, cmd.ProductID().IsEqual(productID))
	assert.Equal(t, "Keyboard v2", cmd.Name())
	assert.Equal(t, "Updated", cmd.Description())
}

func TestNewUpdateProductCommand_EmptyName(t *testing.T) {
	_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), "", "", testPrice(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrNameIsRequired)
}

func TestUpdateProductCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.UpdateProductCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateProductCommandIsNotConstructed)
}

func TestNewDeleteProductCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDeleteProductCommand("KB-42")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "KB-42", cmd.Code())
}

func TestNewDeleteProductCommand_EmptyCode(t *testing.T) {
	_, err := commands.NewDeleteProductCommand("")

	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrCodeIsRequired)
}

func TestDeleteProductCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.DeleteProductCommand{}

	err := cmd.Validate()

	require.ErrorIs(t, err, commands.ErrDeleteProductCommandIsNotConstructed)
}
