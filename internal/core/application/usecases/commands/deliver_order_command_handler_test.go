package commands_test

import (
	"context"
	"errors"
	"testing"

	"onlineshop/internal/core/application/usecases/commands"
	"onlineshop/internal/core/domain/model/kernel"
	"onlineshop/internal/core/domain/model/order"
	"onlineshop/internal/core/ports"
	"onlineshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func testOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 2)
	require.NoError(t, err)
	ord, err := order.RestoreOrder(id, kernel.NewUUID(), []order.Line{line}, status)
	require.NoError(t, err)
	return ord
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, err := commands.NewDeliverOrderCommand(orderID, userID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(testOrder(t, orderID, order.Created), nil).Once(),
		repo.On("UpdateStatus", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Delivered
		}), order.Created).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	events := new(MockOrderEventPublisher)
	events.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Type == ports.OrderDeliveredEvent && e.OrderID.IsEqual(orderID)
	})).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, events)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeliverOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewDeliverOrderCommandHandler(factory, new(MockOrderEventPublisher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestDeliverOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeliverOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeliverOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(testOrder(t, orderID, order.Delivered), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_CanceledOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeliverOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(testOrder(t, orderID, order.Canceled), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderCanceled)
	uow.AssertExpectations(t)
}

// Losing the status race surfaces as a version conflict and no event is
// published.
func TestDeliverOrderCommandHandler_Handle_ConcurrentStatusChange(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeliverOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(testOrder(t, orderID, order.Created), nil).Once(),
		repo.On("UpdateStatus", ctx, mock.Anything, order.Created).
			Return(errs.NewVersionIsInvalidErrorWithCause("order status")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	events := new(MockOrderEventPublisher)

	h := commands.NewDeliverOrderCommandHandler(factory, events)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeliverOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewDeliverOrderCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
