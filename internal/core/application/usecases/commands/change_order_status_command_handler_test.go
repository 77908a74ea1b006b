package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kurir/internal/core/application/usecases/commands"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/errs"
)

func assignedTestOrder(t *testing.T, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := newTestOrder(t, kernel.NewUUID())
	require.NoError(t, o.Assign(courierID, adminActor(t)))
	return o
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Pickup, adminActor(t))

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, order.Pickup, cmd.To())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown, adminActor(t))

		require.Error(t, err)
	})

	t.Run("zero value command does not validate", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}

func TestChangeOrderStatusCommandHandler_Handle_Advance(t *testing.T) {
	ctx := t.Context()
	testOrder := assignedTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Pickup, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pickup
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_Cancel(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Cancelled, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Cancelled
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, kernel.NewUUID()) // still NEW
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Selesai, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_ConcurrentModification(t *testing.T) {
	ctx := t.Context()
	testOrder := assignedTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Pickup, adminActor(t))
	require.NoError(t, err)

	conflict := errs.NewConcurrentModificationError("orderID", testOrder.ID().String())
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.Anything).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrentModification)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeOrderStatusCommandHandler_Handle_RepeatedMoveIsNoOp(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	testOrder := assignedTestOrder(t, courierID)
	require.NoError(t, testOrder.Transition(order.Pickup, adminActor(t)))
	eventsBefore := len(testOrder.Events())

	cmd, err := commands.NewChangeOrderStatusCommand(testOrder.ID(), order.Pickup, adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, testOrder.Events(), eventsBefore)
}
