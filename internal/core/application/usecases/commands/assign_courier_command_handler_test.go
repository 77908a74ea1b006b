package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kurir/internal/core/application/usecases/commands"
	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/errs"
)

func TestNewAssignCourierCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		orderID := kernel.NewUUID()
		courierID := kernel.NewUUID()

		cmd, err := commands.NewAssignCourierCommand(orderID, courierID, adminActor(t))

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, courierID, cmd.CourierID())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewAssignCourierCommand(kernel.UUID{}, kernel.NewUUID(), adminActor(t))

		require.Error(t, err)
	})

	t.Run("zero value command does not validate", func(t *testing.T) {
		var cmd commands.AssignCourierCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignCourierCommandIsNotConstructed)
	})
}

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	assignee := newTestCourier(t, true)
	testOrder := newTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), assignee.ID(), adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Assigned && o.Courier() != nil && o.Courier().IsEqual(assignee.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyCourierAssigned", ctx, testOrder.ID(), assignee.ID(), assignee.Name()).
		Return(nil).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	assignee := newTestCourier(t, true)
	testOrder := newTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), assignee.ID(), adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyCourierAssigned", ctx, testOrder.ID(), assignee.ID(), assignee.Name()).
		Return(assert.AnError).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, notifier, nil)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_DeactivatedCourier(t *testing.T) {
	ctx := t.Context()
	deactivated, err := courier.RestoreCourier(kernel.NewUUID(), "Budi", false, false)
	require.NoError(t, err)
	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID(), deactivated.ID(), adminActor(t))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, deactivated.ID()).Return(deactivated, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, courier.ErrCourierIsNotActive)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignCourierCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	assignee := newTestCourier(t, true)
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(orderID, assignee.ID(), adminActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignCourierCommandHandler_Handle_CourierActorForbidden(t *testing.T) {
	ctx := t.Context()
	assignee := newTestCourier(t, true)
	testOrder := newTestOrder(t, kernel.NewUUID())
	courierActor, err := order.NewActor(order.ActorCourier, assignee.ID().String())
	require.NoError(t, err)
	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), assignee.ID(), courierActor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory, nil, nil)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrActorIsNotAllowed)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
