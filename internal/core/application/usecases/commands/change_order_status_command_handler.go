package commands

import (
	"context"

	"kurir/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies lifecycle moves against committed
// state. The order is loaded and mutated inside one transaction, and the
// repository's conditional write surfaces errs.ErrConcurrentModification
// when a concurrent writer got there first; callers may simply retry.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for lifecycle moves.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command. Repeating a move the order has
// already made is a no-op success, which makes double-submitted UI actions
// harmless.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.To() {
	case order.Cancelled:
		err = aggregate.Cancel(cmd.Actor())
	case order.Rejected:
		err = aggregate.Reject(cmd.Actor())
	default:
		err = aggregate.Transition(cmd.To(), cmd.Actor())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
