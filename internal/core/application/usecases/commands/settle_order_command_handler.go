package commands

import (
	"context"
)

// SettleOrderCommandHandler applies settlement toggles to orders.
// The aggregate enforces the preconditions per track; the handler only
// routes the command and keeps the conditional-write discipline.
type SettleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSettleOrderCommandHandler creates a handler for settlement operations.
func NewSettleOrderCommandHandler(uowFactory OrderUoWFactory) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
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

	switch cmd.Track() {
	case TrackNonCodFee:
		err = aggregate.MarkNonCodPaid(cmd.Settled(), cmd.Actor())
	case TrackCod:
		err = aggregate.MarkCodPaid(cmd.Actor())
	case TrackTalangan:
		if cmd.Settled() {
			err = aggregate.MarkTalanganReimbursed(cmd.Actor())
		} else {
			err = aggregate.ReverseTalanganReimbursement(cmd.Actor())
		}
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
