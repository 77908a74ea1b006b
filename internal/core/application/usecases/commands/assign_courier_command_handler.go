package commands

import (
	"context"
	"errors"
	"log/slog"

	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/ports"
)

// AssignCourierCommandHandler loads the order and the courier in one
// transaction, applies the assignment, and announces it afterwards.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	log        *slog.Logger
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
// The notifier may be nil when no notification channel is configured.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, notifier ports.Notifier, log *slog.Logger) AssignCourierCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "assign_courier"),
	}
}

// Handle processes the assignment command.
//
// Both aggregates are loaded inside the transaction so the courier's active
// flag and the order's status are checked against committed state. The
// notification runs after commit and is best effort: its failure is logged,
// never returned, and never rolls the assignment back.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return courier.ErrCourierIsNotActive
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(assignee.ID(), cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyAssigned(ctx, cmd, assignee)
	return nil
}

func (h AssignCourierCommandHandler) notifyAssigned(ctx context.Context, cmd AssignCourierCommand, assignee *courier.Courier) {
	if h.notifier == nil {
		return
	}
	err := h.notifier.NotifyCourierAssigned(ctx, cmd.OrderID(), assignee.ID(), assignee.Name())
	if err != nil && !errors.Is(err, context.Canceled) {
		h.log.Warn("assignment notification failed",
			"order_id", cmd.OrderID().String(),
			"courier_id", assignee.ID().String(),
			"error", err)
	}
}
