package commands

import (
	"errors"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order along its lifecycle, including the
// terminal cancel/reject branches. Assignment is excluded on purpose: putting
// a courier on an order goes through AssignCourierCommand.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	to      order.Status
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move an order to the
// given status.
func NewChangeOrderStatusCommand(orderID kernel.UUID, to order.Status, actor order.Actor) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		to.Validate(),
		actor.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.to = to
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being moved.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// To returns the requested target status.
func (c ChangeOrderStatusCommand) To() order.Status { return c.to }

// Actor returns who is requesting the move.
func (c ChangeOrderStatusCommand) Actor() order.Actor { return c.actor }
