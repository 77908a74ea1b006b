package commands

import (
	"errors"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand puts a specific courier on a specific order.
// Assignment is an explicit dispatcher decision: the balancer only suggests,
// it never assigns on its own.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actor     order.Actor

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to an order.
func NewAssignCourierCommand(orderID, courierID kernel.UUID, actor order.Actor) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		courierID.Validate(),
		actor.Validate(),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	cmd.orderID = orderID
	cmd.courierID = courierID
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignCourierCommand) OrderID() kernel.UUID { return c.orderID }

// CourierID returns the courier being put on the order.
func (c AssignCourierCommand) CourierID() kernel.UUID { return c.courierID }

// Actor returns who is making the assignment.
func (c AssignCourierCommand) Actor() order.Actor { return c.actor }
