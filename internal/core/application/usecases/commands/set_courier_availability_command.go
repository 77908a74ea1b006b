package commands

import (
	"errors"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand flips a courier's online flag. The flag only
// affects ranking: an offline courier can still be assigned explicitly.
type SetCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	online    bool

	guard guard.ConstructorGuard
}

// NewSetCourierAvailabilityCommand creates a command to set a courier's
// online flag.
func NewSetCourierAvailabilityCommand(courierID kernel.UUID, online bool) (SetCourierAvailabilityCommand, error) {
	cmd := SetCourierAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}

	cmd.courierID = courierID
	cmd.online = online
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

// CourierID returns the courier whose flag is being set.
func (c SetCourierAvailabilityCommand) CourierID() kernel.UUID { return c.courierID }

// Online returns the requested flag value.
func (c SetCourierAvailabilityCommand) Online() bool { return c.online }
