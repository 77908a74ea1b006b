// Package courier provides the courier aggregate. The engine only needs a
// courier's identity and availability flags for assignment ranking:
// courier-owned data such as vehicles and documents lives elsewhere.
package courier

import (
	"errors"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/pkg/errs"
	"kurir/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
	// ErrCourierIsNotActive is returned when assigning work to a deactivated courier.
	ErrCourierIsNotActive = errors.New("courier is not active")
)

// Courier represents a delivery courier available for assignment.
//
//   - active: the courier is part of the fleet; deactivated couriers never
//     receive assignments.
//   - online: the courier is currently on shift. Ranking prefers online
//     couriers but an admin may still assign an offline one explicitly.
type Courier struct {
	id     kernel.UUID
	name   string
	active bool
	online bool

	guard guard.ConstructorGuard
}

// NewCourier creates an active, offline courier.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Courier{
		id:     id,
		name:   name,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(id kernel.UUID, name string, active, online bool) (*Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Courier{
		id:     id,
		name:   name,
		active: active,
		online: online,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// IsActive reports whether the courier is part of the fleet.
func (c *Courier) IsActive() bool { return c.active }

// IsOnline reports whether the courier is currently on shift.
func (c *Courier) IsOnline() bool { return c.online }

// GoOnline marks the courier as on shift.
func (c *Courier) GoOnline() error {
	if !c.active {
		return ErrCourierIsNotActive
	}
	c.online = true
	return nil
}

// GoOffline marks the courier as off shift.
func (c *Courier) GoOffline() {
	c.online = false
}

// Deactivate removes the courier from the fleet and takes them off shift.
func (c *Courier) Deactivate() {
	c.active = false
	c.online = false
}

// Activate returns the courier to the fleet, initially offline.
func (c *Courier) Activate() {
	c.active = true
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}
