package order

import (
	"fmt"

	"kurir/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct operational workflow.
//
// State transitions:
//
//	New ──> Assigned ──> Pickup ──> Dikirim ──> Selesai
//	           │
//	           └──> Assigned (reassignment allowed)
//
//	any non-terminal ──> Cancelled | Rejected
//
// Selesai, Cancelled and Rejected are terminal: no further lifecycle
// transitions are accepted, only settlement mutations remain legal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status: created and not yet assigned to a courier.
	New

	// Assigned indicates a courier has been selected for the order.
	Assigned

	// Pickup indicates the courier has collected the item.
	Pickup

	// Dikirim indicates the item is in transit to the dropoff.
	Dikirim

	// Selesai indicates the order was completed. Terminal.
	Selesai

	// Cancelled indicates the order was cancelled by an admin. Terminal.
	Cancelled

	// Rejected indicates the order was rejected. Terminal.
	Rejected
)

// getStatusStrings returns the wire representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		New:       "NEW",
		Assigned:  "ASSIGNED",
		Pickup:    "PICKUP",
		Dikirim:   "DIKIRIM",
		Selesai:   "SELESAI",
		Cancelled: "CANCELLED",
		Rejected:  "REJECTED",
	}
}

// getValidStatusStrings returns only the valid Status values, excluding Unknown.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "NEW",
		Assigned:  "ASSIGNED",
		Pickup:    "PICKUP",
		Dikirim:   "DIKIRIM",
		Selesai:   "SELESAI",
		Cancelled: "CANCELLED",
		Rejected:  "REJECTED",
	}
}

// forwardTransitions is the directed graph of legal lifecycle moves along the
// default delivery path. Cancelled and Rejected are not listed here: they are
// reachable from any non-terminal status and handled separately.
func forwardTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:      {Assigned},
		Assigned: {Assigned, Pickup},
		Pickup:   {Dikirim},
		Dikirim:  {Selesai},
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status accepts no further lifecycle transitions.
func (s Status) IsTerminal() bool {
	return s == Selesai || s == Cancelled || s == Rejected
}

// CanTransitionTo reports whether a lifecycle move from s to the requested
// status is legal. Re-requesting the current status is always legal: callers
// treat it as an idempotent no-op. Cancel and reject are legal from any
// non-terminal status.
func (s Status) CanTransitionTo(to Status) bool {
	if s == to {
		return true
	}
	if to == Cancelled || to == Rejected {
		return !s.IsTerminal()
	}
	for _, next := range forwardTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns the requested status when the move is legal,
// or an InvalidTransitionError otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}

// ValidateAssign checks whether a courier may be assigned from the current status.
// Assignment is legal for new orders and as reassignment of already assigned ones.
func (s Status) ValidateAssign() error {
	if s != New && s != Assigned {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(), Assigned.String(),
			fmt.Errorf("%s is not a valid status to assign a courier", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates consistency between status and courier assignment:
// unassigned orders must not reference a courier, while orders at or past
// Assigned on the delivery path must.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	switch s {
	case Assigned, Pickup, Dikirim, Selesai:
		if !courier {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have no courier", s.String()),
			)
		}
	case New:
		if courier {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have a courier", s.String()),
			)
		}
	case Cancelled, Rejected, Unknown:
		// Cancelled and rejected orders keep whatever assignment they had.
	}
	return nil
}
