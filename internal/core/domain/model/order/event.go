package order

import (
	"fmt"
	"time"

	"kurir/internal/pkg/errs"
)

// EventKind identifies the type of an audit event.
type EventKind string

// Audit event kinds appended by order mutations.
const (
	EventOrderCreated       EventKind = "ORDER_CREATED"
	EventCourierAssigned    EventKind = "COURIER_ASSIGNED"
	EventStatusChanged      EventKind = "STATUS_CHANGED"
	EventOrderCancelled     EventKind = "ORDER_CANCELLED"
	EventOrderRejected      EventKind = "ORDER_REJECTED"
	EventNonCodMarkedPaid   EventKind = "NONCOD_MARKED_PAID"
	EventNonCodMarkedUnpaid EventKind = "NONCOD_MARKED_UNPAID"
	EventCodSettled         EventKind = "COD_SETTLED"
	EventTalanganReimbursed EventKind = "TALANGAN_REIMBURSED"
	// EventTalanganReversed records the exceptional admin correction that
	// undoes a reimbursement; deliberately distinct from the settlement event.
	EventTalanganReversed EventKind = "TALANGAN_REIMBURSEMENT_REVERSED"
)

// ActorType classifies who performed a mutating operation.
type ActorType string

const (
	ActorAdmin   ActorType = "admin"
	ActorCourier ActorType = "courier"
	ActorSystem  ActorType = "system"
)

// Actor identifies the party behind a mutating call. The engine never infers
// the actor from ambient state: every mutating operation takes one explicitly.
type Actor struct {
	Type ActorType
	ID   string
}

// NewActor creates a validated actor. Admin and courier actors must carry an
// identity; system actors may omit it.
func NewActor(actorType ActorType, id string) (Actor, error) {
	switch actorType {
	case ActorAdmin, ActorCourier:
		if id == "" {
			return Actor{}, errs.NewValueIsRequiredError("actor id")
		}
	case ActorSystem:
	default:
		return Actor{}, errs.NewValueIsInvalidErrorWithCause(
			"actor type",
			fmt.Errorf("%q is not a valid actor type", actorType),
		)
	}
	return Actor{Type: actorType, ID: id}, nil
}

// SystemActor returns the actor used for automated flows.
func SystemActor() Actor {
	return Actor{Type: ActorSystem}
}

// Validate checks the actor carries a known type and, where required, an identity.
func (a Actor) Validate() error {
	_, err := NewActor(a.Type, a.ID)
	return err
}

// Event is a single immutable entry of an order's audit log.
// Events are append-only: once recorded they are never mutated or removed.
type Event struct {
	Kind       EventKind
	OccurredAt time.Time
	Actor      Actor
	Metadata   map[string]string
}

func newEvent(kind EventKind, actor Actor, metadata map[string]string) Event {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return Event{
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Actor:      actor,
		Metadata:   metadata,
	}
}
