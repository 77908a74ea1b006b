package order

import (
	"errors"
	"fmt"
	"time"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrActorIsNotAllowed is returned when the actor may not perform the
	// requested operation on this order.
	ErrActorIsNotAllowed = errors.New("actor is not allowed to perform this operation")
)

// Order is the aggregate root for a single delivery request. It owns the
// lifecycle state machine, the append-only audit log and the settlement
// ledger for the three money tracks:
//
//   - ongkir: the delivery fee, settled via the non-COD flag or bundled into COD
//   - COD proceeds: cash the courier collects and later remits
//   - dana talangan: funds the courier fronts and is later reimbursed for
//
// All fields are private; every mutation is a validated method that appends
// exactly one audit event, and failed mutations leave the order untouched.
type Order struct {
	id        kernel.UUID
	createdAt time.Time

	sender  Sender
	pickup  Stop
	dropoff Stop

	kind   Kind
	tier   ServiceTier
	addOns AddOns

	courierID *kernel.UUID
	status    Status

	ongkir        int64
	ongkirPayment PaymentMode
	codNominal    int64
	codPaid       bool
	nonCodPaid    bool

	danaTalangan       int64
	talanganReimbursed bool

	// version is the optimistic concurrency token maintained by persistence.
	version int

	events  []Event
	pending []Event

	isConstructed bool
}

// NewOrderParams carries everything needed to create an order.
type NewOrderParams struct {
	ID      kernel.UUID
	Sender  Sender
	Pickup  Stop
	Dropoff Stop
	Kind    Kind
	Tier    ServiceTier
	AddOns  AddOns

	// Ongkir is the delivery fee in integer rupiah. It must not be below
	// MinimumOngkir: the engine rejects low values instead of clamping.
	Ongkir        int64
	MinimumOngkir int64
	OngkirPayment PaymentMode
	CODNominal    int64
	DanaTalangan  int64

	// Courier optionally pre-selects a courier. The audit log still records
	// ORDER_CREATED followed by COURIER_ASSIGNED, never a silent skip.
	Courier *kernel.UUID

	Actor Actor
}

// NewOrder creates a new Order in NEW status, appending the ORDER_CREATED
// audit event, and immediately assigns the pre-selected courier when one is
// given. All invariants of the data model are validated before any state is
// produced.
func NewOrder(p NewOrderParams) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
		createdAt:     time.Now().UTC(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setSender(p.Sender),
		o.setStops(p.Pickup, p.Dropoff),
		o.setClassification(p.Kind, p.Tier, p.AddOns),
		o.setMoney(p.Ongkir, p.MinimumOngkir, p.OngkirPayment, p.CODNominal, p.DanaTalangan),
		p.Actor.Validate(),
	); err != nil {
		return nil, err
	}

	o.appendEvent(EventOrderCreated, p.Actor, map[string]string{
		"kind":   o.kind.String(),
		"tier":   o.tier.String(),
		"ongkir": fmt.Sprintf("%d", o.ongkir),
	})

	if p.Courier != nil {
		if err := o.Assign(*p.Courier, p.Actor); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	CreatedAt          time.Time
	Sender             Sender
	Pickup             Stop
	Dropoff            Stop
	Kind               Kind
	Tier               ServiceTier
	AddOns             AddOns
	CourierID          *kernel.UUID
	Status             Status
	Ongkir             int64
	OngkirPayment      PaymentMode
	CODNominal         int64
	CODPaid            bool
	NonCodPaid         bool
	DanaTalangan       int64
	TalanganReimbursed bool
	Version            int
	Events             []Event
}

// RestoreOrder reconstructs an Order from persistence. The minimum-fee floor
// is not re-checked here: stored orders may predate a tariff change. Derived
// flags are re-validated so a drifted record cannot be loaded.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Status.Validate(),
		p.Status.ValidateCanHaveCourier(p.CourierID != nil),
		p.Kind.Validate(),
		p.Tier.Validate(),
		p.OngkirPayment.Validate(),
	); err != nil {
		return nil, err
	}

	if p.CODNominal == 0 && p.CODPaid {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"codPaid", errors.New("codPaid is set while cod nominal is 0"))
	}
	if p.OngkirPayment == PayCOD && p.NonCodPaid {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"nonCodPaid", errors.New("nonCodPaid is set on a COD-paid order"))
	}
	if p.DanaTalangan == 0 && p.TalanganReimbursed {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"talanganReimbursed", errors.New("talanganReimbursed is set while dana talangan is 0"))
	}

	return &Order{
		id:                 p.ID,
		createdAt:          p.CreatedAt,
		sender:             p.Sender,
		pickup:             p.Pickup,
		dropoff:            p.Dropoff,
		kind:               p.Kind,
		tier:               p.Tier,
		addOns:             p.AddOns,
		courierID:          p.CourierID,
		status:             p.Status,
		ongkir:             p.Ongkir,
		ongkirPayment:      p.OngkirPayment,
		codNominal:         p.CODNominal,
		codPaid:            p.CODPaid,
		nonCodPaid:         p.NonCodPaid,
		danaTalangan:       p.DanaTalangan,
		talanganReimbursed: p.TalanganReimbursed,
		version:            p.Version,
		events:             p.Events,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Sender returns the requesting customer.
func (o *Order) Sender() Sender { return o.sender }

// Pickup returns the pickup stop.
func (o *Order) Pickup() Stop { return o.pickup }

// Dropoff returns the dropoff stop.
func (o *Order) Dropoff() Stop { return o.dropoff }

// Kind returns the order classification.
func (o *Order) Kind() Kind { return o.kind }

// Tier returns the service tier.
func (o *Order) Tier() ServiceTier { return o.tier }

// AddOns returns the informational add-on flags.
func (o *Order) AddOns() AddOns { return o.addOns }

// Courier returns the assigned courier's ID, or nil when unassigned.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Ongkir returns the delivery fee in integer rupiah.
func (o *Order) Ongkir() int64 { return o.ongkir }

// OngkirPayment returns how the delivery fee is paid.
func (o *Order) OngkirPayment() PaymentMode { return o.ongkirPayment }

// CODNominal returns the cash-on-delivery amount to collect.
func (o *Order) CODNominal() int64 { return o.codNominal }

// IsCOD reports whether the order involves a COD collection.
// The flag is derived from the nominal, never stored independently.
func (o *Order) IsCOD() bool { return o.codNominal > 0 }

// CODPaid reports whether collected COD cash has been remitted.
func (o *Order) CODPaid() bool { return o.codPaid }

// NonCodPaid reports whether a separately paid ongkir has been settled.
func (o *Order) NonCodPaid() bool { return o.nonCodPaid }

// DanaTalangan returns the advance float the courier fronts.
func (o *Order) DanaTalangan() int64 { return o.danaTalangan }

// TalanganReimbursed reports whether the advance float has been paid back.
func (o *Order) TalanganReimbursed() bool { return o.talanganReimbursed }

// Version returns the optimistic concurrency token loaded from persistence.
func (o *Order) Version() int { return o.version }

// Events returns a copy of the full audit log in append order.
func (o *Order) Events() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// PendingEvents returns audit events appended since the last flush,
// in append order. The repository persists and then flushes them.
func (o *Order) PendingEvents() []Event {
	out := make([]Event, len(o.pending))
	copy(out, o.pending)
	return out
}

// MarkEventsFlushed clears the pending event buffer after persistence.
func (o *Order) MarkEventsFlushed() {
	o.pending = nil
}

// Assign assigns or reassigns the order to a courier and moves the status to
// Assigned. Only admins and automated flows may assign; requesting the courier
// that is already assigned is an idempotent no-op.
func (o *Order) Assign(courierID kernel.UUID, actor Actor) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Type == ActorCourier {
		return fmt.Errorf("%w: courier cannot assign orders", ErrActorIsNotAllowed)
	}
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	if o.courierID != nil && o.courierID.IsEqual(courierID) {
		return nil
	}

	o.status = Assigned
	o.courierID = &courierID
	o.appendEvent(EventCourierAssigned, actor, map[string]string{
		"courier_id": courierID.String(),
	})
	return nil
}

// Transition requests a lifecycle move to the given status.
//
// Re-requesting the current status is an idempotent no-op success that appends
// no event, supporting retried client requests. Cancel and reject are legal
// from any non-terminal status and restricted to admins. Couriers may only
// advance the delivery path of orders assigned to them. Transitioning a
// terminal order fails with an InvalidTransitionError.
func (o *Order) Transition(to Status, actor Actor) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if to == o.status {
		return nil
	}

	if to == Assigned {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), to.String(),
			errors.New("assignment requires a courier, use Assign"),
		)
	}

	if err := o.authorizeTransition(to, actor); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus

	switch to {
	case Cancelled:
		o.appendEvent(EventOrderCancelled, actor, map[string]string{"from": from.String()})
	case Rejected:
		o.appendEvent(EventOrderRejected, actor, map[string]string{"from": from.String()})
	default:
		o.appendEvent(EventStatusChanged, actor, map[string]string{
			"from": from.String(),
			"to":   to.String(),
		})
	}
	return nil
}

// Cancel moves the order to the Cancelled terminal status.
func (o *Order) Cancel(actor Actor) error {
	return o.Transition(Cancelled, actor)
}

// Reject moves the order to the Rejected terminal status.
func (o *Order) Reject(actor Actor) error {
	return o.Transition(Rejected, actor)
}

func (o *Order) authorizeTransition(to Status, actor Actor) error {
	switch actor.Type {
	case ActorAdmin, ActorSystem:
		return nil
	case ActorCourier:
		if to == Cancelled || to == Rejected {
			return fmt.Errorf("%w: only admins may cancel or reject", ErrActorIsNotAllowed)
		}
		if o.courierID == nil || actor.ID != o.courierID.String() {
			return fmt.Errorf("%w: order is not assigned to courier %s", ErrActorIsNotAllowed, actor.ID)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown actor type %q", ErrActorIsNotAllowed, actor.Type)
	}
}

// MarkNonCodPaid records whether the separately paid ongkir has been settled.
// Valid only when the ongkir is paid NON_COD and no COD collection exists; on
// a COD order the call fails with an InvalidSettlementContextError and the
// flag stays untouched. Settlement is independent of lifecycle status and
// remains legal on terminal orders.
func (o *Order) MarkNonCodPaid(paid bool, actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.authorizeSettlement(actor); err != nil {
		return err
	}
	if o.ongkirPayment != PayNonCOD || o.codNominal > 0 {
		return errs.NewInvalidSettlementContextErrorWithCause(
			"ongkir",
			errors.New("non-COD fee settlement requires NON_COD payment and zero COD nominal"),
		)
	}

	if o.nonCodPaid == paid {
		return nil
	}

	o.nonCodPaid = paid
	kind := EventNonCodMarkedPaid
	if !paid {
		kind = EventNonCodMarkedUnpaid
	}
	o.appendEvent(kind, actor, nil)
	return nil
}

// MarkCodPaid records that the courier remitted the collected COD cash.
// Valid only for COD orders; already settled is an idempotent no-op.
func (o *Order) MarkCodPaid(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.authorizeSettlement(actor); err != nil {
		return err
	}
	if !o.IsCOD() {
		return errs.NewInvalidSettlementContextErrorWithCause(
			"cod", errors.New("order has no COD nominal"))
	}

	if o.codPaid {
		return nil
	}

	o.codPaid = true
	o.appendEvent(EventCodSettled, actor, map[string]string{
		"nominal": fmt.Sprintf("%d", o.codNominal),
	})
	return nil
}

// MarkTalanganReimbursed records that the courier's advance float was paid
// back. Valid only when the order carries dana talangan.
func (o *Order) MarkTalanganReimbursed(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := o.authorizeSettlement(actor); err != nil {
		return err
	}
	if o.danaTalangan == 0 {
		return errs.NewInvalidSettlementContextErrorWithCause(
			"talangan", errors.New("order has no dana talangan"))
	}

	if o.talanganReimbursed {
		return nil
	}

	o.talanganReimbursed = true
	o.appendEvent(EventTalanganReimbursed, actor, map[string]string{
		"nominal": fmt.Sprintf("%d", o.danaTalangan),
	})
	return nil
}

// ReverseTalanganReimbursement undoes a recorded reimbursement. This is an
// exceptional admin correction and is logged with its own event kind,
// distinct from the original settlement.
func (o *Order) ReverseTalanganReimbursement(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Type != ActorAdmin {
		return fmt.Errorf("%w: only admins may reverse a reimbursement", ErrActorIsNotAllowed)
	}
	if o.danaTalangan == 0 || !o.talanganReimbursed {
		return errs.NewInvalidSettlementContextErrorWithCause(
			"talangan", errors.New("no reimbursement recorded to reverse"))
	}

	o.talanganReimbursed = false
	o.appendEvent(EventTalanganReversed, actor, map[string]string{
		"nominal": fmt.Sprintf("%d", o.danaTalangan),
	})
	return nil
}

func (o *Order) authorizeSettlement(actor Actor) error {
	if actor.Type != ActorAdmin {
		return fmt.Errorf("%w: settlement is an admin action", ErrActorIsNotAllowed)
	}
	return nil
}

func (o *Order) appendEvent(kind EventKind, actor Actor, metadata map[string]string) {
	e := newEvent(kind, actor, metadata)
	o.events = append(o.events, e)
	o.pending = append(o.pending, e)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSender(s Sender) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.sender = s
	return nil
}

func (o *Order) setStops(pickup, dropoff Stop) error {
	if err := pickup.Validate(); err != nil {
		return fmt.Errorf("pickup: %w", err)
	}
	if err := dropoff.Validate(); err != nil {
		return fmt.Errorf("dropoff: %w", err)
	}
	o.pickup = pickup
	o.dropoff = dropoff
	return nil
}

func (o *Order) setClassification(kind Kind, tier ServiceTier, addOns AddOns) error {
	if err := errors.Join(kind.Validate(), tier.Validate(), addOns.Validate()); err != nil {
		return err
	}
	o.kind = kind
	o.tier = tier
	o.addOns = addOns
	return nil
}

func (o *Order) setMoney(ongkir, minimumOngkir int64, mode PaymentMode, codNominal, danaTalangan int64) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if minimumOngkir < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"minimum ongkir", fmt.Errorf("%d is negative", minimumOngkir))
	}
	if ongkir < minimumOngkir {
		return errs.NewValueIsInvalidErrorWithCause(
			"ongkir", fmt.Errorf("%d is below the configured minimum %d", ongkir, minimumOngkir))
	}
	if codNominal < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cod nominal", fmt.Errorf("%d is negative", codNominal))
	}
	if danaTalangan < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dana talangan", fmt.Errorf("%d is negative", danaTalangan))
	}

	o.ongkir = ongkir
	o.ongkirPayment = mode
	o.codNominal = codNominal
	o.danaTalangan = danaTalangan
	return nil
}
