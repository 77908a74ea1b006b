package commands

import (
	"errors"

	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/pkg/errs"
	"kurir/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrCoordinatesIncomplete is returned when only one of the two stops
	// carries coordinates. Fee legs need both points or neither.
	ErrCoordinatesIncomplete = errors.New("pickup and dropoff coordinates must be given together")
	// ErrOngkirUnresolvable is returned when neither coordinates nor an
	// explicit ongkir were supplied, leaving no way to price the job.
	ErrOngkirUnresolvable = errors.New("either stop coordinates or an explicit ongkir is required")
)

// CreateOrderCommandParams carries everything needed to register a new job.
type CreateOrderCommandParams struct {
	OrderID kernel.UUID
	Sender  order.Sender
	Pickup  order.Stop
	Dropoff order.Stop

	// PickupPoint and DropoffPoint are optional: dispatchers often only have
	// a street address and a map link. When absent, ExplicitOngkir is
	// mandatory since the fee cannot be computed.
	PickupPoint  *kernel.GeoPoint
	DropoffPoint *kernel.GeoPoint

	Kind   order.Kind
	Tier   order.ServiceTier
	AddOns order.AddOns

	OngkirPayment order.PaymentMode
	CODNominal    int64
	DanaTalangan  int64

	// ExplicitOngkir overrides the computed fee when set.
	ExplicitOngkir *int64

	// Courier optionally pre-selects a courier at intake.
	Courier *kernel.UUID

	Actor order.Actor
}

// CreateOrderCommand represents a request to register a new delivery job.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	sender        order.Sender
	pickup        order.Stop
	dropoff       order.Stop
	pickupPoint   *kernel.GeoPoint
	dropoffPoint  *kernel.GeoPoint
	kind          order.Kind
	tier          order.ServiceTier
	addOns        order.AddOns
	ongkirPayment order.PaymentMode
	codNominal    int64
	danaTalangan  int64
	explicitFee   *int64
	courierID     *kernel.UUID
	actor         order.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new job.
// Validates every field eagerly so the handler only deals with well-formed
// input; monetary floors are the aggregate's concern, not the command's.
func NewCreateOrderCommand(p CreateOrderCommandParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(p.OrderID),
		cmd.setSender(p.Sender),
		cmd.setStops(p.Pickup, p.Dropoff),
		cmd.setPoints(p.PickupPoint, p.DropoffPoint),
		cmd.setClassification(p.Kind, p.Tier, p.AddOns),
		cmd.setMoney(p.OngkirPayment, p.CODNominal, p.DanaTalangan, p.ExplicitOngkir),
		cmd.setCourier(p.Courier),
		cmd.setActor(p.Actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if cmd.pickupPoint == nil && cmd.explicitFee == nil {
		return CreateOrderCommand{}, ErrOngkirUnresolvable
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Sender returns the requesting merchant or customer.
func (c CreateOrderCommand) Sender() order.Sender { return c.sender }

// Pickup returns the pickup stop.
func (c CreateOrderCommand) Pickup() order.Stop { return c.pickup }

// Dropoff returns the dropoff stop.
func (c CreateOrderCommand) Dropoff() order.Stop { return c.dropoff }

// PickupPoint returns the pickup coordinates, nil when not supplied.
func (c CreateOrderCommand) PickupPoint() *kernel.GeoPoint { return c.pickupPoint }

// DropoffPoint returns the dropoff coordinates, nil when not supplied.
func (c CreateOrderCommand) DropoffPoint() *kernel.GeoPoint { return c.dropoffPoint }

// Kind returns the job kind.
func (c CreateOrderCommand) Kind() order.Kind { return c.kind }

// Tier returns the service tier.
func (c CreateOrderCommand) Tier() order.ServiceTier { return c.tier }

// AddOns returns the requested add-ons.
func (c CreateOrderCommand) AddOns() order.AddOns { return c.addOns }

// OngkirPayment returns how the delivery fee is paid.
func (c CreateOrderCommand) OngkirPayment() order.PaymentMode { return c.ongkirPayment }

// CODNominal returns the amount to collect on delivery, 0 for non-COD jobs.
func (c CreateOrderCommand) CODNominal() int64 { return c.codNominal }

// DanaTalangan returns the advance float the courier will front.
func (c CreateOrderCommand) DanaTalangan() int64 { return c.danaTalangan }

// ExplicitOngkir returns the dispatcher-set fee override, nil when the fee
// should be computed from the route.
func (c CreateOrderCommand) ExplicitOngkir() *int64 { return c.explicitFee }

// Courier returns the pre-selected courier, nil when none.
func (c CreateOrderCommand) Courier() *kernel.UUID { return c.courierID }

// Actor returns who is creating the order.
func (c CreateOrderCommand) Actor() order.Actor { return c.actor }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setSender(s order.Sender) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.sender = s
	return nil
}

func (c *CreateOrderCommand) setStops(pickup, dropoff order.Stop) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}
	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

func (c *CreateOrderCommand) setPoints(pickup, dropoff *kernel.GeoPoint) error {
	if (pickup == nil) != (dropoff == nil) {
		return ErrCoordinatesIncomplete
	}
	if pickup == nil {
		return nil
	}
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}
	c.pickupPoint = pickup
	c.dropoffPoint = dropoff
	return nil
}

func (c *CreateOrderCommand) setClassification(kind order.Kind, tier order.ServiceTier, addOns order.AddOns) error {
	if err := errors.Join(kind.Validate(), tier.Validate(), addOns.Validate()); err != nil {
		return err
	}
	c.kind = kind
	c.tier = tier
	c.addOns = addOns
	return nil
}

func (c *CreateOrderCommand) setMoney(mode order.PaymentMode, codNominal, danaTalangan int64, explicitFee *int64) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if codNominal < 0 {
		return errs.NewValueIsOutOfRangeError("codNominal", codNominal, 0, "unbounded")
	}
	if danaTalangan < 0 {
		return errs.NewValueIsOutOfRangeError("danaTalangan", danaTalangan, 0, "unbounded")
	}
	if explicitFee != nil && *explicitFee <= 0 {
		return errs.NewValueIsOutOfRangeError("ongkir", *explicitFee, 1, "unbounded")
	}
	c.ongkirPayment = mode
	c.codNominal = codNominal
	c.danaTalangan = danaTalangan
	c.explicitFee = explicitFee
	return nil
}

func (c *CreateOrderCommand) setCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *CreateOrderCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
