package commands

import (
	"context"

	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Resolves the two fee legs through the route planner, prices them, and
// persists the new order together with its first audit events.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	planner    services.RoutePlanner
	calculator services.FeeCalculator
	basecamp   kernel.GeoPoint
}

// NewCreateOrderCommandHandler creates a handler for order intake.
// The basecamp point anchors the D1 leg of every quote.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	planner services.RoutePlanner,
	calculator services.FeeCalculator,
	basecamp kernel.GeoPoint,
) (CreateOrderCommandHandler, error) {
	if err := basecamp.Validate(); err != nil {
		return CreateOrderCommandHandler{}, err
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
		calculator: calculator,
		basecamp:   basecamp,
	}, nil
}

// Handle processes the order intake command and returns the ongkir the order
// was created with.
//
// When the stops carry coordinates, the fee is computed from the planned
// legs; a routing outage silently degrades to straight-line estimates inside
// the planner. An explicit ongkir always wins over the computed total, but
// the aggregate still rejects it below the tariff minimum. A pre-selected
// courier must exist and be active, checked against committed state.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ongkir, err := h.resolveOngkir(ctx, cmd)
	if err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(order.NewOrderParams{
		ID:            cmd.OrderID(),
		Sender:        cmd.Sender(),
		Pickup:        cmd.Pickup(),
		Dropoff:       cmd.Dropoff(),
		Kind:          cmd.Kind(),
		Tier:          cmd.Tier(),
		AddOns:        cmd.AddOns(),
		Ongkir:        ongkir,
		MinimumOngkir: h.calculator.Tariff().MinimumFee(),
		OngkirPayment: cmd.OngkirPayment(),
		CODNominal:    cmd.CODNominal(),
		DanaTalangan:  cmd.DanaTalangan(),
		Courier:       cmd.Courier(),
		Actor:         cmd.Actor(),
	})
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// A pre-selected courier gets the same scrutiny as an explicit
	// assignment: it must exist and still be active.
	if courierID := cmd.Courier(); courierID != nil {
		assignee, err := uow.CourierRepository().Get(ctx, *courierID)
		if err != nil {
			return 0, err
		}
		if !assignee.IsActive() {
			return 0, courier.ErrCourierIsNotActive
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return ongkir, nil
}

func (h *CreateOrderCommandHandler) resolveOngkir(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if explicit := cmd.ExplicitOngkir(); explicit != nil {
		return *explicit, nil
	}

	legs, err := h.planner.PlanLegs(ctx, h.basecamp, *cmd.PickupPoint(), *cmd.DropoffPoint())
	if err != nil {
		return 0, err
	}

	breakdown, err := h.calculator.Calculate(legs.D1.DistanceKm, legs.D2.DistanceKm, cmd.Tier().IsExpress())
	if err != nil {
		return 0, err
	}
	return breakdown.Total, nil
}
