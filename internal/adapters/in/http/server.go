package http

import (
	"errors"
	"net/http"

	"kurir/internal/core/application/usecases/commands"
	"kurir/internal/core/application/usecases/queries"
	"kurir/internal/core/domain/model/courier"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/model/order"
	"kurir/internal/core/domain/services"
	"kurir/internal/generated/servers"
	"kurir/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	assignCourierHandler   commands.AssignCourierCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	settleOrderHandler     commands.SettleOrderCommandHandler
	createCourierHandler   commands.CreateCourierCommandHandler
	setAvailabilityHandler commands.SetCourierAvailabilityCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getAllCouriersHandler      queries.GetAllCouriersQueryHandler
	rankCouriersHandler        queries.RankCouriersQueryHandler
	getSettlementReportHandler queries.GetSettlementReportQueryHandler

	// Quote machinery: the quote endpoint prices without persisting, so it
	// talks to the domain services directly instead of going through a command.
	planner    services.RoutePlanner
	calculator services.FeeCalculator
	basecamp   kernel.GeoPoint
}

// ServerParams carries every dependency of the HTTP server.
type ServerParams struct {
	CreateOrderHandler     commands.CreateOrderCommandHandler
	AssignCourierHandler   commands.AssignCourierCommandHandler
	ChangeStatusHandler    commands.ChangeOrderStatusCommandHandler
	SettleOrderHandler     commands.SettleOrderCommandHandler
	CreateCourierHandler   commands.CreateCourierCommandHandler
	SetAvailabilityHandler commands.SetCourierAvailabilityCommandHandler

	GetActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	GetAllCouriersHandler      queries.GetAllCouriersQueryHandler
	RankCouriersHandler        queries.RankCouriersQueryHandler
	GetSettlementReportHandler queries.GetSettlementReportQueryHandler

	Planner    services.RoutePlanner
	Calculator services.FeeCalculator
	Basecamp   kernel.GeoPoint
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(p ServerParams) (*Server, error) {
	if err := p.Basecamp.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		createOrderHandler:         p.CreateOrderHandler,
		assignCourierHandler:       p.AssignCourierHandler,
		changeStatusHandler:        p.ChangeStatusHandler,
		settleOrderHandler:         p.SettleOrderHandler,
		createCourierHandler:       p.CreateCourierHandler,
		setAvailabilityHandler:     p.SetAvailabilityHandler,
		getActiveOrdersHandler:     p.GetActiveOrdersHandler,
		getAllCouriersHandler:      p.GetAllCouriersHandler,
		rankCouriersHandler:        p.RankCouriersHandler,
		getSettlementReportHandler: p.GetSettlementReportHandler,
		planner:                    p.Planner,
		calculator:                 p.Calculator,
		basecamp:                   p.Basecamp,
	}, nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// CreateOrder handles POST /orders - registers a new delivery job.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	params, err := s.orderParamsFromRequest(body)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(params)
	if err != nil {
		return respondError(ctx, err)
	}

	ongkir, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	status := order.New
	if body.CourierId != nil {
		status = order.Assigned
	}
	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Id:     params.OrderID.Bytes(),
		Status: status.String(),
		Ongkir: ongkir,
	})
}

// QuoteOrder handles POST /orders/quote - prices a job without creating it.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var body servers.QuoteOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	tier, err := order.TierFromString(body.Tier)
	if err != nil {
		return respondError(ctx, err)
	}
	pickup, err := kernel.NewGeoPoint(body.PickupPoint.Lat, body.PickupPoint.Lon)
	if err != nil {
		return respondError(ctx, err)
	}
	dropoff, err := kernel.NewGeoPoint(body.DropoffPoint.Lat, body.DropoffPoint.Lon)
	if err != nil {
		return respondError(ctx, err)
	}

	legs, err := s.planner.PlanLegs(ctx.Request().Context(), s.basecamp, pickup, dropoff)
	if err != nil {
		return respondError(ctx, err)
	}

	breakdown, err := s.calculator.Calculate(legs.D1.DistanceKm, legs.D2.DistanceKm, tier.IsExpress())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Quote{
		D1Km:       legs.D1.DistanceKm,
		D2Km:       legs.D2.DistanceKm,
		D1Fee:      breakdown.D1Fee,
		D2Fee:      breakdown.D2Fee,
		ExpressFee: breakdown.ExpressFee,
		Total:      breakdown.Total,
		Estimated:  legs.D1.Estimated || legs.D2.Estimated,
	})
}

// GetActiveOrders handles GET /orders/active - the dispatch board.
func (s *Server) GetActiveOrders(ctx echo.Context, params servers.GetActiveOrdersParams) error {
	var statusFilter *order.Status
	if params.Status != nil {
		status, err := order.StatusFromString(*params.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}
	courierFilter, err := optionalUUID(params.CourierId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(statusFilter, courierFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:                 o.ID.Bytes(),
			CreatedAt:          o.CreatedAt,
			Status:             o.Status.String(),
			SenderName:         o.SenderName,
			PickupAddress:      o.PickupAddress,
			DropoffAddress:     o.DropoffAddress,
			Kind:               o.Kind.String(),
			Tier:               o.Tier.String(),
			Ongkir:             o.Ongkir,
			OngkirPayment:      o.OngkirPayment.String(),
			CodNominal:         o.CODNominal,
			CodPaid:            o.CODPaid,
			NonCodPaid:         o.NonCodPaid,
			DanaTalangan:       o.DanaTalangan,
			TalanganReimbursed: o.TalanganReimbursed,
		}
		if o.CourierID != nil {
			courierID := o.CourierID.Bytes()
			response[i].CourierId = &courierID
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /orders/{orderId}/status - lifecycle moves.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	to, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	actor, err := actorFromRequest(body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, to, actor)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /orders/{orderId}/assign.
func (s *Server) AssignCourier(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AssignCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	courierID, err := kernel.UUIDFromString(body.CourierId.String())
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	actor, err := actorFromRequest(body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID, actor)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SettleOrder handles POST /orders/{orderId}/settlement - flips one money track.
func (s *Server) SettleOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.SettleOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	track, err := commands.SettlementTrackFromString(string(body.Track))
	if err != nil {
		return respondError(ctx, err)
	}
	actor, err := actorFromRequest(body.Actor)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettleOrderCommand(orderID, track, body.Settled, actor)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.settleOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /couriers - retrieves the whole roster.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:     c.ID.Bytes(),
			Name:   c.Name,
			Active: c.Active,
			Online: c.Online,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /couriers - adds a courier to the fleet.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.CourierCreated{Id: cmd.CourierID().Bytes()})
}

// GetCourierSuggestions handles GET /couriers/suggestions - ranked candidates
// for the next assignment.
func (s *Server) GetCourierSuggestions(ctx echo.Context) error {
	query := queries.NewRankCouriersQuery()

	ranked, err := s.rankCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.CourierSuggestion, len(ranked))
	for i, r := range ranked {
		response[i] = servers.CourierSuggestion{
			CourierId:    r.CourierID.Bytes(),
			Name:         r.Name,
			Online:       r.Online,
			ActiveOrders: r.ActiveOrders,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetCourierAvailability handles POST /couriers/{courierId}/availability.
func (s *Server) SetCourierAvailability(ctx echo.Context, courierId openapi_types.UUID) error {
	var body servers.SetCourierAvailabilityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(courierId.String())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(courierID, body.Online)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetSettlementReport handles GET /reports/settlement - the money position.
func (s *Server) GetSettlementReport(ctx echo.Context, params servers.GetSettlementReportParams) error {
	courierFilter, err := optionalUUID(params.CourierId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetSettlementReportQuery(params.From, params.To, courierFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.getSettlementReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	ordersByStatus := make(map[string]int, len(report.OrdersByStatus))
	for status, count := range report.OrdersByStatus {
		ordersByStatus[status.String()] = count
	}
	return ctx.JSON(http.StatusOK, servers.SettlementReport{
		TotalOngkir:         report.TotalOngkir,
		UnpaidNonCodOngkir:  report.UnpaidNonCodOngkir,
		OutstandingCod:      report.OutstandingCOD,
		OutstandingTalangan: report.OutstandingTalangan,
		OrdersByStatus:      ordersByStatus,
	})
}

// orderParamsFromRequest maps the wire request onto command parameters,
// generating the order's identity here so the response can carry it.
func (s *Server) orderParamsFromRequest(body servers.CreateOrderJSONRequestBody) (commands.CreateOrderCommandParams, error) {
	kind, err := order.KindFromString(body.Kind)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}
	tier, err := order.TierFromString(body.Tier)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}
	mode, err := order.PaymentModeFromString(body.OngkirPayment)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}
	actor, err := actorFromRequest(body.Actor)
	if err != nil {
		return commands.CreateOrderCommandParams{}, err
	}

	params := commands.CreateOrderCommandParams{
		OrderID: kernel.NewUUID(),
		Sender:  order.Sender{Name: body.Sender.Name, Phone: body.Sender.Phone},
		Pickup:  stopFromRequest(body.Pickup),
		Dropoff: stopFromRequest(body.Dropoff),
		Kind:    kind,
		Tier:    tier,

		OngkirPayment:  mode,
		ExplicitOngkir: body.Ongkir,
		Actor:          actor,
	}
	if body.AddOns != nil {
		params.AddOns = addOnsFromRequest(*body.AddOns)
	}
	if body.CodNominal != nil {
		params.CODNominal = *body.CodNominal
	}
	if body.DanaTalangan != nil {
		params.DanaTalangan = *body.DanaTalangan
	}

	if params.PickupPoint, err = geoPointFromRequest(body.Pickup.Point); err != nil {
		return commands.CreateOrderCommandParams{}, err
	}
	if params.DropoffPoint, err = geoPointFromRequest(body.Dropoff.Point); err != nil {
		return commands.CreateOrderCommandParams{}, err
	}
	if params.Courier, err = optionalUUID(body.CourierId); err != nil {
		return commands.CreateOrderCommandParams{}, err
	}
	return params, nil
}

func stopFromRequest(stop servers.StopInfo) order.Stop {
	result := order.Stop{Address: stop.Address}
	if stop.MapLink != nil {
		result.MapLink = *stop.MapLink
	}
	return result
}

func addOnsFromRequest(addOns servers.AddOns) order.AddOns {
	result := order.AddOns{}
	if addOns.ReturnTrip != nil {
		result.ReturnTrip = *addOns.ReturnTrip
	}
	if addOns.Bulky != nil {
		result.Bulky = *addOns.Bulky
	}
	if addOns.Heavy != nil {
		result.Heavy = *addOns.Heavy
	}
	if addOns.WaitingFee != nil {
		result.WaitingFee = *addOns.WaitingFee
	}
	return result
}

func geoPointFromRequest(point *servers.GeoPoint) (*kernel.GeoPoint, error) {
	if point == nil {
		return nil, nil
	}
	result, err := kernel.NewGeoPoint(point.Lat, point.Lon)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func actorFromRequest(actor servers.Actor) (order.Actor, error) {
	id := ""
	if actor.Id != nil {
		id = *actor.Id
	}
	return order.NewActor(order.ActorType(actor.Type), id)
}

func optionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	result, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain and application errors onto HTTP statuses.
// Business rule violations (illegal transitions, settlement context, lost
// optimistic-lock races, actor permissions) all answer 409: the request was
// well-formed but the current state of the order forbids it.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidSettlementContext),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, order.ErrActorIsNotAllowed),
		errors.Is(err, courier.ErrCourierIsNotActive):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCoordinatesIncomplete),
		errors.Is(err, commands.ErrOngkirUnresolvable),
		errors.Is(err, commands.ErrNameIsRequired):
		code = http.StatusBadRequest
	}
	message := err.Error()
	if errors.Is(err, errs.ErrConcurrentModification) {
		message += "; reload the order and retry"
	}
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
