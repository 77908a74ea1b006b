package cmd

import (
	"log/slog"
	"time"

	"kurir/internal/adapters/out/notify"
	"kurir/internal/adapters/out/osrm"
	"kurir/internal/adapters/out/postgres"
	"kurir/internal/core/application/usecases/commands"
	"kurir/internal/core/application/usecases/queries"
	"kurir/internal/core/domain/model/kernel"
	"kurir/internal/core/domain/services"
	"kurir/internal/core/ports"

	"gorm.io/gorm"
)

const outboundTimeout = 5 * time.Second

// CompositionRoot wires every adapter and use case of the service.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	calculator services.FeeCalculator
	planner    services.RoutePlanner
	basecamp   kernel.GeoPoint
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tariff, err := services.NewTariff(
		config.TariffMinimumFee,
		config.TariffBaseKm,
		config.TariffRatePerKm,
		config.TariffRoundTo,
		config.TariffExpressSurcharge,
	)
	if err != nil {
		return CompositionRoot{}, err
	}
	calculator, err := services.NewFeeCalculator(tariff)
	if err != nil {
		return CompositionRoot{}, err
	}

	basecamp, err := kernel.NewGeoPoint(config.BasecampLat, config.BasecampLon)
	if err != nil {
		return CompositionRoot{}, err
	}

	routeProvider, err := osrm.NewClient(config.OSRMBaseURL, outboundTimeout)
	if err != nil {
		return CompositionRoot{}, err
	}
	planner, err := services.NewRoutePlanner(routeProvider, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	var notifier ports.Notifier
	if config.WebhookURL != "" {
		webhook, webhookErr := notify.NewWebhookNotifier(config.WebhookURL, outboundTimeout)
		if webhookErr != nil {
			return CompositionRoot{}, webhookErr
		}
		notifier = webhook
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: calculator,
		planner:    planner,
		basecamp:   basecamp,
		notifier:   notifier,
		logger:     logger,
	}, nil
}

// FeeCalculator returns the configured fee calculator.
func (c *CompositionRoot) FeeCalculator() services.FeeCalculator { return c.calculator }

// RoutePlanner returns the configured route planner.
func (c *CompositionRoot) RoutePlanner() services.RoutePlanner { return c.planner }

// Basecamp returns the configured basecamp point.
func (c *CompositionRoot) Basecamp() kernel.GeoPoint { return c.basecamp }

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (commands.CreateOrderCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.planner, c.calculator, c.basecamp)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRankCouriersQueryHandler() queries.RankCouriersQueryHandler {
	return queries.NewRankCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettlementReportQueryHandler() queries.GetSettlementReportQueryHandler {
	return queries.NewGetSettlementReportQueryHandler(c.gormDB)
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
