package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"kurir/cmd"
	adapter_http "kurir/internal/adapters/in/http"
	"kurir/internal/generated/servers"
	"kurir/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB, err := connectDB(configs)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Error("Failed to build composition root", "error", err)
		os.Exit(1)
	}

	jobManager := jobs.NewJobManager(app.CreateGetSettlementReportQueryHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A missing .env is fine in containerized deployments; the variables come
	// from the environment directly.
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "kurir"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		OSRMBaseURL: envOr("OSRM_BASE_URL", "http://localhost:5000"),
		WebhookURL:  os.Getenv("WEBHOOK_URL"),

		BasecampLat: envFloatOr("BASECAMP_LAT", -6.2000),
		BasecampLon: envFloatOr("BASECAMP_LON", 106.8166),

		TariffMinimumFee:       envInt64Or("TARIFF_MINIMUM_FEE", 3000),
		TariffBaseKm:           envFloatOr("TARIFF_BASE_KM", 1.0),
		TariffRatePerKm:        envInt64Or("TARIFF_RATE_PER_KM", 1000),
		TariffRoundTo:          envInt64Or("TARIFF_ROUND_TO", 500),
		TariffExpressSurcharge: envInt64Or("TARIFF_EXPRESS_SURCHARGE", 2000),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func envFloatOr(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func connectDB(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	return gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	createOrderHandler, err := app.CreateCreateOrderCommandHandler()
	if err != nil {
		logger.Error("Failed to build order intake handler", "error", err)
		os.Exit(1)
	}

	server, err := adapter_http.NewServer(adapter_http.ServerParams{
		CreateOrderHandler:     createOrderHandler,
		AssignCourierHandler:   app.CreateAssignCourierCommandHandler(),
		ChangeStatusHandler:    app.CreateChangeOrderStatusCommandHandler(),
		SettleOrderHandler:     app.CreateSettleOrderCommandHandler(),
		CreateCourierHandler:   app.CreateCreateCourierCommandHandler(),
		SetAvailabilityHandler: app.CreateSetCourierAvailabilityCommandHandler(),

		GetActiveOrdersHandler:     app.CreateGetActiveOrdersQueryHandler(),
		GetAllCouriersHandler:      app.CreateGetAllCouriersQueryHandler(),
		RankCouriersHandler:        app.CreateRankCouriersQueryHandler(),
		GetSettlementReportHandler: app.CreateGetSettlementReportQueryHandler(),

		Planner:    app.RoutePlanner(),
		Calculator: app.FeeCalculator(),
		Basecamp:   app.Basecamp(),
	})
	if err != nil {
		logger.Error("Failed to build HTTP server", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = adapter_http.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, specErr := servers.GetSwagger()
		if specErr != nil {
			return specErr
		}
		return c.JSON(http.StatusOK, swagger)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if serveErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", serveErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
