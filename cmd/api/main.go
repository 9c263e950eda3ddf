package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"trendsniper-service/internal/config"
	"trendsniper-service/internal/httplog"
	"trendsniper-service/internal/logger"

	observationsHttp "trendsniper-service/internal/observations/adapters/http/fiber"
	observationsRepoPg "trendsniper-service/internal/observations/adapters/postgres"
	observationsUsecase "trendsniper-service/internal/observations/core/usecase"

	trendsHttp "trendsniper-service/internal/trends/adapters/http/fiber"
	trendsRepoPg "trendsniper-service/internal/trends/adapters/postgres"
	trendsRemote "trendsniper-service/internal/trends/adapters/remote"
	trendsPorts "trendsniper-service/internal/trends/core/ports"
	trendsUsecase "trendsniper-service/internal/trends/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "trendsniper-service/docs"
)

// @title TrendSniper Trend Service API
// @version 1.0
// @description Keyword search-trend comparison and observation ingest.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, logCloser, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		logrus.Fatalf("failed to init logger: %v", err)
	}
	defer logCloser.Close()

	// DB connection
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	observationsDB := observationsRepoPg.NewSQLDB(db)
	trendsDB := trendsRepoPg.NewSQLDB(db)

	// Repositories / sources
	observationRepository := observationsRepoPg.NewObservationRepository(observationsDB)
	storedTrends := trendsRepoPg.NewTrendRepository(trendsDB)
	remoteTrends := trendsRemote.NewTrendClient(trendsRemote.Config{
		Endpoint:     cfg.TrendAPI.URL,
		Timeout:      cfg.TrendAPI.Timeout,
		RetryCount:   cfg.TrendAPI.RetryCount,
		RetryWait:    cfg.TrendAPI.RetryWait,
		UserAgent:    cfg.TrendAPI.UserAgent,
		RequestsPerS: cfg.TrendAPI.QPS,
		Burst:        cfg.TrendAPI.Burst,
	}, log.WithField("component", "trend-api"))

	// Usecases
	recordObservationUC := observationsUsecase.NewRecordObservationUseCase(observationRepository)
	compareTrendsUC := trendsUsecase.NewCompareTrendsUseCase(
		map[string]trendsPorts.TrendSourcePort{
			config.SourceRemote: remoteTrends,
			config.SourceStored: storedTrends,
		},
		cfg.Trends.DefaultSource,
		cfg.Trends.MaxKeywords,
		log.WithField("component", "compare-trends"),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(httplog.New(log.WithField("component", "http")))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// trends endpoints
	trendsHandler := trendsHttp.NewTrendHandler(compareTrendsUC, log.WithField("component", "trends-http"))
	app.Get("/trends", trendsHandler.CompareTrends)

	// observations endpoints
	observationsHandler := observationsHttp.NewObservationHandler(recordObservationUC)
	app.Post("/observations", observationsHandler.RecordObservation)
	app.Post("/observations/bulk", observationsHandler.BulkRecordObservations)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Addr); err != nil {
			log.Errorf("fiber stopped: %v", err)
		}
	}()

	log.WithFields(logrus.Fields{
		"addr":   cfg.HTTP.Addr,
		"source": cfg.Trends.DefaultSource,
	}).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("fiber shutdown error: %v", err)
	}

	log.Info("server exiting")
}
