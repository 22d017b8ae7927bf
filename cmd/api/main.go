package main

import (
	"context"
	"database/sql"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	devicesHttp "device-status-service/internal/devices/adapters/http/fiber"
	devicesUpstream "device-status-service/internal/devices/adapters/upstream"
	devicesUsecase "device-status-service/internal/devices/core/usecase"

	summaryHttp "device-status-service/internal/summary/adapters/http/fiber"
	summaryRepoPg "device-status-service/internal/summary/adapters/postgres"
	summaryUpstream "device-status-service/internal/summary/adapters/upstream"
	"device-status-service/internal/summary/core/ports"
	summaryUsecase "device-status-service/internal/summary/core/usecase"

	"device-status-service/internal/platform/config"
	"device-status-service/internal/platform/httpx"
	"device-status-service/internal/platform/logging"
	"device-status-service/internal/platform/upstream"

	_ "device-status-service/docs"
)

// @title Device Status Service API
// @version 1.0
// @description Classifies and aggregates device/account status counts from the monitoring API.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	// Monitoring API client
	client, err := upstream.New(upstream.Config{
		BaseURL:            cfg.Upstream.BaseURL,
		Timeout:            cfg.Upstream.Timeout,
		MaxRetries:         cfg.Upstream.MaxRetries,
		RetryWait:          cfg.Upstream.RetryWait,
		BreakerName:        "monitoring-api",
		BreakerMinRequests: cfg.Upstream.BreakerMinRequests,
		BreakerFailRatio:   cfg.Upstream.BreakerFailRatio,
		BreakerOpenTimeout: cfg.Upstream.BreakerOpenTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("failed to create upstream client")
		os.Exit(1)
	}

	// Snapshot store (optional). Left as a nil interface when disabled.
	var store ports.SnapshotStorePort
	var storeRepo *summaryRepoPg.SnapshotRepository
	if cfg.Postgres.DSN != "" {
		db, err := openPostgres(cfg.Postgres)
		if err != nil {
			logging.Error().Err(err).Msg("failed to open postgres")
			os.Exit(1)
		}
		defer db.Close()

		repo := summaryRepoPg.NewSnapshotRepository(summaryRepoPg.NewSQLDB(db))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = prepareSnapshotStore(ctx, repo, db)
		cancel()
		if err != nil {
			// os.Exit skips the deferred Close; prepareSnapshotStore already closed db.
			logging.Error().Err(err).Msg("failed to create snapshot schema")
			os.Exit(1)
		}

		store = repo
		storeRepo = repo
		logging.Info().Msg("snapshot store enabled")
	} else {
		logging.Info().Msg("POSTGRES_DSN not set, snapshot store disabled")
	}

	// Sources
	summarySource := summaryUpstream.NewSummarySource(client)
	deviceSource := devicesUpstream.NewDeviceSource(client)

	// Usecases
	getSummaryUC := summaryUsecase.NewGetSummaryUseCase(summarySource, store)
	getBreakdownUC := summaryUsecase.NewGetBreakdownUseCase(summarySource, store)
	compareUC := summaryUsecase.NewCompareUseCase(summarySource, store)

	listInactiveUC := devicesUsecase.NewListInactiveUseCase(deviceSource)
	listNoAppUC := devicesUsecase.NewListNoAppFoundUseCase(deviceSource)
	historyUC := devicesUsecase.NewDeviceHistoryUseCase(deviceSource)
	byStatusUC := devicesUsecase.NewDevicesByStatusUseCase(deviceSource)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:      "device-status-service",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: logging.GenerateRequestID}))
	app.Use(httpx.RequestContext())
	app.Use(httpx.AccessLog())

	api := app.Group("/api")

	// summary endpoints
	summaryHandler := summaryHttp.NewSummaryHandler(getSummaryUC, getBreakdownUC, compareUC)
	summaryHandler.Register(api)

	// device endpoints
	deviceHandler := devicesHttp.NewDeviceHandler(listInactiveUC, listNoAppUC, historyUC, byStatusUC)
	deviceHandler.Register(api)

	// ops
	app.Get("/healthz", func(c *fiber.Ctx) error {
		snapshots := "disabled"
		if storeRepo != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			snapshots = "ok"
			if err := storeRepo.Ping(ctx); err != nil {
				snapshots = "unreachable"
			}
		}
		return c.JSON(fiber.Map{
			"status":         "ok",
			"snapshot_store": snapshots,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.ListenAddr); err != nil {
			logging.Error().Err(err).Msg("fiber stopped")
		}
	}()

	logging.Info().
		Str("addr", cfg.Server.ListenAddr).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logging.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logging.Error().Err(err).Msg("fiber shutdown error")
	}

	logging.Info().Msg("server exiting")
}

type schemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// prepareSnapshotStore creates the snapshot table and closes db if that fails.
func prepareSnapshotStore(ctx context.Context, repo schemaEnsurer, db io.Closer) error {
	if err := repo.EnsureSchema(ctx); err != nil {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("failed to close postgres")
		}
		return err
	}
	return nil
}

func openPostgres(cfg config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
