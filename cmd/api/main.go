package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/roster-service/internal/api/http"
	"github.com/spec-kit/roster-service/internal/api/http/handlers"
	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/observability"
	"github.com/spec-kit/roster-service/internal/persistence"
	"github.com/spec-kit/roster-service/internal/remote"
	"github.com/spec-kit/roster-service/internal/repository"
	"github.com/spec-kit/roster-service/internal/service"
	"github.com/spec-kit/roster-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pg *persistence.Postgres
	var source remote.Source
	switch cfg.Remote.Driver {
	case config.RemoteDriverPostgres:
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if !pg.Configured() {
			logger.Fatal("REMOTE_DRIVER=postgres requires POSTGRES_DSN")
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		source = repository.NewEmployeeRepository(pg.PoolHandle())
	default:
		source = remote.NewHTTPSource(cfg.Remote, logger)
	}

	var redis *persistence.Redis
	if ttl := cfg.Redis.CacheTTL(); ttl > 0 {
		redis = persistence.NewRedis(ctx, cfg.Redis, logger)
		defer redis.Close()
		source = remote.NewCachedSource(source, redis.Client, remote.DefaultCacheKey, ttl, logger)
	}

	metrics := observability.NewMetrics()
	data := service.NewDataService(service.DataDependencies{
		Source:   source,
		IDPrefix: cfg.Remote.IDPrefix,
		Logger:   logger,
	})
	stopAudit := worker.StartAuditWorker(data, logger, metrics)
	defer stopAudit()

	if _, err := data.LoadAll(ctx); err != nil {
		logger.Error("initial roster load failed; serving empty roster", zap.Error(err))
	}

	view := service.NewRosterView(data, cfg.Roster.ItemsPerPage, cfg.Roster.MaxVisiblePages)
	defer view.Close()

	go worker.NewRefreshWorker(data, cfg.Roster.RefreshInterval(), logger).Run(ctx)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(handlers.HealthDependencies{
			ServiceName: cfg.App.Name,
			Version:     cfg.App.Version,
			Postgres:    pg,
			Redis:       redis,
			Data:        data,
			Metrics:     metrics,
		}),
		Employees: handlers.NewEmployeesHandler(data, cfg.Roster.ItemsPerPage, cfg.Roster.MaxVisiblePages),
		View:      handlers.NewViewHandler(view),
		Export:    handlers.NewExportHandler(data),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
