package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/bootstrap"
	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/config"
	"github.com/oliverftrep03/La-Penada-Real/internal/database"
	"github.com/oliverftrep03/La-Penada-Real/internal/eventlog"
	"github.com/oliverftrep03/La-Penada-Real/internal/handler"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository/memory"
	"github.com/oliverftrep03/La-Penada-Real/internal/scheduler"
	"github.com/oliverftrep03/La-Penada-Real/internal/server"
	"github.com/oliverftrep03/La-Penada-Real/internal/worker"
)

const (
	shutdownTimeout   = 15 * time.Second
	workerCount       = 2
	workerQueueSize   = 16
	workerJobDeadline = time.Minute
)

// @title La Peñada Real Economy API
// @version 1.0
// @description Coins, cosmetic inventory, chests, levels and trophy boards for La Peñada Real.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal: %v", err)
	}
}

func run() error {
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "WARNING:", w)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		initConsoleLogger(cfg)
		slog.Warn("File logging unavailable, logging to stdout only", "error", err)
	} else {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler.InitValidator()

	// Storage
	var (
		repos  *bootstrap.Repositories
		dbPool database.Pool
		pinger handler.Pinger
	)
	switch cfg.StorageBackend {
	case config.StorageMemory:
		slog.Warn("Using in-memory storage, state is lost on restart")
		repos = bootstrap.InitializeMemoryRepositories(memory.NewStore())
	default:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString: cfg.GetDBConnString(),
			MaxConns:   cfg.DBMaxConns,
			MaxIdle:    cfg.DBMaxIdle,
			MaxLife:    cfg.DBMaxLife,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		repos = bootstrap.InitializePostgresRepositories(pool)
		dbPool, pinger = pool, pool
	}

	// Catalog config
	loader := catalog.NewLoader()
	if err := bootstrap.SyncCatalog(ctx, cfg, loader, repos.Catalog); err != nil {
		return err
	}
	tables, err := bootstrap.LoadLootTables(ctx, cfg)
	if err != nil {
		return err
	}

	// Events
	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}
	hub, bridge, err := bootstrap.InitializeRealtime(ctx, cfg)
	if err != nil {
		return err
	}

	svcs, reloader, err := bootstrap.InitializeServices(cfg, repos, loader, tables, publisher)
	if err != nil {
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: eventBus,
		Hub:      hub,
		EventLog: svcs.EventLog,
	}); err != nil {
		return err
	}

	// Background jobs
	pool := worker.NewPool(workerCount, workerQueueSize, workerJobDeadline)
	pool.Start()
	sched := scheduler.New(pool)
	if err := sched.Schedule(cfg.CatalogRefreshSchedule, worker.NewCatalogRefreshJob(reloader)); err != nil {
		return err
	}
	if err := sched.Schedule(cfg.EventLogCleanupSchedule, eventlog.NewCleanupJob(svcs.EventLog, cfg.EventLogRetention)); err != nil {
		return err
	}
	sched.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Pinger:         pinger,
		Hub:            hub,
	}, svcs)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		RedisBridge:        bridge,
		Hub:                hub,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})
	return nil
}
