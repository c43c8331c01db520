package bootstrap

import (
	"context"
	"log/slog"

	"github.com/oliverftrep03/La-Penada-Real/internal/database"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/scheduler"
	"github.com/oliverftrep03/La-Penada-Real/internal/server"
	"github.com/oliverftrep03/La-Penada-Real/internal/sse"
	"github.com/oliverftrep03/La-Penada-Real/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	RedisBridge        *sse.RedisBridge
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	DBPool             database.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server, so no new requests arrive
//  2. scheduler and worker pool, so no new background jobs start
//  3. SSE relay and hub, which close open event streams
//  4. event publisher, flushing pending retries to the dead-letter file
//  5. database pool
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.RedisBridge != nil {
		if err := c.RedisBridge.Stop(); err != nil {
			slog.Error(LogMsgRedisBridgeStopFailed, "error", err)
		}
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
