package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oliverftrep03/La-Penada-Real/internal/config"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/sse"
)

// InitializeEventSystem creates the event bus and the resilient publisher services publish through.
// Zero retry settings fall back to defaults.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = config.DefaultEventMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = config.DefaultEventRetryDelay
	}
	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultEventDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// InitializeRealtime starts the SSE hub and, when REDIS_ADDR is set, the
// cross-instance Redis relay. The bridge is nil without Redis.
func InitializeRealtime(ctx context.Context, cfg *config.Config) (*sse.Hub, *sse.RedisBridge, error) {
	hub := sse.NewHub()

	var bridge *sse.RedisBridge
	if cfg.RedisAddr != "" {
		var err error
		bridge, err = sse.NewRedisBridge(ctx, cfg.RedisAddr, cfg.RedisChannel, hub)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		hub.SetRelay(bridge)
	}

	hub.Start()

	if bridge != nil {
		if err := bridge.Start(ctx); err != nil {
			hub.Stop()
			_ = bridge.Stop()
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
	}

	slog.Info(LogMsgRealtimeInitialized, "redis", cfg.RedisAddr != "", "channel", cfg.RedisChannel)
	return hub, bridge, nil
}
