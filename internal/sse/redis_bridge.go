package sse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisDialTimeout = 5 * time.Second

// RedisBridge relays SSE events through a Redis pub/sub channel so every
// instance behind a load balancer reaches its own clients.
type RedisBridge struct {
	rdb     *goredis.Client
	channel string
	hub     *Hub

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedisBridge connects to addr and verifies the server answers
func NewRedisBridge(ctx context.Context, addr, channel string, hub *Hub) (*RedisBridge, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	if channel == "" {
		return nil, errors.New("redis channel is required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBridge{rdb: rdb, channel: channel, hub: hub}, nil
}

// Publish implements Relay
func (b *RedisBridge) Publish(ctx context.Context, evt Event) error {
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// Start subscribes to the channel and delivers relayed events to the hub
// until Stop is called.
func (b *RedisBridge) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	sub := b.rdb.Subscribe(runCtx, b.channel)

	if _, err := sub.Receive(runCtx); err != nil {
		cancel()
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}
	slog.Info(LogMsgRelaySubscribed, "channel", b.channel)

	b.cancel = cancel
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-runCtx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				var evt Event
				if err := json.Unmarshal([]byte(m.Payload), &evt); err != nil {
					slog.Warn(LogMsgRelayDecodeFailed, "error", err)
					continue
				}
				b.hub.Deliver(evt)
			}
		}
	}()
	return nil
}

// Stop ends the subscription and closes the client
func (b *RedisBridge) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	slog.Info(LogMsgRelayStopped, "channel", b.channel)
	return b.rdb.Close()
}
