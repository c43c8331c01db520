package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// retryEntry is a failed event waiting for its next attempt
type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with exponential-backoff retries and a dead-letter file.
// PublishWithRetry never blocks the caller on a failing subscriber.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file %s: %w", deadLetterPath, err)
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes synchronously once; failures are queued for background retry
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case <-p.shutdown:
		p.writeDeadLetter(event, 1, err, LogMsgEventDroppedShutdown)
		return
	default:
	}

	select {
	case p.retryQueue <- retryEntry{event: event, attempts: 1, lastErr: err}:
	default:
		p.writeDeadLetter(event, 1, err, LogMsgRetryQueueFull)
	}
}

// Publish satisfies Bus so the publisher can stand in for the bus it wraps
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.processRetry(entry)
		case <-p.shutdown:
			p.drainQueue()
			return
		}
	}
}

func (p *ResilientPublisher) processRetry(entry retryEntry) {
	log := logger.FromContext(context.Background())

	timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, entry.attempts))
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-p.shutdown:
		// one last try before giving up
		if err := p.bus.Publish(context.Background(), entry.event); err != nil {
			p.writeDeadLetter(entry.event, entry.attempts+1, err, LogMsgEventDroppedShutdown)
		}
		return
	}

	err := p.bus.Publish(context.Background(), entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
		return
	}

	entry.attempts++
	entry.lastErr = err
	if entry.attempts > p.maxRetries {
		p.writeDeadLetter(entry.event, entry.attempts, err, LogMsgEventRetryExhausted)
		return
	}

	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	select {
	case p.retryQueue <- entry:
	default:
		p.writeDeadLetter(entry.event, entry.attempts, err, LogMsgRetryQueueFull)
	}
}

func (p *ResilientPublisher) drainQueue() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				p.writeDeadLetter(entry.event, entry.attempts+1, err, LogMsgEventDroppedShutdown)
			}
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "events", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error, reason string) {
	log := logger.FromContext(context.Background())
	log.Warn(reason, "event_type", event.Type, "attempts", attempts)
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		log.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
	}
}

// Shutdown stops the retry worker, flushing queued events, and closes the dead-letter file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
