// Package eventlog persists every engine event to an append-only audit log
// and prunes entries past their retention.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service handles the event audit log
type Service interface {
	// Subscribe registers the logger for every engine event type
	Subscribe(bus event.Bus)

	// Recent returns logged events newest first. A zero limit means DefaultListLimit.
	Recent(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error)

	// Cleanup removes entries older than retention and reports how many went
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates a new event log service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, t := range event.AllTypes {
		bus.Subscribe(t, s.handleEvent)
	}
	slog.Info(LogMsgSubscribed, "types", len(event.AllTypes))
}

// handleEvent never fails the publish: a retry would redeliver the event to
// every other subscriber as well.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Warn(LogMsgEncodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}

	userID := event.UserIDOf(evt)
	if err := s.repo.AppendEvent(ctx, string(evt.Type), userID, payload); err != nil {
		log.Error(LogMsgFailedToLogEvent, "type", evt.Type, "user_id", userID, "error", err)
		return nil
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "user_id", userID)
	return nil
}

func (s *service) Recent(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit < 0 || filter.Limit > MaxListLimit {
		return nil, fmt.Errorf("%w: "+ErrMsgInvalidLimit, domain.ErrInvalidInput, MaxListLimit)
	}
	if filter.UserID != "" {
		if err := domain.ValidateUserID(filter.UserID); err != nil {
			return nil, err
		}
	}
	if filter.EventType != "" && !knownType(filter.EventType) {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownEventType, domain.ErrInvalidInput, filter.EventType)
	}
	return s.repo.ListEvents(ctx, filter)
}

func (s *service) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidRetention)
	}
	return s.repo.DeleteEventsBefore(ctx, s.now().Add(-retention))
}

func knownType(t string) bool {
	for _, known := range event.AllTypes {
		if string(known) == t {
			return true
		}
	}
	return false
}
