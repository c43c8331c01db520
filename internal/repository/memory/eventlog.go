package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// eventLog has its own lock so audit writes never wait on an open transaction
type eventLog struct {
	mu      sync.Mutex
	entries []repository.EventLogEntry
	nextID  int64
	now     func() time.Time
}

// EventLog returns the store's audit log as a repository.EventLog
func (s *Store) EventLog() repository.EventLog { return &s.events }

func (l *eventLog) AppendEvent(ctx context.Context, eventType, userID string, payload json.RawMessage) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	l.entries = append(l.entries, repository.EventLogEntry{
		ID:        l.nextID,
		EventType: eventType,
		UserID:    userID,
		Payload:   append(json.RawMessage(nil), payload...),
		CreatedAt: now(),
	})
	return nil
}

func (l *eventLog) ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]repository.EventLogEntry, 0)
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (l *eventLog) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.entries[:0]
	var deleted int64
	for _, e := range l.entries {
		if e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	return deleted, nil
}
