package repository

import (
	"context"
	"encoding/json"
	"time"
)

// EventLogEntry is one engine event as persisted for auditing
type EventLogEntry struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	UserID    string          `json:"user_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventLogFilter narrows an event log query. Zero values match everything.
type EventLogFilter struct {
	UserID    string
	EventType string
	Limit     int
}

// EventLog defines the interface for the append-only event audit log
type EventLog interface {
	AppendEvent(ctx context.Context, eventType, userID string, payload json.RawMessage) error

	// ListEvents returns matching entries newest first
	ListEvents(ctx context.Context, filter EventLogFilter) ([]EventLogEntry, error)

	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
