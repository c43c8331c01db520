package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// EventLogRepository implements repository.EventLog for PostgreSQL
type EventLogRepository struct {
	queries
}

var _ repository.EventLog = (*EventLogRepository)(nil)

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{queries{q: db}}
}

// AppendEvent stores one event. An empty user id is stored as NULL.
func (r *EventLogRepository) AppendEvent(ctx context.Context, eventType, userID string, payload json.RawMessage) error {
	var uid *string
	if userID != "" {
		uid = &userID
	}
	if _, err := r.q.Exec(ctx, `
		INSERT INTO event_log (event_type, user_id, payload)
		VALUES ($1, $2, $3)`, eventType, uid, []byte(payload)); err != nil {
		return classifyError(ErrMsgAppendEventFailed, err)
	}
	return nil
}

// ListEvents builds the WHERE clause from the non-empty filter fields
func (r *EventLogRepository) ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, event_type, user_id, payload, created_at FROM event_log WHERE 1=1`)

	args := []any{}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		fmt.Fprintf(&sb, " AND user_id = $%d", len(args))
	}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		fmt.Fprintf(&sb, " AND event_type = $%d", len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, classifyError(ErrMsgListEventsFailed, err)
	}
	defer rows.Close()

	entries := make([]repository.EventLogEntry, 0)
	for rows.Next() {
		var (
			e       repository.EventLogEntry
			uid     *string
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.EventType, &uid, &payload, &e.CreatedAt); err != nil {
			return nil, classifyError(ErrMsgListEventsFailed, err)
		}
		if uid != nil {
			e.UserID = *uid
		}
		e.Payload = json.RawMessage(payload)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(ErrMsgListEventsFailed, err)
	}
	return entries, nil
}

// DeleteEventsBefore removes entries older than cutoff
func (r *EventLogRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM event_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, classifyError(ErrMsgDeleteEventsFailed, err)
	}
	return tag.RowsAffected(), nil
}
