package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) AppendEvent(ctx context.Context, eventType, userID string, payload json.RawMessage) error {
	args := m.Called(ctx, eventType, userID, payload)
	return args.Error(0)
}

func (m *mockRepository) ListEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *mockRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
