package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository/memory"
)

func TestService_LogsEveryEngineEvent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	bus := event.NewMemoryBus()
	svc := NewService(store.EventLog())
	svc.Subscribe(bus)

	item := domain.Item{ID: "frame_gold", Name: "Oro", Rarity: domain.RarityRare}
	require.NoError(t, bus.Publish(ctx, event.NewBalanceChangedEvent("u1", 10, 10, "admin_grant")))
	require.NoError(t, bus.Publish(ctx, event.NewItemGrantedEvent("u1", item, domain.SourcePurchase)))
	require.NoError(t, bus.Publish(ctx, event.NewBalanceChangedEvent("u2", 5, 5, "admin_grant")))

	entries, err := svc.Recent(ctx, repository.EventLogFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.EventTypeItemGranted, entries[0].EventType)
	assert.Equal(t, domain.EventTypeBalanceChanged, entries[1].EventType)

	var payload domain.BalanceChangedPayload
	require.NoError(t, json.Unmarshal(entries[1].Payload, &payload))
	assert.Equal(t, 10, payload.Delta)
}

func TestService_HandleEventSwallowsStorageErrors(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo).(*service)
	repo.On("AppendEvent", mock.Anything, domain.EventTypeBalanceChanged, "u1", mock.Anything).
		Return(domain.ErrStorageUnavailable)

	err := svc.handleEvent(context.Background(), event.NewBalanceChangedEvent("u1", 1, 1, "admin_grant"))

	assert.NoError(t, err, "a failed audit write must not trigger a republish")
	repo.AssertExpectations(t)
}

func TestService_Recent(t *testing.T) {
	tests := []struct {
		name    string
		filter  repository.EventLogFilter
		want    repository.EventLogFilter
		wantErr error
	}{
		{
			name:   "default limit",
			filter: repository.EventLogFilter{},
			want:   repository.EventLogFilter{Limit: DefaultListLimit},
		},
		{
			name:   "type and user",
			filter: repository.EventLogFilter{UserID: "u1", EventType: domain.EventTypeChestOpened, Limit: 5},
			want:   repository.EventLogFilter{UserID: "u1", EventType: domain.EventTypeChestOpened, Limit: 5},
		},
		{
			name:    "limit too large",
			filter:  repository.EventLogFilter{Limit: MaxListLimit + 1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative limit",
			filter:  repository.EventLogFilter{Limit: -1},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "unknown type",
			filter:  repository.EventLogFilter{EventType: "duel.started"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			svc := NewService(repo)
			if tt.wantErr == nil {
				repo.On("ListEvents", mock.Anything, tt.want).Return([]repository.EventLogEntry{}, nil)
			}

			_, err := svc.Recent(context.Background(), tt.filter)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				repo.AssertNotCalled(t, "ListEvents", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Cleanup(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo).(*service)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	repo.On("DeleteEventsBefore", mock.Anything, now.Add(-48*time.Hour)).Return(int64(7), nil)

	n, err := svc.Cleanup(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = svc.Cleanup(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertExpectations(t)
}
