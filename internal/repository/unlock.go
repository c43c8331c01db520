package repository

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// Unlock defines the interface for trophy and achievement unlock persistence
type Unlock interface {
	// InsertUnlock is append-only. inserted is false when the pair already existed.
	InsertUnlock(ctx context.Context, userID, rewardID string) (inserted bool, err error)
	ListUnlocks(ctx context.Context, userID string) ([]domain.UserRewardUnlock, error)
}
