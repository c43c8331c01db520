package repository

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// ProgressionWriter holds the locked read-modify-write pair for XP state
type ProgressionWriter interface {
	// GetProgressionForUpdate locks the row, creating it at level 1 when missing
	GetProgressionForUpdate(ctx context.Context, userID string) (*domain.UserProgression, error)
	UpdateProgression(ctx context.Context, progression domain.UserProgression) error
}

// Progression defines the interface for XP and level persistence
type Progression interface {
	// GetProgression returns domain.ErrProfileNotFound when the user has no progression row
	GetProgression(ctx context.Context, userID string) (*domain.UserProgression, error)
	BeginTx(ctx context.Context) (ProgressionTx, error)
}

// ProgressionTx defines the interface for progression transactions
type ProgressionTx interface {
	Tx
	ProgressionWriter
}
