package repository

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// Economy defines the interface for the orchestration flows (purchase, XP awards, claims)
type Economy interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx bundles every write an orchestration flow may need so it commits as one unit
type EconomyTx interface {
	Tx
	WalletWriter
	InventoryWriter
	ProgressionWriter
	ChestWriter

	// CreateProfile inserts the profile row. created is false when it already existed.
	CreateProfile(ctx context.Context, userID, username string) (created bool, err error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	EnsureWallet(ctx context.Context, userID string) error
	// MarkWelcomeClaimed flips the flag only when it is still false.
	// Returns domain.ErrWelcomeAlreadyClaimed or domain.ErrProfileNotFound otherwise.
	MarkWelcomeClaimed(ctx context.Context, userID string) error
}
