package repository

import (
	"context"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// ChestWriter holds the chest mutations usable inside a transaction
type ChestWriter interface {
	CreateChest(ctx context.Context, chest *domain.Chest) error
}

// Chest defines the interface for chest persistence
type Chest interface {
	ChestWriter
	GetChest(ctx context.Context, chestID string) (*domain.Chest, error)
	ListChests(ctx context.Context, userID string, unopenedOnly bool) ([]domain.Chest, error)
	BeginTx(ctx context.Context) (ChestTx, error)
}

// ChestTx defines the interface for the chest opening transaction
type ChestTx interface {
	Tx
	InventoryWriter
	// MarkChestOpened sets opened_at only when it is still null and the chest belongs to userID.
	// Returns domain.ErrChestNotFound or domain.ErrChestAlreadyOpened when no row qualifies.
	MarkChestOpened(ctx context.Context, chestID, userID string, openedAt time.Time) (*domain.Chest, error)
	SetChestItem(ctx context.Context, chestID, itemID string) error
}
