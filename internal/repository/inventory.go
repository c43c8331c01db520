package repository

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// InventoryWriter holds the ownership operations usable inside a transaction
type InventoryWriter interface {
	HasItem(ctx context.Context, userID, itemID string) (bool, error)
	// GrantItem inserts the ownership pair. granted is false when the pair already existed.
	GrantItem(ctx context.Context, userID, itemID string, source domain.InventorySource) (granted bool, err error)
}

// Inventory defines the interface for item ownership persistence
type Inventory interface {
	InventoryWriter
	RevokeItem(ctx context.Context, userID, itemID string) (removed bool, err error)
	ListInventory(ctx context.Context, userID string, itemType *domain.ItemType) ([]domain.Item, error)
	ListOwnedItemIDs(ctx context.Context, userID string) ([]string, error)
}
