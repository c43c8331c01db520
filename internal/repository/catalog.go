package repository

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// Catalog defines the interface for item and reward definition persistence
type Catalog interface {
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	// ListItems returns items ordered by price, then id. A nil itemType lists every type.
	ListItems(ctx context.Context, itemType *domain.ItemType, activeOnly bool) ([]domain.Item, error)
	UpsertItem(ctx context.Context, item domain.Item) error

	GetRewardDefinition(ctx context.Context, rewardID string) (*domain.RewardDefinition, error)
	// ListRewardDefinitions returns definitions ordered by type, then slot index
	ListRewardDefinitions(ctx context.Context, rewardType *domain.RewardType) ([]domain.RewardDefinition, error)
	UpsertRewardDefinition(ctx context.Context, def domain.RewardDefinition) error
}
