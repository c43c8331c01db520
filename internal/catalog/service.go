package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/metrics"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service is the read-mostly source of truth for items and reward definitions
type Service interface {
	// GetItem resolves any item by id, active or not
	GetItem(ctx context.Context, itemID string) (*domain.Item, error)
	// ListItems returns the active items of every type, ordered by price then id
	ListItems(ctx context.Context) ([]domain.Item, error)
	// ListItemsByType returns the active items of one type, ordered by price then id
	ListItemsByType(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error)
	GetRewardDefinition(ctx context.Context, rewardID string) (*domain.RewardDefinition, error)
	// GetRewardDefinitions returns definitions ordered by slot. A nil type returns both boards.
	GetRewardDefinitions(ctx context.Context, rewardType *domain.RewardType) ([]domain.RewardDefinition, error)
	// Snapshot returns every active item, the pool loot is drawn from
	Snapshot(ctx context.Context) ([]domain.Item, error)

	UpsertItem(ctx context.Context, item domain.Item) error
	UpsertRewardDefinition(ctx context.Context, def domain.RewardDefinition) error
	// Invalidate drops every cached read
	Invalidate(ctx context.Context)
}

type service struct {
	repo  repository.Catalog
	cache *catalogCache
	group singleflight.Group
}

// NewService creates a catalog service with an expiring LRU of the given size and TTL
func NewService(repo repository.Catalog, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newCatalogCache(cacheSize, cacheTTL),
	}
}

// load serves key from the cache, collapsing concurrent misses into one repository read
func (s *service) load(ctx context.Context, key string, fetch func() (*cachedEntry, error)) (*cachedEntry, error) {
	if entry, ok := s.cache.get(key); ok {
		metrics.CatalogCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
		return entry, nil
	}
	metrics.CatalogCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()

	gen := s.cache.currentGeneration()
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		entry, err := fetch()
		if err != nil {
			return nil, err
		}
		s.cache.set(gen, key, entry)
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cachedEntry), nil
}

func (s *service) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item id is required", domain.ErrInvalidInput)
	}
	entry, err := s.load(ctx, cacheKeyItemPrefix+itemID, func() (*cachedEntry, error) {
		item, err := s.repo.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		return &cachedEntry{item: item}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", itemID, err)
	}
	item := *entry.item
	return &item, nil
}

func (s *service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.listActive(ctx, nil)
}

func (s *service) ListItemsByType(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error) {
	if !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, itemType)
	}
	return s.listActive(ctx, &itemType)
}

func (s *service) Snapshot(ctx context.Context) ([]domain.Item, error) {
	return s.listActive(ctx, nil)
}

func (s *service) listActive(ctx context.Context, itemType *domain.ItemType) ([]domain.Item, error) {
	key := cacheKeyListPrefix + cacheKeyAll
	if itemType != nil {
		key = cacheKeyListPrefix + string(*itemType)
	}
	entry, err := s.load(ctx, key, func() (*cachedEntry, error) {
		items, err := s.repo.ListItems(ctx, itemType, true)
		if err != nil {
			return nil, err
		}
		return &cachedEntry{items: items}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return slices.Clone(entry.items), nil
}

func (s *service) GetRewardDefinitions(ctx context.Context, rewardType *domain.RewardType) ([]domain.RewardDefinition, error) {
	if rewardType != nil && !rewardType.Valid() {
		return nil, fmt.Errorf("%w: unknown reward type %q", domain.ErrInvalidInput, *rewardType)
	}
	key := cacheKeyRewardsPrefix + cacheKeyAll
	if rewardType != nil {
		key = cacheKeyRewardsPrefix + string(*rewardType)
	}
	entry, err := s.load(ctx, key, func() (*cachedEntry, error) {
		defs, err := s.repo.ListRewardDefinitions(ctx, rewardType)
		if err != nil {
			return nil, err
		}
		return &cachedEntry{rewards: defs}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reward definitions: %w", err)
	}
	return slices.Clone(entry.rewards), nil
}

func (s *service) GetRewardDefinition(ctx context.Context, rewardID string) (*domain.RewardDefinition, error) {
	if rewardID == "" {
		return nil, fmt.Errorf("%w: reward id is required", domain.ErrInvalidInput)
	}
	defs, err := s.GetRewardDefinitions(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range defs {
		if defs[i].ID == rewardID {
			return &defs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrRewardNotFound, rewardID)
}

func (s *service) UpsertItem(ctx context.Context, item domain.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("failed to upsert item %s: %w", item.ID, err)
	}
	s.Invalidate(ctx)
	logger.FromContext(ctx).Info(LogMsgItemUpserted, "item_id", item.ID, "active", item.Active)
	return nil
}

func (s *service) UpsertRewardDefinition(ctx context.Context, def domain.RewardDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpsertRewardDefinition(ctx, def); err != nil {
		return fmt.Errorf("failed to upsert reward %s: %w", def.ID, err)
	}
	s.Invalidate(ctx)
	logger.FromContext(ctx).Info(LogMsgRewardUpserted, "reward_id", def.ID, "slot", def.SlotIndex)
	return nil
}

func (s *service) Invalidate(ctx context.Context) {
	dropped := s.cache.len()
	s.cache.purge()
	logger.FromContext(ctx).Debug(LogMsgCatalogInvalidated, "entries", dropped)
}
