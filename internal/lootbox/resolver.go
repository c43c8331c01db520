package lootbox

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/utils"
)

// ItemSource provides the active items loot is drawn from
type ItemSource interface {
	Snapshot(ctx context.Context) ([]domain.Item, error)
}

// Resolver turns a chest tier into one catalog item
type Resolver interface {
	// Resolve draws from the current active catalog
	Resolve(ctx context.Context, tier domain.ChestTier) (*domain.Item, error)
	// ResolveFrom draws from a caller-supplied pool. Inactive items in pool are ignored.
	ResolveFrom(ctx context.Context, pool []domain.Item, tier domain.ChestTier) (*domain.Item, error)
}

type resolver struct {
	source ItemSource
	tables map[domain.ChestTier]*compiledTable
	rnd    func() float64
}

// NewResolver compiles tables and returns a resolver drawing from source.
// A nil rnd uses the process-wide random source.
func NewResolver(source ItemSource, tables map[domain.ChestTier]LootTable, rnd func() float64) (Resolver, error) {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	r := &resolver{
		source: source,
		tables: make(map[domain.ChestTier]*compiledTable, len(tables)),
		rnd:    rnd,
	}
	for tier, table := range tables {
		compiled, err := compile(tier, table)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextInvalidLootTable, err)
		}
		r.tables[tier] = compiled
	}
	return r, nil
}

func (r *resolver) Resolve(ctx context.Context, tier domain.ChestTier) (*domain.Item, error) {
	if _, ok := r.tables[tier]; !ok {
		return nil, fmt.Errorf(ErrFmtUnknownTier, domain.ErrInvalidInput, tier)
	}
	pool, err := r.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSnapshotFailed, err)
	}
	return r.ResolveFrom(ctx, pool, tier)
}

func (r *resolver) ResolveFrom(ctx context.Context, pool []domain.Item, tier domain.ChestTier) (*domain.Item, error) {
	table, ok := r.tables[tier]
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownTier, domain.ErrInvalidInput, tier)
	}

	byRarity := bucketByRarity(pool)
	if len(byRarity) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	log := logger.FromContext(ctx)
	rolled := table.roll(r.rnd())

	for _, filtered := range []bool{true, false} {
		for _, rarity := range fallbackOrder(rolled) {
			candidates := byRarity[rarity]
			if filtered {
				candidates = slices.DeleteFunc(slices.Clone(candidates), func(item domain.Item) bool {
					return !table.allows(item.Type)
				})
			}
			if len(candidates) == 0 {
				continue
			}
			if rarity != rolled {
				log.Debug(LogMsgRarityFallback, "tier", tier, "rolled", rolled, "resolved", rarity)
			}
			picked := candidates[utils.PickIndex(r.rnd(), len(candidates))]
			log.Debug(LogMsgLootResolved, "tier", tier, "item_id", picked.ID, "rarity", picked.Rarity)
			return &picked, nil
		}
		if filtered && table.types != nil {
			log.Warn(LogMsgTypeFilterDropped, "tier", tier)
		}
	}

	// Unreachable while byRarity is non-empty: the unfiltered pass visits every rarity
	return nil, domain.ErrEmptyCatalog
}

// bucketByRarity groups the active items of pool by rarity, each bucket ordered by id
func bucketByRarity(pool []domain.Item) map[domain.Rarity][]domain.Item {
	buckets := make(map[domain.Rarity][]domain.Item)
	for _, item := range pool {
		if !item.Active || !item.Rarity.Valid() {
			continue
		}
		buckets[item.Rarity] = append(buckets[item.Rarity], item)
	}
	for rarity := range buckets {
		slices.SortFunc(buckets[rarity], func(a, b domain.Item) int {
			return strings.Compare(a.ID, b.ID)
		})
	}
	return buckets
}

// fallbackOrder lists the rolled rarity, then every lower rarity downward,
// then every higher rarity upward
func fallbackOrder(rolled domain.Rarity) []domain.Rarity {
	order := []domain.Rarity{rolled}
	for r, ok := rolled.Lower(); ok; r, ok = r.Lower() {
		order = append(order, r)
	}
	for r, ok := rolled.Higher(); ok; r, ok = r.Higher() {
		order = append(order, r)
	}
	return order
}
