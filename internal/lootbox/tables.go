package lootbox

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/validation"
)

// LootTable is a weighted rarity roll plus the item types a tier may yield.
// An empty Types list allows every type.
type LootTable struct {
	Weights map[domain.Rarity]int
	Types   []domain.ItemType
}

// DefaultTables returns the built-in loot tables. Weights are percentages.
func DefaultTables() map[domain.ChestTier]LootTable {
	return map[domain.ChestTier]LootTable{
		domain.ChestTierWelcome: {
			Weights: map[domain.Rarity]int{domain.RarityCommon: 60, domain.RarityRare: 30, domain.RarityEpic: 10},
			Types:   []domain.ItemType{domain.ItemTypeFrame, domain.ItemTypeTitle, domain.ItemTypeSticker},
		},
		domain.ChestTierCommon: {
			Weights: map[domain.Rarity]int{domain.RarityCommon: 75, domain.RarityRare: 20, domain.RarityEpic: 5},
		},
		domain.ChestTierRare: {
			Weights: map[domain.Rarity]int{domain.RarityCommon: 40, domain.RarityRare: 40, domain.RarityEpic: 15, domain.RarityLegendary: 5},
		},
		domain.ChestTierEpic: {
			Weights: map[domain.Rarity]int{domain.RarityRare: 40, domain.RarityEpic: 40, domain.RarityLegendary: 15, domain.RarityMythic: 5},
		},
		domain.ChestTierLegendary: {
			Weights: map[domain.Rarity]int{domain.RarityEpic: 35, domain.RarityLegendary: 40, domain.RarityMythic: 15, domain.RarityUnique: 10},
		},
		domain.ChestTierComboPhotos: {
			Weights: map[domain.Rarity]int{domain.RarityCommon: 50, domain.RarityRare: 35, domain.RarityEpic: 15},
			Types:   []domain.ItemType{domain.ItemTypeFrame, domain.ItemTypeSticker, domain.ItemTypeCollectible},
		},
	}
}

// tablesFile is the on-disk layout of configs/loot_tables.json
type tablesFile struct {
	Version string              `json:"version"`
	Tables  map[string]tableDef `json:"tables"`
}

type tableDef struct {
	Weights map[string]int `json:"weights"`
	Types   []string       `json:"types,omitempty"`
}

// LoadTables reads and schema-validates a loot table file.
// Tiers the file does not define keep their built-in table.
func LoadTables(ctx context.Context, path string) (map[domain.ChestTier]LootTable, error) {
	resolved, err := validation.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLootFile, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadLootFile, err)
	}

	var file tablesFile
	if err := validation.NewSchemaValidator().Decode(data, LootTablesSchemaPath, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseLootFile, err)
	}

	log := logger.FromContext(ctx)
	tables := DefaultTables()
	for rawTier, def := range file.Tables {
		tier, err := domain.ParseChestTier(rawTier)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextInvalidLootTable, err)
		}
		table, err := def.toLootTable(tier)
		if err != nil {
			return nil, err
		}
		tables[tier] = table
	}
	for _, tier := range domain.ChestTiers {
		if _, ok := file.Tables[string(tier)]; !ok {
			log.Warn(LogMsgLootTableDefaulted, "tier", tier)
		}
	}

	log.Info(LogMsgLootTablesLoaded, "path", path, "version", file.Version, "tables", len(tables))
	return tables, nil
}

func (d tableDef) toLootTable(tier domain.ChestTier) (LootTable, error) {
	table := LootTable{Weights: make(map[domain.Rarity]int, len(d.Weights))}
	for raw, weight := range d.Weights {
		rarity, err := domain.ParseRarity(raw)
		if err != nil {
			return LootTable{}, fmt.Errorf(ErrFmtUnknownRarity, domain.ErrInvalidInput, tier, raw)
		}
		table.Weights[rarity] = weight
	}
	for _, raw := range d.Types {
		itemType, err := domain.ParseItemType(raw)
		if err != nil {
			return LootTable{}, fmt.Errorf(ErrFmtUnknownType, domain.ErrInvalidInput, tier, raw)
		}
		table.Types = append(table.Types, itemType)
	}
	return table, nil
}

// compiledTable is a LootTable prepared for binary-search rolls
type compiledTable struct {
	rarities   []domain.Rarity
	cumulative []int
	total      int
	types      map[domain.ItemType]bool
}

func compile(tier domain.ChestTier, t LootTable) (*compiledTable, error) {
	c := &compiledTable{}

	for rarity := range t.Weights {
		if !rarity.Valid() {
			return nil, fmt.Errorf(ErrFmtUnknownRarity, domain.ErrInvalidInput, tier, rarity)
		}
	}
	// Scale order, so the same draw always maps to the same rarity
	for _, rarity := range domain.Rarities {
		weight, ok := t.Weights[rarity]
		if !ok {
			continue
		}
		if weight < 0 {
			return nil, fmt.Errorf(ErrFmtNegativeWeight, domain.ErrInvalidInput, tier, rarity)
		}
		if weight == 0 {
			continue
		}
		c.total += weight
		c.rarities = append(c.rarities, rarity)
		c.cumulative = append(c.cumulative, c.total)
	}
	if c.total == 0 {
		return nil, fmt.Errorf(ErrFmtNoWeight, domain.ErrInvalidInput, tier)
	}

	if len(t.Types) > 0 {
		c.types = make(map[domain.ItemType]bool, len(t.Types))
		for _, itemType := range t.Types {
			if !itemType.Valid() {
				return nil, fmt.Errorf(ErrFmtUnknownType, domain.ErrInvalidInput, tier, itemType)
			}
			c.types[itemType] = true
		}
	}
	return c, nil
}

// roll maps a [0,1) draw onto a rarity with a binary search over the cumulative weights
func (c *compiledTable) roll(draw float64) domain.Rarity {
	target := draw * float64(c.total)
	idx, _ := slices.BinarySearchFunc(c.cumulative, target, func(cum int, t float64) int {
		if float64(cum) <= t {
			return -1
		}
		return 1
	})
	if idx >= len(c.rarities) {
		idx = len(c.rarities) - 1
	}
	return c.rarities[idx]
}

func (c *compiledTable) allows(itemType domain.ItemType) bool {
	return c.types == nil || c.types[itemType]
}
