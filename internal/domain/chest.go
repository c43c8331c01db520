package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChestTier names a loot table
type ChestTier string

const (
	ChestTierWelcome     ChestTier = "welcome"
	ChestTierCommon      ChestTier = "common"
	ChestTierRare        ChestTier = "rare"
	ChestTierEpic        ChestTier = "epic"
	ChestTierLegendary   ChestTier = "legendary"
	ChestTierComboPhotos ChestTier = "combo_5_photos"
)

// ChestTiers lists every known tier
var ChestTiers = []ChestTier{
	ChestTierWelcome,
	ChestTierCommon,
	ChestTierRare,
	ChestTierEpic,
	ChestTierLegendary,
	ChestTierComboPhotos,
}

// Valid reports whether t is a known chest tier
func (t ChestTier) Valid() bool {
	for _, known := range ChestTiers {
		if known == t {
			return true
		}
	}
	return false
}

// ParseChestTier converts a raw string into a ChestTier
func ParseChestTier(s string) (ChestTier, error) {
	t := ChestTier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown chest tier %q", ErrInvalidInput, s)
	}
	return t, nil
}

// ChestSource records which event issued a chest
type ChestSource string

const (
	ChestSourceWelcome        ChestSource = "welcome"
	ChestSourceLevelMilestone ChestSource = "level_milestone"
	ChestSourceAdmin          ChestSource = "admin"
	ChestSourceCombo          ChestSource = "combo"
)

// Chest is a one-time-claimable container.
// State machine: Unopened (OpenedAt == nil) -> Opened (terminal).
type Chest struct {
	ID        string      `json:"id" db:"chest_id"`
	UserID    string      `json:"user_id" db:"user_id"`
	Tier      ChestTier   `json:"tier" db:"tier"`
	Source    ChestSource `json:"source" db:"source"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	OpenedAt  *time.Time  `json:"opened_at,omitempty" db:"opened_at"`
	ItemID    *string     `json:"item_id,omitempty" db:"item_id"`
}

// IsOpened reports whether the chest has been consumed
func (c *Chest) IsOpened() bool {
	return c.OpenedAt != nil
}

// ChestOpenResult describes what a chest yielded
type ChestOpenResult struct {
	Chest        Chest `json:"chest"`
	Item         Item  `json:"item"`
	AlreadyOwned bool  `json:"already_owned"`
}
