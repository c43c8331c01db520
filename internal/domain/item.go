package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ItemType is the closed set of cosmetic categories
type ItemType string

const (
	ItemTypeFrame       ItemType = "frame"
	ItemTypeMapIcon     ItemType = "map_icon"
	ItemTypeCollectible ItemType = "collectible"
	ItemTypeTitle       ItemType = "title"
	ItemTypeSticker     ItemType = "sticker"
)

// AllItemTypes lists every item type in display order
var AllItemTypes = []ItemType{
	ItemTypeFrame,
	ItemTypeMapIcon,
	ItemTypeCollectible,
	ItemTypeTitle,
	ItemTypeSticker,
}

// Valid reports whether t is a known item type
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeFrame, ItemTypeMapIcon, ItemTypeCollectible, ItemTypeTitle, ItemTypeSticker:
		return true
	}
	return false
}

// ParseItemType converts a raw string into an ItemType
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, s)
	}
	return t, nil
}

// Label returns the human readable label for the type
func (t ItemType) Label() string {
	switch t {
	case ItemTypeFrame:
		return titleCase("marco")
	case ItemTypeMapIcon:
		return titleCase("icono de mapa")
	case ItemTypeCollectible:
		return titleCase("coleccionable")
	case ItemTypeTitle:
		return titleCase("título")
	case ItemTypeSticker:
		return titleCase("pegatina")
	}
	return string(t)
}

// Item is a cosmetic catalog entry.
// Items are immutable from the engine's point of view; only administrators edit them.
type Item struct {
	ID       string   `json:"id" db:"item_id"`
	Name     string   `json:"name" db:"name"`
	Type     ItemType `json:"type" db:"item_type"`
	Rarity   Rarity   `json:"rarity" db:"rarity"`
	Price    int      `json:"price" db:"price"`
	Content  string   `json:"content" db:"content"`                 // style token or glyph
	ImageURL *string  `json:"image_url,omitempty" db:"image_url"`   // Nullable
	Active   bool     `json:"active" db:"active"`                   // Inactive items are hidden from shop and loot
}

// Column widths of the catalog tables, counted in characters
const (
	MaxCatalogIDLength   = 64
	MaxCatalogNameLength = 100
)

// Validate checks the invariants of a catalog item
func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: item id is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(i.ID) > MaxCatalogIDLength {
		return fmt.Errorf("%w: item id longer than %d characters", ErrInvalidInput, MaxCatalogIDLength)
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item %s has no name", ErrInvalidInput, i.ID)
	}
	if utf8.RuneCountInString(i.Name) > MaxCatalogNameLength {
		return fmt.Errorf("%w: item %s name longer than %d characters", ErrInvalidInput, i.ID, MaxCatalogNameLength)
	}
	if !i.Type.Valid() {
		return fmt.Errorf("%w: item %s has unknown type %q", ErrInvalidInput, i.ID, i.Type)
	}
	if !i.Rarity.Valid() {
		return fmt.Errorf("%w: item %s has unknown rarity %q", ErrInvalidInput, i.ID, i.Rarity)
	}
	if i.Price < 0 {
		return fmt.Errorf("%w: item %s has negative price %d", ErrInvalidInput, i.ID, i.Price)
	}
	return nil
}

// InventorySource records how an item entered an inventory
type InventorySource string

const (
	SourcePurchase InventorySource = "purchase"
	SourceChest    InventorySource = "chest"
	SourceAdmin    InventorySource = "admin"
)

// GrantOutcome reports the result of an idempotent grant
type GrantOutcome string

const (
	GrantGranted      GrantOutcome = "granted"
	GrantAlreadyOwned GrantOutcome = "already_owned"
)

// ShopEntry is an item as shown in the shop for a given user
type ShopEntry struct {
	Item
	Owned bool `json:"owned"`
}
