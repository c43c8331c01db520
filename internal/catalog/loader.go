package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
	"github.com/oliverftrep03/La-Penada-Real/internal/validation"
)

// Sentinel errors for the catalog loader
var (
	ErrDuplicateID = errors.New("duplicate id")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// ItemsConfig represents the JSON configuration for catalog items
type ItemsConfig struct {
	Version string    `json:"version"`
	Items   []ItemDef `json:"items"`
}

// ItemDef represents a single item definition in the JSON
type ItemDef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Rarity   string  `json:"rarity"`
	Price    int     `json:"price"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
	Active   *bool   `json:"active,omitempty"` // defaults to true
}

// ToDomain converts the definition, rejecting unknown enum values
func (d ItemDef) ToDomain() (domain.Item, error) {
	itemType, err := domain.ParseItemType(d.Type)
	if err != nil {
		return domain.Item{}, err
	}
	rarity, err := domain.ParseRarity(d.Rarity)
	if err != nil {
		return domain.Item{}, err
	}
	item := domain.Item{
		ID:       d.ID,
		Name:     d.Name,
		Type:     itemType,
		Rarity:   rarity,
		Price:    d.Price,
		Content:  d.Content,
		ImageURL: d.ImageURL,
		Active:   d.Active == nil || *d.Active,
	}
	return item, item.Validate()
}

// RewardsConfig represents the JSON configuration for trophies and achievements
type RewardsConfig struct {
	Version string      `json:"version"`
	Rewards []RewardDef `json:"rewards"`
}

// RewardDef represents a single reward definition in the JSON
type RewardDef struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	SlotIndex   int    `json:"slot_index"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ToDomain converts the definition, rejecting unknown reward types
func (d RewardDef) ToDomain() (domain.RewardDefinition, error) {
	rewardType, err := domain.ParseRewardType(d.Type)
	if err != nil {
		return domain.RewardDefinition{}, err
	}
	def := domain.RewardDefinition{
		ID:          d.ID,
		Type:        rewardType,
		SlotIndex:   d.SlotIndex,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
	}
	return def, def.Validate()
}

// Loader handles loading, validating and seeding catalog configuration
type Loader interface {
	LoadItems(path string) (*ItemsConfig, error)
	LoadRewards(path string) (*RewardsConfig, error)
	ValidateItems(config *ItemsConfig) error
	ValidateRewards(config *RewardsConfig) error
	SyncItems(ctx context.Context, config *ItemsConfig, repo repository.Catalog) (*SyncResult, error)
	SyncRewards(ctx context.Context, config *RewardsConfig, repo repository.Catalog) (*SyncResult, error)
}

// SyncResult contains the result of syncing a config file to the database
type SyncResult struct {
	Inserted int
	Updated  int
	Skipped  int
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

func (l *catalogLoader) read(path, schemaPath string, target any) error {
	resolved, err := validation.ResolvePath(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFileFailed, path, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFileFailed, path, err)
	}
	if err := l.schemaValidator.Decode(data, schemaPath, target); err != nil {
		return fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}
	return nil
}

// LoadItems reads, schema-validates and parses an items JSON file
func (l *catalogLoader) LoadItems(path string) (*ItemsConfig, error) {
	var config ItemsConfig
	if err := l.read(path, ItemsSchemaPath, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadRewards reads, schema-validates and parses a rewards JSON file
func (l *catalogLoader) LoadRewards(path string) (*RewardsConfig, error) {
	var config RewardsConfig
	if err := l.read(path, RewardsSchemaPath, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ValidateItems checks enums, prices and id uniqueness
func (l *catalogLoader) ValidateItems(config *ItemsConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i, def := range config.Items {
		if _, err := def.ToDomain(); err != nil {
			return fmt.Errorf("%w: "+ErrFmtItemAtIndexFailed, ErrInvalidConfig, i, err)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateID, def.ID)
		}
		seen[def.ID] = true
	}
	return nil
}

// ValidateRewards checks types, slot ranges, id uniqueness and slot uniqueness per type
func (l *catalogLoader) ValidateRewards(config *RewardsConfig) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Rewards) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoRewardsDefined)
	}

	type slotKey struct {
		rewardType domain.RewardType
		slot       int
	}
	ids := make(map[string]bool, len(config.Rewards))
	slots := make(map[slotKey]string, len(config.Rewards))
	for i, raw := range config.Rewards {
		def, err := raw.ToDomain()
		if err != nil {
			return fmt.Errorf("%w: reward at index %d: %w", ErrInvalidConfig, i, err)
		}
		if ids[def.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateID, def.ID)
		}
		ids[def.ID] = true

		key := slotKey{def.Type, def.SlotIndex}
		if other, taken := slots[key]; taken {
			return fmt.Errorf(ErrFmtDuplicateSlot, ErrInvalidConfig, def.Type, def.SlotIndex, other, def.ID)
		}
		slots[key] = def.ID
	}
	return nil
}

// SyncItems upserts every configured item that is new or differs from the stored row
func (l *catalogLoader) SyncItems(ctx context.Context, config *ItemsConfig, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)

	existing, err := repo.ListItems(ctx, nil, false)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingItemsFailed, err)
	}
	byID := make(map[string]domain.Item, len(existing))
	for _, item := range existing {
		byID[item.ID] = item
	}

	result := &SyncResult{}
	for _, def := range config.Items {
		item, err := def.ToDomain()
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, def.ID, err)
		}

		current, found := byID[item.ID]
		if found && itemsEqual(current, item) {
			result.Skipped++
			continue
		}
		if err := repo.UpsertItem(ctx, item); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertItemFailed, item.ID, err)
		}
		if found {
			result.Updated++
			log.Info(LogMsgUpdatedItem, "item_id", item.ID)
		} else {
			result.Inserted++
			log.Debug(LogMsgInsertedItem, "item_id", item.ID)
		}
	}

	log.Info(LogMsgItemsSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}

// SyncRewards upserts every configured reward that is new or differs from the stored row
func (l *catalogLoader) SyncRewards(ctx context.Context, config *RewardsConfig, repo repository.Catalog) (*SyncResult, error) {
	existing, err := repo.ListRewardDefinitions(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetExistingRewardsFailed, err)
	}
	byID := make(map[string]domain.RewardDefinition, len(existing))
	for _, def := range existing {
		byID[def.ID] = def
	}

	result := &SyncResult{}
	for _, raw := range config.Rewards {
		def, err := raw.ToDomain()
		if err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertRewardFailed, raw.ID, err)
		}

		current, found := byID[def.ID]
		if found && current == def {
			result.Skipped++
			continue
		}
		if err := repo.UpsertRewardDefinition(ctx, def); err != nil {
			return nil, fmt.Errorf(ErrMsgUpsertRewardFailed, def.ID, err)
		}
		if found {
			result.Updated++
		} else {
			result.Inserted++
		}
	}

	logger.FromContext(ctx).Info(LogMsgRewardsSyncCompleted,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return result, nil
}

// Seed loads, validates and syncs both catalog files
func Seed(ctx context.Context, l Loader, repo repository.Catalog, itemsPath, rewardsPath string) error {
	items, err := l.LoadItems(itemsPath)
	if err != nil {
		return err
	}
	if err := l.ValidateItems(items); err != nil {
		return err
	}
	if _, err := l.SyncItems(ctx, items, repo); err != nil {
		return err
	}

	rewards, err := l.LoadRewards(rewardsPath)
	if err != nil {
		return err
	}
	if err := l.ValidateRewards(rewards); err != nil {
		return err
	}
	_, err = l.SyncRewards(ctx, rewards, repo)
	return err
}

func itemsEqual(a, b domain.Item) bool {
	if a.ID != b.ID || a.Name != b.Name || a.Type != b.Type || a.Rarity != b.Rarity ||
		a.Price != b.Price || a.Content != b.Content || a.Active != b.Active {
		return false
	}
	switch {
	case a.ImageURL == nil && b.ImageURL == nil:
		return true
	case a.ImageURL == nil || b.ImageURL == nil:
		return false
	}
	return *a.ImageURL == *b.ImageURL
}
