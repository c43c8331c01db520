package catalog

// ==================== Schema Paths ====================

const (
	ItemsSchemaPath   = "configs/schemas/items.schema.json"
	RewardsSchemaPath = "configs/schemas/rewards.schema.json"
)

// ==================== Cache Keys ====================

const (
	cacheKeyItemPrefix    = "item:"
	cacheKeyListPrefix    = "list:"
	cacheKeyRewardsPrefix = "rewards:"
	cacheKeyAll           = "all"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog config file %s: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages
const (
	ErrMsgConfigNil         = "config is nil"
	ErrMsgNoItemsDefined    = "no items defined"
	ErrMsgNoRewardsDefined  = "no rewards defined"
	ErrFmtDuplicateSlot     = "%w: %s slot %d is used by both %s and %s"
	ErrFmtItemAtIndexFailed = "item at index %d: %w"
)

// Sync error messages
const (
	ErrMsgGetExistingItemsFailed   = "failed to get existing items: %w"
	ErrMsgGetExistingRewardsFailed = "failed to get existing rewards: %w"
	ErrMsgUpsertItemFailed         = "failed to upsert item '%s': %w"
	ErrMsgUpsertRewardFailed       = "failed to upsert reward '%s': %w"
	ErrMsgReloadFailed             = "failed to reload catalog: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemsSyncCompleted   = "Catalog items sync completed"
	LogMsgRewardsSyncCompleted = "Reward definitions sync completed"
	LogMsgInsertedItem         = "Inserted item"
	LogMsgUpdatedItem          = "Updated item"
	LogMsgCatalogInvalidated   = "Catalog cache invalidated"
	LogMsgItemUpserted         = "Catalog item upserted"
	LogMsgRewardUpserted       = "Reward definition upserted"
	LogMsgCatalogReloaded      = "Catalog reloaded from config files"
)
