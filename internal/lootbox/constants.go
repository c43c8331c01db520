package lootbox

// ============================================================================
// Configuration
// ============================================================================

// LootTablesSchemaPath is the path (relative to project root) of the loot table schema
const LootTablesSchemaPath = "configs/schemas/loot_tables.schema.json"

// DefaultLootTablesPath is where the shipped loot tables live
const DefaultLootTablesPath = "configs/loot_tables.json"

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during loot table loading
const (
	ErrContextFailedToReadLootFile  = "failed to read loot tables file"
	ErrContextFailedToParseLootFile = "failed to parse loot tables"
	ErrContextInvalidLootTable      = "invalid loot table"
	ErrContextSnapshotFailed        = "failed to load loot pool"
)

// Error format strings
const (
	ErrFmtUnknownTier    = "%w: no loot table for tier %q"
	ErrFmtNoWeight       = "%w: loot table %q has no positive weight"
	ErrFmtUnknownRarity  = "%w: loot table %q references unknown rarity %q"
	ErrFmtUnknownType    = "%w: loot table %q references unknown item type %q"
	ErrFmtNegativeWeight = "%w: loot table %q has negative weight for %q"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgLootResolved       = "Loot resolved"
	LogMsgRarityFallback     = "Rolled rarity has no eligible items, falling back"
	LogMsgTypeFilterDropped  = "No eligible items for table types, ignoring type filter"
	LogMsgLootTablesLoaded   = "Loot tables loaded"
	LogMsgLootTableDefaulted = "Loot table missing from config, using built-in default"
)
