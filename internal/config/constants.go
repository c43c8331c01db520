package config

import "time"

const (
	// Configuration file paths
	ConfigPathItems      = "configs/catalog/items.json"
	ConfigPathRewards    = "configs/catalog/rewards.json"
	ConfigPathLootTables = "configs/loot_tables.json"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Defaults
const (
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultServiceName = "penada-real-economy"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultDBName      = "penada_real"

	DefaultDBMaxConns = 20
	DefaultDBMaxIdle  = 5 * time.Minute
	DefaultDBMaxLife  = 30 * time.Minute

	DefaultCatalogCacheSize       = 512
	DefaultCatalogCacheTTL        = 10 * time.Minute
	DefaultCatalogRefreshSchedule = "@every 15m"

	DefaultLevelUpBonusPerLevel = 10

	DefaultEventLogRetention       = 30 * 24 * time.Hour
	DefaultEventLogCleanupSchedule = "@daily"

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"

	DefaultRedisChannel = "penada:sse"
)
