package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string   // API key for authentication
	TrustedProxies []string // Proxies whose X-Forwarded-For is honoured
	Environment    string
	Version        string
	ServiceName    string

	// Logging
	LogLevel  string
	LogFormat string
	LogDir    string

	// Storage: "postgres" or "memory"
	StorageBackend string

	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration

	// Catalog
	CatalogItemsPath       string
	CatalogRewardsPath     string
	LootTablesPath         string
	CatalogCacheSize       int
	CatalogCacheTTL        time.Duration
	CatalogRefreshSchedule string // cron spec, empty disables the job

	// Economy
	LevelUpBonusPerLevel int

	// Event audit log
	EventLogRetention       time.Duration
	EventLogCleanupSchedule string // cron spec, empty disables the job

	// Event publishing
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// Optional cross-instance SSE fan-out
	RedisAddr    string
	RedisChannel string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),

		LogLevel:  getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:    getEnv("LOG_DIR", DefaultLogDir),

		StorageBackend: getEnv("STORAGE_BACKEND", StoragePostgres),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", DefaultDBName),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:  getEnvAsDuration("DB_MAX_IDLE", DefaultDBMaxIdle),
		DBMaxLife:  getEnvAsDuration("DB_MAX_LIFE", DefaultDBMaxLife),

		CatalogItemsPath:       getEnv("CATALOG_ITEMS_PATH", ConfigPathItems),
		CatalogRewardsPath:     getEnv("CATALOG_REWARDS_PATH", ConfigPathRewards),
		LootTablesPath:         getEnv("LOOT_TABLES_PATH", ConfigPathLootTables),
		CatalogCacheSize:       getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		CatalogCacheTTL:        getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),
		CatalogRefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", DefaultCatalogRefreshSchedule),

		LevelUpBonusPerLevel: getEnvAsInt("LEVEL_UP_BONUS_PER_LEVEL", DefaultLevelUpBonusPerLevel),

		EventLogRetention:       getEnvAsDuration("EVENT_LOG_RETENTION", DefaultEventLogRetention),
		EventLogCleanupSchedule: getEnv("EVENT_LOG_CLEANUP_SCHEDULE", DefaultEventLogCleanupSchedule),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),

		RedisAddr:    getEnv("REDIS_ADDR", ""),
		RedisChannel: getEnv("REDIS_CHANNEL", DefaultRedisChannel),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	if cfg.StorageBackend != StoragePostgres && cfg.StorageBackend != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value %q: want %q or %q", cfg.StorageBackend, StoragePostgres, StorageMemory)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.LevelUpBonusPerLevel < 0 {
		return nil, fmt.Errorf("invalid LEVEL_UP_BONUS_PER_LEVEL value: %d must not be negative", cfg.LevelUpBonusPerLevel)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration parses a duration environment variable (e.g. "30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
