package database

import "time"

// Pool settings
const (
	DefaultMinConnections int32 = 2
	PingTimeout                 = 5 * time.Second
	ApplicationName             = "penada-real-economy"
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
	ErrMsgFailedToReadDBVersion   = "failed to read schema version"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to the database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgSchemaUpToDate                  = "Database schema is up to date"
)
