package logger

// Level names accepted from LOG_LEVEL besides slog's own
const (
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
)

// LogFormatJSON selects the JSON handler; anything else logs as text
const LogFormatJSON = "json"

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyUserID      = "user_id"
	AttrKeyClientIP    = "client_ip"
)
