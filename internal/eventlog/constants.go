package eventlog

import "time"

// Query limits for Recent
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// DefaultRetention is how long audit entries are kept when no retention is configured
const DefaultRetention = 30 * 24 * time.Hour

// JobNameCleanup names the retention job in worker logs
const JobNameCleanup = "event_log_cleanup"

// Log messages
const (
	LogMsgEventLogged         = "Event logged"
	LogMsgFailedToLogEvent    = "Failed to log event"
	LogMsgEncodePayloadFailed = "Failed to encode event payload, skipping log"
	LogMsgSubscribed          = "Event log subscribed to bus"
	LogMsgCleanupStarting     = "Starting event log cleanup"
	LogMsgCleanupFailed       = "Event log cleanup failed"
	LogMsgCleanupCompleted    = "Event log cleanup completed"
)

// Error messages
const (
	ErrMsgUnknownEventType = "unknown event type %q"
	ErrMsgInvalidLimit     = "limit must be between 1 and %d"
	ErrMsgInvalidRetention = "retention must be positive"
)
