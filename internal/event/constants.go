package event

import "time"

// EventSchemaVersion is stamped on every event built by the constructors in this package
const EventSchemaVersion = "1.0"

// Retry settings used when the publisher is built with zero values
const (
	DefaultMaxRetries = 5
	DefaultRetryDelay = 2 * time.Second
	MaxRetryDelay     = time.Minute
	RetryQueueSize    = 1000
)

const deadLetterFileMode = 0o644

// Log messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "%d handlers failed for event %s: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first, capped at MaxRetryDelay
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= MaxRetryDelay {
			return MaxRetryDelay
		}
	}
	return d
}
