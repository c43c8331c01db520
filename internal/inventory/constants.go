package inventory

// Log messages
const (
	LogMsgItemGranted      = "Item granted"
	LogMsgItemAlreadyOwned = "Grant skipped, item already owned"
	LogMsgItemRevoked      = "Item revoked"
)

// Error messages
const (
	ErrMsgHasItemFailed  = "failed to check ownership: %w"
	ErrMsgGrantFailed    = "failed to grant item %s: %w"
	ErrMsgRevokeFailed   = "failed to revoke item %s: %w"
	ErrMsgListFailed     = "failed to list inventory: %w"
	ErrFmtUnknownSource  = "%w: unknown inventory source %q"
	ErrFmtItemIDRequired = "%w: item id is required"
)
