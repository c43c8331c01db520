package chest

// Log messages
const (
	LogMsgChestIssued    = "Chest issued"
	LogMsgChestOpened    = "Chest opened"
	LogMsgChestDuplicate = "Chest yielded an item the user already owns"
)

// Error messages
const (
	ErrMsgBeginTxFailed    = "failed to begin transaction: %w"
	ErrMsgCommitFailed     = "failed to commit transaction: %w"
	ErrMsgCreateFailed     = "failed to create chest: %w"
	ErrMsgListFailed       = "failed to list chests: %w"
	ErrMsgPoolFailed       = "failed to load loot pool: %w"
	ErrMsgResolveFailed    = "failed to resolve loot for chest %s: %w"
	ErrMsgGrantFailed      = "failed to grant chest item %s: %w"
	ErrMsgRecordItemFailed = "failed to record chest item: %w"
	ErrFmtChestIDRequired  = "%w: chest id is required"
	ErrFmtUnknownSource    = "%w: unknown chest source %q"
)
