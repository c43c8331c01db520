package unlock

// Log messages
const (
	LogMsgRewardUnlocked  = "Reward unlocked"
	LogMsgAlreadyUnlocked = "Unlock skipped, reward already unlocked"
)

// Error messages
const (
	ErrMsgUnlockFailed     = "failed to unlock reward %s: %w"
	ErrMsgListFailed       = "failed to list unlocks: %w"
	ErrMsgBoardFailed      = "failed to build reward board: %w"
	ErrFmtRewardIDRequired = "%w: reward id is required"
)
