package ledger

// History page sizes
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// Log messages
const (
	LogMsgCredited      = "Coins credited"
	LogMsgDebited       = "Coins debited"
	LogMsgDebitRejected = "Debit rejected"
)

// Error messages
const (
	ErrFmtAmount         = "%w: amount must be positive, got %d"
	ErrFmtCreditReason   = "%w: unknown credit reason %q"
	ErrFmtDebitReason    = "%w: unknown debit reason %q"
	ErrMsgCreditFailed   = "failed to credit wallet: %w"
	ErrMsgDebitFailed    = "failed to debit wallet: %w"
	ErrMsgBalanceFailed  = "failed to get balance: %w"
	ErrMsgHistoryFailed  = "failed to get ledger history: %w"
)
