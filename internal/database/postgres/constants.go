package postgres

// PostgreSQL SQLSTATE codes the repositories react to
const (
	pgCodeUniqueViolation      = "23505"
	pgCodeForeignKeyViolation  = "23503"
	pgCodeCheckViolation       = "23514"
	pgCodeStringTooLong        = "22001"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeTooManyConnections   = "53300"
	pgCodeAdminShutdown        = "57P01"
	pgCodeCrashShutdown        = "57P02"
	pgCodeCannotConnectNow     = "57P03"
	pgClassConnectionException = "08"
)

// Error message formats
const (
	ErrMsgGetItemFailed            = "failed to get item"
	ErrMsgListItemsFailed          = "failed to list items"
	ErrMsgUpsertItemFailed         = "failed to upsert item"
	ErrMsgGetRewardFailed          = "failed to get reward definition"
	ErrMsgListRewardsFailed        = "failed to list reward definitions"
	ErrMsgUpsertRewardFailed       = "failed to upsert reward definition"
	ErrMsgGetBalanceFailed         = "failed to get balance"
	ErrMsgCreditFailed             = "failed to credit wallet"
	ErrMsgDebitFailed              = "failed to debit wallet"
	ErrMsgEnsureWalletFailed       = "failed to create wallet"
	ErrMsgLedgerFailed             = "failed to read ledger entries"
	ErrMsgHasItemFailed            = "failed to check ownership"
	ErrMsgGrantItemFailed          = "failed to grant item"
	ErrMsgRevokeItemFailed         = "failed to revoke item"
	ErrMsgListInventoryFailed      = "failed to list inventory"
	ErrMsgGetProgressionFailed     = "failed to get progression"
	ErrMsgLockProgressionFailed    = "failed to lock progression"
	ErrMsgUpdateProgressionFailed  = "failed to update progression"
	ErrMsgCreateChestFailed        = "failed to create chest"
	ErrMsgGetChestFailed           = "failed to get chest"
	ErrMsgListChestsFailed         = "failed to list chests"
	ErrMsgOpenChestFailed          = "failed to open chest"
	ErrMsgSetChestItemFailed       = "failed to record chest item"
	ErrMsgInsertUnlockFailed       = "failed to insert unlock"
	ErrMsgListUnlocksFailed        = "failed to list unlocks"
	ErrMsgGetProfileFailed         = "failed to get profile"
	ErrMsgCreateProfileFailed      = "failed to create profile"
	ErrMsgMarkWelcomeClaimedFailed = "failed to mark welcome chest claimed"
	ErrMsgBeginTxFailed            = "failed to begin transaction"
	ErrMsgCommitTxFailed           = "failed to commit transaction"
	ErrMsgAppendEventFailed        = "failed to append event"
	ErrMsgListEventsFailed         = "failed to list events"
	ErrMsgDeleteEventsFailed       = "failed to delete old events"
)
