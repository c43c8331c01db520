package economy

// Level milestones
const (
	// MilestoneInterval is how often a level-up issues a chest
	MilestoneInterval = 5

	// EpicMilestoneInterval upgrades the milestone chest to epic
	EpicMilestoneInterval = 10

	// LegendaryMilestoneInterval upgrades the milestone chest to legendary
	LegendaryMilestoneInterval = 25
)

// ShopFilterAll lists every item type in the shop
const ShopFilterAll = "all"

// Log messages
const (
	LogMsgPurchaseCalled      = "Purchase called"
	LogMsgItemPurchased       = "Item purchased"
	LogMsgXPAwarded           = "XP awarded"
	LogMsgLevelUpBonus        = "Level-up bonus credited"
	LogMsgMilestoneChest      = "Milestone chest issued"
	LogMsgProfileClaimed      = "Profile claimed"
	LogMsgProfileExists       = "Profile already claimed"
	LogMsgWelcomeChestClaimed = "Welcome chest claimed"
	LogMsgAdminCoinsGranted   = "Admin coins granted"
)

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgCheckOwnershipFailed    = "failed to check ownership: %w"
	ErrMsgDebitFailed             = "failed to debit purchase: %w"
	ErrMsgGrantFailed             = "failed to grant item %s: %w"
	ErrMsgCreditBonusFailed       = "failed to credit level-up bonus: %w"
	ErrMsgCreateChestFailed       = "failed to create chest: %w"
	ErrMsgCreateProfileFailed     = "failed to create profile: %w"
	ErrMsgEnsureWalletFailed      = "failed to create wallet: %w"
	ErrMsgInitProgressionFailed   = "failed to initialise progression: %w"
	ErrMsgGetProfileFailed        = "failed to get profile: %w"
	ErrMsgGetBalanceFailed        = "failed to get balance: %w"
	ErrFmtItemNotPurchasable      = "%w: %s is not for sale"
	ErrFmtAlreadyOwned            = "%w: %s"
	ErrFmtUsernameTooLong         = "%w: username longer than %d characters"
	ErrFmtUnknownShopFilter       = "%w: unknown shop filter %q"
)

// MaxUsernameLength is the width of profiles.username in characters
const MaxUsernameLength = 50
