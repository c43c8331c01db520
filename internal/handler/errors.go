package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Identity
	ErrMsgMissingUserID = "Missing " + HeaderUserID + " header"
	ErrMsgInvalidUserID = "Invalid " + HeaderUserID + " header"

	// Operation messages used when logging failures
	ErrMsgClaimProfileFailed   = "Failed to claim profile"
	ErrMsgGetProfileFailed     = "Failed to get profile"
	ErrMsgListItemsFailed      = "Failed to list catalog items"
	ErrMsgGetItemFailed        = "Failed to get catalog item"
	ErrMsgListRewardsFailed    = "Failed to list reward definitions"
	ErrMsgGetBalanceFailed     = "Failed to get balance"
	ErrMsgGetHistoryFailed     = "Failed to get wallet history"
	ErrMsgGetInventoryFailed   = "Failed to get inventory"
	ErrMsgRevokeItemFailed     = "Failed to remove item"
	ErrMsgGetShopFailed        = "Failed to get shop"
	ErrMsgPurchaseFailed       = "Failed to purchase item"
	ErrMsgListChestsFailed     = "Failed to list chests"
	ErrMsgOpenChestFailed      = "Failed to open chest"
	ErrMsgWelcomeChestFailed   = "Failed to claim welcome chest"
	ErrMsgGetProgressionFailed = "Failed to get progression"
	ErrMsgGrantXPFailed        = "Failed to grant XP"
	ErrMsgGetBoardFailed       = "Failed to get reward board"
	ErrMsgUnlockRewardFailed   = "Failed to unlock reward"

	// Admin messages
	ErrMsgAdminGrantCoinsFailed = "Failed to grant coins"
	ErrMsgAdminAwardXPFailed    = "Failed to award XP"
	ErrMsgAdminUpsertItemFailed = "Failed to save item"
	ErrMsgAdminUpsertRewardFail = "Failed to save reward definition"
	ErrMsgAdminIssueChestFailed = "Failed to issue chest"
	ErrMsgReloadCatalogFailed   = "Failed to reload catalog"
	ErrMsgAdminListEventsFailed = "Failed to list logged events"
)

// Success messages
const (
	MsgItemRemoved     = "Item removed"
	MsgItemSaved       = "Item saved"
	MsgRewardSaved     = "Reward definition saved"
	MsgCatalogReloaded = "Catalog reloaded"
)
