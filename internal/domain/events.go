package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "wallet.balance_changed")
const (
	// EventTypeBalanceChanged is published after every committed credit or debit
	EventTypeBalanceChanged = "wallet.balance_changed"

	// EventTypeItemGranted is published when an item enters an inventory
	EventTypeItemGranted = "inventory.item_granted"

	// EventTypeItemRevoked is published when a user removes an item
	EventTypeItemRevoked = "inventory.item_revoked"

	// EventTypeItemPurchased is published after a committed purchase
	EventTypeItemPurchased = "shop.item_purchased"

	// EventTypeLeveledUp is published once per level gained
	EventTypeLeveledUp = "progression.leveled_up"

	// EventTypeChestIssued is published when a chest is created
	EventTypeChestIssued = "chest.issued"

	// EventTypeChestOpened is published after a chest is consumed
	EventTypeChestOpened = "chest.opened"

	// EventTypeRewardUnlocked is published when a trophy or achievement unlocks
	EventTypeRewardUnlocked = "reward.unlocked"
)

// BalanceChangedPayload is the payload for wallet.balance_changed
type BalanceChangedPayload struct {
	UserID    string `json:"user_id"`
	Delta     int    `json:"delta"`
	Balance   int    `json:"balance"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// ItemGrantedPayload is the payload for inventory.item_granted and inventory.item_revoked
type ItemGrantedPayload struct {
	UserID    string `json:"user_id"`
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Rarity    string `json:"rarity"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// ItemPurchasedPayload is the payload for shop.item_purchased
type ItemPurchasedPayload struct {
	UserID    string `json:"user_id"`
	ItemID    string `json:"item_id"`
	Rarity    string `json:"rarity"`
	Price     int    `json:"price"`
	Balance   int    `json:"balance"`
	Timestamp int64  `json:"timestamp"`
}

// LeveledUpPayload is the payload for progression.leveled_up
type LeveledUpPayload struct {
	UserID    string `json:"user_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Title     string `json:"title"`
	Source    string `json:"source,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ChestPayload is the payload for chest.issued and chest.opened
type ChestPayload struct {
	UserID    string `json:"user_id"`
	ChestID   string `json:"chest_id"`
	Tier      string `json:"tier"`
	Source    string `json:"source,omitempty"`
	ItemID    string `json:"item_id,omitempty"`
	Rarity    string `json:"rarity,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// RewardUnlockedPayload is the payload for reward.unlocked
type RewardUnlockedPayload struct {
	UserID     string `json:"user_id"`
	RewardID   string `json:"reward_id"`
	RewardType string `json:"reward_type"`
	Timestamp  int64  `json:"timestamp"`
}
