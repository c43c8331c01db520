package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Engine event types
const (
	BalanceChanged Type = domain.EventTypeBalanceChanged
	ItemGranted    Type = domain.EventTypeItemGranted
	ItemRevoked    Type = domain.EventTypeItemRevoked
	ItemPurchased  Type = domain.EventTypeItemPurchased
	LeveledUp      Type = domain.EventTypeLeveledUp
	ChestIssued    Type = domain.EventTypeChestIssued
	ChestOpened    Type = domain.EventTypeChestOpened
	RewardUnlocked Type = domain.EventTypeRewardUnlocked
)

// AllTypes lists every engine event type, used by subscribers that want everything
var AllTypes = []Type{
	BalanceChanged,
	ItemGranted,
	ItemRevoked,
	ItemPurchased,
	LeveledUp,
	ChestIssued,
	ChestOpened,
	RewardUnlocked,
}

// Type-safe event constructors

// NewBalanceChangedEvent creates a wallet.balance_changed event
func NewBalanceChangedEvent(userID string, delta, balance int, reason string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BalanceChanged,
		Payload: domain.BalanceChangedPayload{
			UserID:    userID,
			Delta:     delta,
			Balance:   balance,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemGrantedEvent creates an inventory.item_granted event
func NewItemGrantedEvent(userID string, item domain.Item, source domain.InventorySource) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemGranted,
		Payload: domain.ItemGrantedPayload{
			UserID:    userID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Rarity:    string(item.Rarity),
			Source:    string(source),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemRevokedEvent creates an inventory.item_revoked event
func NewItemRevokedEvent(userID string, item domain.Item) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemRevoked,
		Payload: domain.ItemGrantedPayload{
			UserID:    userID,
			ItemID:    item.ID,
			ItemName:  item.Name,
			Rarity:    string(item.Rarity),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemPurchasedEvent creates a shop.item_purchased event
func NewItemPurchasedEvent(userID string, item domain.Item, balance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: domain.ItemPurchasedPayload{
			UserID:    userID,
			ItemID:    item.ID,
			Rarity:    string(item.Rarity),
			Price:     item.Price,
			Balance:   balance,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLeveledUpEvent creates a progression.leveled_up event
func NewLeveledUpEvent(userID string, oldLevel, newLevel int, title, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LeveledUp,
		Payload: domain.LeveledUpPayload{
			UserID:    userID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Title:     title,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"source": source,
		},
	}
}

// NewChestIssuedEvent creates a chest.issued event
func NewChestIssuedEvent(chest domain.Chest) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChestIssued,
		Payload: domain.ChestPayload{
			UserID:    chest.UserID,
			ChestID:   chest.ID,
			Tier:      string(chest.Tier),
			Source:    string(chest.Source),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewChestOpenedEvent creates a chest.opened event
func NewChestOpenedEvent(chest domain.Chest, item domain.Item) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChestOpened,
		Payload: domain.ChestPayload{
			UserID:    chest.UserID,
			ChestID:   chest.ID,
			Tier:      string(chest.Tier),
			ItemID:    item.ID,
			Rarity:    string(item.Rarity),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRewardUnlockedEvent creates a reward.unlocked event
func NewRewardUnlockedEvent(userID string, def domain.RewardDefinition) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardUnlocked,
		Payload: domain.RewardUnlockedPayload{
			UserID:     userID,
			RewardID:   def.ID,
			RewardType: string(def.Type),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// UserIDOf extracts the owning user of an engine event payload
func UserIDOf(evt Event) string {
	switch p := evt.Payload.(type) {
	case domain.BalanceChangedPayload:
		return p.UserID
	case domain.ItemGrantedPayload:
		return p.UserID
	case domain.ItemPurchasedPayload:
		return p.UserID
	case domain.LeveledUpPayload:
		return p.UserID
	case domain.ChestPayload:
		return p.UserID
	case domain.RewardUnlockedPayload:
		return p.UserID
	}
	return ""
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the fire-and-forget side used by services after a commit
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
