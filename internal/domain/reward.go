package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// RewardType distinguishes trophies from achievements
type RewardType string

const (
	RewardTypeTrophy      RewardType = "trophy"
	RewardTypeAchievement RewardType = "achievement"
)

// RewardSlotsPerType is the size of each reward board
const RewardSlotsPerType = 30

// Valid reports whether t is a known reward type
func (t RewardType) Valid() bool {
	return t == RewardTypeTrophy || t == RewardTypeAchievement
}

// ParseRewardType converts a raw string into a RewardType
func ParseRewardType(s string) (RewardType, error) {
	t := RewardType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown reward type %q", ErrInvalidInput, s)
	}
	return t, nil
}

// RewardDefinition is a trophy or achievement slot in the catalog.
// Slot identity is stable; definitions are never deleted.
type RewardDefinition struct {
	ID          string     `json:"id" db:"reward_id"`
	Type        RewardType `json:"type" db:"reward_type"`
	SlotIndex   int        `json:"slot_index" db:"slot_index"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Icon        string     `json:"icon" db:"icon"`
}

// Validate checks the invariants of a reward definition
func (d RewardDefinition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: reward id is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(d.ID) > MaxCatalogIDLength {
		return fmt.Errorf("%w: reward id longer than %d characters", ErrInvalidInput, MaxCatalogIDLength)
	}
	if !d.Type.Valid() {
		return fmt.Errorf("%w: reward %s has unknown type %q", ErrInvalidInput, d.ID, d.Type)
	}
	if d.SlotIndex < 0 || d.SlotIndex >= RewardSlotsPerType {
		return fmt.Errorf("%w: reward %s slot %d out of range", ErrInvalidInput, d.ID, d.SlotIndex)
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: reward %s has no name", ErrInvalidInput, d.ID)
	}
	if utf8.RuneCountInString(d.Name) > MaxCatalogNameLength {
		return fmt.Errorf("%w: reward %s name longer than %d characters", ErrInvalidInput, d.ID, MaxCatalogNameLength)
	}
	return nil
}

// UserRewardUnlock is a permanently unlocked reward
type UserRewardUnlock struct {
	UserID     string    `json:"user_id"`
	RewardID   string    `json:"reward_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// UnlockOutcome reports the result of an idempotent unlock
type UnlockOutcome string

const (
	UnlockUnlocked        UnlockOutcome = "unlocked"
	UnlockAlreadyUnlocked UnlockOutcome = "already_unlocked"
)

// RewardSlot is one cell of a user's reward board
type RewardSlot struct {
	Definition RewardDefinition `json:"definition"`
	Unlocked   bool             `json:"unlocked"`
}
