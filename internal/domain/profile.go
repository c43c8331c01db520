package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxUserIDLength bounds the opaque identity supplied by the caller
const MaxUserIDLength = 64

// ValidateUserID rejects empty or oversized user ids
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if len(userID) > MaxUserIDLength {
		return fmt.Errorf("%w: user id longer than %d characters", ErrInvalidInput, MaxUserIDLength)
	}
	return nil
}

// Profile is the engine-side record of a claimed user
type Profile struct {
	UserID         string    `json:"user_id" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	WelcomeClaimed bool      `json:"welcome_claimed" db:"welcome_claimed"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ProfileSummary aggregates a user's economy state
type ProfileSummary struct {
	Profile     Profile      `json:"profile"`
	Coins       int          `json:"coins"`
	Progression ProgressView `json:"progression"`
	ItemsOwned  int          `json:"items_owned"`
	Unlocked    int          `json:"rewards_unlocked"`
}

// PurchaseResult describes a completed purchase
type PurchaseResult struct {
	Item    Item `json:"item"`
	Balance int  `json:"balance"`
}

// AwardXPResult combines the progression transition with the rewards it triggered
type AwardXPResult struct {
	XPGrantResult
	BonusCoins   int     `json:"bonus_coins"`
	Balance      int     `json:"balance"`
	ChestsIssued []Chest `json:"chests_issued,omitempty"`
}
