package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgRewardNotFound = "reward not found"
	ErrMsgEmptyCatalog   = "catalog is empty"

	// Profile errors
	ErrMsgProfileNotFound       = "profile not found"
	ErrMsgWelcomeAlreadyClaimed = "welcome chest already claimed"

	// Inventory errors
	ErrMsgAlreadyOwned = "item already owned"
	ErrMsgNotOwned     = "item not owned"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Chest errors
	ErrMsgChestNotFound      = "chest not found"
	ErrMsgChestAlreadyOpened = "chest already opened"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgStorageUnavailable = "storage unavailable"
	ErrMsgTxClosed           = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrRewardNotFound = errors.New(ErrMsgRewardNotFound)
	ErrEmptyCatalog   = errors.New(ErrMsgEmptyCatalog)

	// Profile errors
	ErrProfileNotFound       = errors.New(ErrMsgProfileNotFound)
	ErrWelcomeAlreadyClaimed = errors.New(ErrMsgWelcomeAlreadyClaimed)

	// Inventory errors
	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned     = errors.New(ErrMsgNotOwned)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Chest errors
	ErrChestNotFound      = errors.New(ErrMsgChestNotFound)
	ErrChestAlreadyOpened = errors.New(ErrMsgChestAlreadyOpened)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrStorageUnavailable marks transient store failures (connectivity, timeouts,
	// serialization conflicts). It is never used for business-rule outcomes.
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
)

// IsBusinessError reports whether err is an expected, user-facing outcome
func IsBusinessError(err error) bool {
	switch {
	case errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrAlreadyOwned),
		errors.Is(err, ErrChestAlreadyOpened),
		errors.Is(err, ErrNotOwned),
		errors.Is(err, ErrWelcomeAlreadyClaimed):
		return true
	}
	return false
}
