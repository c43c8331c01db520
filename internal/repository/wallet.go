package repository

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// WalletWriter holds the atomic balance mutations shared by the wallet repository and transactions
type WalletWriter interface {
	// Credit adds amount to the balance, creating the wallet when missing, and returns the new balance
	Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error)
	// Debit subtracts amount only when the balance covers it.
	// Returns domain.ErrInsufficientFunds and leaves the balance untouched otherwise.
	Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error)
}

// Wallet defines the interface for coin balance persistence
type Wallet interface {
	WalletWriter
	GetBalance(ctx context.Context, userID string) (int, error)
	GetLedgerEntries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error)
}
