package domain

import "time"

// CreditReason is why coins were added to a wallet
type CreditReason string

const (
	CreditPurchaseRefund CreditReason = "purchase_refund"
	CreditLevelUpBonus   CreditReason = "level_up_bonus"
	CreditChestReward    CreditReason = "chest_reward"
	CreditAdminGrant     CreditReason = "admin_grant"
)

// Valid reports whether r is a known credit reason
func (r CreditReason) Valid() bool {
	switch r {
	case CreditPurchaseRefund, CreditLevelUpBonus, CreditChestReward, CreditAdminGrant:
		return true
	}
	return false
}

// DebitReason is why coins were removed from a wallet
type DebitReason string

const (
	DebitPurchase DebitReason = "purchase"
)

// Valid reports whether r is a known debit reason
func (r DebitReason) Valid() bool {
	return r == DebitPurchase
}

// Wallet is a user's coin balance
type Wallet struct {
	UserID string `json:"user_id" db:"user_id"`
	Coins  int    `json:"coins" db:"coins"`
}

// LedgerEntry is an immutable journal row for one wallet mutation
type LedgerEntry struct {
	ID           string    `json:"id" db:"entry_id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Delta        int       `json:"delta" db:"delta"`
	Reason       string    `json:"reason" db:"reason"`
	BalanceAfter int       `json:"balance_after" db:"balance_after"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
