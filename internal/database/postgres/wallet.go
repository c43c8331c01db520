package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// WalletRepository implements repository.Wallet for PostgreSQL
type WalletRepository struct {
	queries
}

var _ repository.Wallet = (*WalletRepository)(nil)

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{queries{q: db}}
}

// GetBalance returns the coin balance. A missing wallet reads as zero.
func (q queries) GetBalance(ctx context.Context, userID string) (int, error) {
	var coins int
	err := q.q.QueryRow(ctx, `SELECT coins FROM wallets WHERE user_id = $1`, userID).Scan(&coins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, classifyError(ErrMsgGetBalanceFailed, err)
	}
	return coins, nil
}

// Credit increments the balance and journals the change in one statement
func (q queries) Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error) {
	var balance int
	err := q.q.QueryRow(ctx, `
		WITH w AS (
			INSERT INTO wallets (user_id, coins) VALUES ($1, $2::int)
			ON CONFLICT (user_id) DO UPDATE SET coins = wallets.coins + EXCLUDED.coins, updated_at = NOW()
			RETURNING user_id, coins
		), l AS (
			INSERT INTO ledger_entries (entry_id, user_id, delta, reason, balance_after)
			SELECT $3::uuid, user_id, $2::int, $4, coins FROM w
		)
		SELECT coins FROM w`,
		userID, amount, uuid.NewString(), string(reason)).Scan(&balance)
	if err != nil {
		return 0, classifyError(ErrMsgCreditFailed, err)
	}
	return balance, nil
}

// Debit is a conditional decrement: zero affected rows means the balance could not cover amount
func (q queries) Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error) {
	var balance int
	err := q.q.QueryRow(ctx, `
		WITH w AS (
			UPDATE wallets SET coins = coins - $2::int, updated_at = NOW()
			WHERE user_id = $1 AND coins >= $2::int
			RETURNING user_id, coins
		), l AS (
			INSERT INTO ledger_entries (entry_id, user_id, delta, reason, balance_after)
			SELECT $3::uuid, user_id, -($2::int), $4, coins FROM w
		)
		SELECT coins FROM w`,
		userID, amount, uuid.NewString(), string(reason)).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: user %s cannot cover %d coins", domain.ErrInsufficientFunds, userID, amount)
		}
		return 0, classifyError(ErrMsgDebitFailed, err)
	}
	return balance, nil
}

// EnsureWallet creates an empty wallet when none exists
func (q queries) EnsureWallet(ctx context.Context, userID string) error {
	if _, err := q.q.Exec(ctx, `INSERT INTO wallets (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		return classifyError(ErrMsgEnsureWalletFailed, err)
	}
	return nil
}

// GetLedgerEntries returns the most recent journal rows first
func (q queries) GetLedgerEntries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	rows, err := q.q.Query(ctx, `
		SELECT entry_id::text, user_id, delta, reason, balance_after, created_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, classifyError(ErrMsgLedgerFailed, err)
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Delta, &e.Reason, &e.BalanceAfter, &e.CreatedAt); err != nil {
			return nil, classifyError(ErrMsgLedgerFailed, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(ErrMsgLedgerFailed, err)
	}
	return entries, nil
}
