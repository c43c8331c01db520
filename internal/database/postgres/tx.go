package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// pgTx runs every query helper against one pgx transaction.
// It satisfies repository.ProgressionTx, repository.ChestTx and repository.EconomyTx.
type pgTx struct {
	queries
	tx pgx.Tx
}

var (
	_ repository.ProgressionTx = (*pgTx)(nil)
	_ repository.ChestTx       = (*pgTx)(nil)
	_ repository.EconomyTx     = (*pgTx)(nil)
)

func beginTx(ctx context.Context, db *pgxpool.Pool) (*pgTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, classifyError(ErrMsgBeginTxFailed, err)
	}
	return &pgTx{queries: queries{q: tx}, tx: tx}, nil
}

// Commit commits the transaction
func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return classifyError(ErrMsgCommitTxFailed, err)
	}
	return nil
}

// Rollback rolls back the transaction. pgx reports an already finished tx as "tx is closed".
func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
