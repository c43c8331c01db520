package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// ProgressionRepository implements repository.Progression for PostgreSQL
type ProgressionRepository struct {
	queries
	db *pgxpool.Pool
}

var _ repository.Progression = (*ProgressionRepository)(nil)

// NewProgressionRepository creates a new ProgressionRepository
func NewProgressionRepository(db *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{queries: queries{q: db}, db: db}
}

// BeginTx starts a new transaction
func (r *ProgressionRepository) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	return beginTx(ctx, r.db)
}

// GetProgression reads the XP state without locking
func (r *ProgressionRepository) GetProgression(ctx context.Context, userID string) (*domain.UserProgression, error) {
	p := domain.UserProgression{UserID: userID}
	err := r.q.QueryRow(ctx, `SELECT level, xp FROM user_progression WHERE user_id = $1`, userID).Scan(&p.Level, &p.XP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
		}
		return nil, classifyError(ErrMsgGetProgressionFailed, err)
	}
	return &p, nil
}

// GetProgressionForUpdate creates the row at the starting level if needed, then locks it
func (q queries) GetProgressionForUpdate(ctx context.Context, userID string) (*domain.UserProgression, error) {
	if _, err := q.q.Exec(ctx, `
		INSERT INTO user_progression (user_id, level, xp) VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO NOTHING`, userID, domain.StartingLevel); err != nil {
		return nil, classifyError(ErrMsgLockProgressionFailed, err)
	}

	p := domain.UserProgression{UserID: userID}
	err := q.q.QueryRow(ctx, `SELECT level, xp FROM user_progression WHERE user_id = $1 FOR UPDATE`, userID).Scan(&p.Level, &p.XP)
	if err != nil {
		return nil, classifyError(ErrMsgLockProgressionFailed, err)
	}
	return &p, nil
}

// UpdateProgression persists the new XP state
func (q queries) UpdateProgression(ctx context.Context, p domain.UserProgression) error {
	_, err := q.q.Exec(ctx, `
		UPDATE user_progression SET level = $2, xp = $3, updated_at = NOW()
		WHERE user_id = $1`, p.UserID, p.Level, p.XP)
	if err != nil {
		return classifyError(ErrMsgUpdateProgressionFailed, err)
	}
	return nil
}
