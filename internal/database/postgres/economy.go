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

// EconomyRepository implements repository.Economy for PostgreSQL
type EconomyRepository struct {
	queries
	db *pgxpool.Pool
}

var _ repository.Economy = (*EconomyRepository)(nil)

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{queries: queries{q: db}, db: db}
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	return beginTx(ctx, r.db)
}

// GetProfile retrieves a claimed profile
func (q queries) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p := domain.Profile{UserID: userID}
	err := q.q.QueryRow(ctx, `
		SELECT username, welcome_claimed, created_at FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.Username, &p.WelcomeClaimed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
		}
		return nil, classifyError(ErrMsgGetProfileFailed, err)
	}
	return &p, nil
}

// CreateProfile inserts the profile row unless it already exists
func (q queries) CreateProfile(ctx context.Context, userID, username string) (bool, error) {
	tag, err := q.q.Exec(ctx, `
		INSERT INTO profiles (user_id, username) VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING`, userID, username)
	if err != nil {
		return false, classifyError(ErrMsgCreateProfileFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkWelcomeClaimed flips welcome_claimed with a conditional update
func (q queries) MarkWelcomeClaimed(ctx context.Context, userID string) error {
	tag, err := q.q.Exec(ctx, `
		UPDATE profiles SET welcome_claimed = TRUE
		WHERE user_id = $1 AND NOT welcome_claimed`, userID)
	if err != nil {
		return classifyError(ErrMsgMarkWelcomeClaimedFailed, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if _, err := q.GetProfile(ctx, userID); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", domain.ErrWelcomeAlreadyClaimed, userID)
}
