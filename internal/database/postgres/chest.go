package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// ChestRepository implements repository.Chest for PostgreSQL
type ChestRepository struct {
	queries
	db *pgxpool.Pool
}

var _ repository.Chest = (*ChestRepository)(nil)

// NewChestRepository creates a new ChestRepository
func NewChestRepository(db *pgxpool.Pool) *ChestRepository {
	return &ChestRepository{queries: queries{q: db}, db: db}
}

// BeginTx starts a new transaction
func (r *ChestRepository) BeginTx(ctx context.Context) (repository.ChestTx, error) {
	return beginTx(ctx, r.db)
}

// CreateChest inserts an unopened chest
func (q queries) CreateChest(ctx context.Context, chest *domain.Chest) error {
	_, err := q.q.Exec(ctx, `
		INSERT INTO chests (chest_id, user_id, tier, source, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5)`,
		chest.ID, chest.UserID, string(chest.Tier), string(chest.Source), chest.CreatedAt)
	if err != nil {
		return classifyError(ErrMsgCreateChestFailed, err)
	}
	return nil
}

// GetChest retrieves a chest by id
func (q queries) GetChest(ctx context.Context, chestID string) (*domain.Chest, error) {
	if _, err := uuid.Parse(chestID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
	}
	chest, err := scanChest(q.q.QueryRow(ctx, `SELECT `+chestColumns+` FROM chests WHERE chest_id = $1::uuid`, chestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
		}
		return nil, classifyError(ErrMsgGetChestFailed, err)
	}
	return &chest, nil
}

// ListChests lists a user's chests, oldest first
func (r *ChestRepository) ListChests(ctx context.Context, userID string, unopenedOnly bool) ([]domain.Chest, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+chestColumns+`
		FROM chests
		WHERE user_id = $1 AND (NOT $2::bool OR opened_at IS NULL)
		ORDER BY created_at ASC, chest_id ASC`, userID, unopenedOnly)
	if err != nil {
		return nil, classifyError(ErrMsgListChestsFailed, err)
	}
	defer rows.Close()

	chests := make([]domain.Chest, 0)
	for rows.Next() {
		chest, err := scanChest(rows)
		if err != nil {
			return nil, classifyError(ErrMsgListChestsFailed, err)
		}
		chests = append(chests, chest)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(ErrMsgListChestsFailed, err)
	}
	return chests, nil
}

// MarkChestOpened is the compare-and-set that makes opening single-use
func (q queries) MarkChestOpened(ctx context.Context, chestID, userID string, openedAt time.Time) (*domain.Chest, error) {
	if _, err := uuid.Parse(chestID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
	}

	chest, err := scanChest(q.q.QueryRow(ctx, `
		UPDATE chests SET opened_at = $3
		WHERE chest_id = $1::uuid AND user_id = $2 AND opened_at IS NULL
		RETURNING `+chestColumns, chestID, userID, openedAt))
	if err == nil {
		return &chest, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, classifyError(ErrMsgOpenChestFailed, err)
	}

	existing, err := q.GetChest(ctx, chestID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrChestAlreadyOpened, chestID)
}

// SetChestItem records which item the chest yielded
func (q queries) SetChestItem(ctx context.Context, chestID, itemID string) error {
	if _, err := q.q.Exec(ctx, `UPDATE chests SET item_id = $2 WHERE chest_id = $1::uuid`, chestID, itemID); err != nil {
		return classifyError(ErrMsgSetChestItemFailed, err)
	}
	return nil
}
