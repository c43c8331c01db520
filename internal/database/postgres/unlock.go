package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// UnlockRepository implements repository.Unlock for PostgreSQL
type UnlockRepository struct {
	queries
}

var _ repository.Unlock = (*UnlockRepository)(nil)

// NewUnlockRepository creates a new UnlockRepository
func NewUnlockRepository(db *pgxpool.Pool) *UnlockRepository {
	return &UnlockRepository{queries{q: db}}
}

// InsertUnlock appends the unlock; the primary key makes repeats a no-op
func (r *UnlockRepository) InsertUnlock(ctx context.Context, userID, rewardID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		INSERT INTO user_reward_unlocks (user_id, reward_id) VALUES ($1, $2)
		ON CONFLICT (user_id, reward_id) DO NOTHING`, userID, rewardID)
	if err != nil {
		if pgCode(err) == pgCodeForeignKeyViolation {
			return false, fmt.Errorf("%w: %s", domain.ErrRewardNotFound, rewardID)
		}
		return false, classifyError(ErrMsgInsertUnlockFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListUnlocks returns unlocks in the order they happened
func (r *UnlockRepository) ListUnlocks(ctx context.Context, userID string) ([]domain.UserRewardUnlock, error) {
	rows, err := r.q.Query(ctx, `
		SELECT user_id, reward_id, unlocked_at FROM user_reward_unlocks
		WHERE user_id = $1
		ORDER BY unlocked_at ASC, reward_id ASC`, userID)
	if err != nil {
		return nil, classifyError(ErrMsgListUnlocksFailed, err)
	}
	defer rows.Close()

	unlocks := make([]domain.UserRewardUnlock, 0)
	for rows.Next() {
		var u domain.UserRewardUnlock
		if err := rows.Scan(&u.UserID, &u.RewardID, &u.UnlockedAt); err != nil {
			return nil, classifyError(ErrMsgListUnlocksFailed, err)
		}
		unlocks = append(unlocks, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(ErrMsgListUnlocksFailed, err)
	}
	return unlocks, nil
}
