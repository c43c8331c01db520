package progression

import (
	"context"
	"fmt"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service owns XP and levels. It never touches coins or chests.
type Service interface {
	GrantXP(ctx context.Context, userID string, amount int) (*domain.XPGrantResult, error)
	GetProgress(ctx context.Context, userID string) (*domain.ProgressView, error)
}

type service struct {
	repo      repository.Progression
	publisher event.Publisher
}

// NewService creates a progression service. publisher may be nil.
func NewService(repo repository.Progression, publisher event.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

// ValidateGrant checks an XP grant before any row is locked
func ValidateGrant(userID string, amount int) error {
	if err := domain.ValidateUserID(userID); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf(ErrFmtAmountNotPositive, domain.ErrInvalidInput, amount)
	}
	return nil
}

// ApplyXP locks the user's progression through w, applies amount and persists the result.
// The caller owns the transaction w belongs to.
func ApplyXP(ctx context.Context, w repository.ProgressionWriter, userID string, amount int) (*domain.XPGrantResult, error) {
	current, err := w.GetProgressionForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockProgressionFailed, err)
	}

	next, ups := Apply(*current, amount)
	next.UserID = userID
	if err := w.UpdateProgression(ctx, next); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgressionFailed, err)
	}

	return &domain.XPGrantResult{
		UserID:   userID,
		XPGained: amount,
		OldLevel: current.Level,
		NewLevel: next.Level,
		XP:       next.XP,
		XPToNext: Requirement(next.Level) - next.XP,
		LevelUps: ups,
	}, nil
}

// PublishLevelUps emits one leveled_up event per level in result
func PublishLevelUps(ctx context.Context, publisher event.Publisher, result *domain.XPGrantResult, source string) {
	if publisher == nil || result == nil {
		return
	}
	log := logger.FromContext(ctx)
	old := result.OldLevel
	for _, up := range result.LevelUps {
		log.Info(LogMsgLeveledUp, "user_id", result.UserID, "level", up.NewLevel)
		publisher.PublishWithRetry(ctx, event.NewLeveledUpEvent(result.UserID, old, up.NewLevel, Title(up.NewLevel), source))
		old = up.NewLevel
	}
}

func (s *service) GrantXP(ctx context.Context, userID string, amount int) (*domain.XPGrantResult, error) {
	if err := ValidateGrant(userID, amount); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	result, err := ApplyXP(ctx, tx, userID, amount)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgXPGranted,
		"user_id", userID, "amount", amount, "old_level", result.OldLevel, "new_level", result.NewLevel)
	PublishLevelUps(ctx, s.publisher, result, "")
	return result, nil
}

func (s *service) GetProgress(ctx context.Context, userID string) (*domain.ProgressView, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetProgression(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgressionFailed, err)
	}
	view := View(*p)
	return &view, nil
}
