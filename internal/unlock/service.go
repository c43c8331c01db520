package unlock

import (
	"context"
	"fmt"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service tracks trophy and achievement unlocks. Unlocks are append-only.
type Service interface {
	// Unlock is idempotent: a second call reports domain.UnlockAlreadyUnlocked
	Unlock(ctx context.Context, userID, rewardID string) (domain.UnlockOutcome, error)
	// ListUnlocked returns the unlocked reward ids in unlock order
	ListUnlocked(ctx context.Context, userID string) ([]string, error)
	// Board returns every defined slot of one reward type, ordered by slot
	Board(ctx context.Context, userID string, rewardType domain.RewardType) ([]domain.RewardSlot, error)
}

type service struct {
	repo      repository.Unlock
	catalog   catalog.Service
	publisher event.Publisher
}

// NewService creates an unlock service. publisher may be nil.
func NewService(repo repository.Unlock, catalogSvc catalog.Service, publisher event.Publisher) Service {
	return &service{repo: repo, catalog: catalogSvc, publisher: publisher}
}

func (s *service) Unlock(ctx context.Context, userID, rewardID string) (domain.UnlockOutcome, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return "", err
	}
	if rewardID == "" {
		return "", fmt.Errorf(ErrFmtRewardIDRequired, domain.ErrInvalidInput)
	}

	def, err := s.catalog.GetRewardDefinition(ctx, rewardID)
	if err != nil {
		return "", err
	}

	log := logger.FromContext(ctx)
	inserted, err := s.repo.InsertUnlock(ctx, userID, rewardID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgUnlockFailed, rewardID, err)
	}
	if !inserted {
		log.Info(LogMsgAlreadyUnlocked, "user_id", userID, "reward_id", rewardID)
		return domain.UnlockAlreadyUnlocked, nil
	}

	log.Info(LogMsgRewardUnlocked, "user_id", userID, "reward_id", rewardID, "type", def.Type)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewRewardUnlockedEvent(userID, *def))
	}
	return domain.UnlockUnlocked, nil
}

func (s *service) ListUnlocked(ctx context.Context, userID string) ([]string, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	unlocks, err := s.repo.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	ids := make([]string, 0, len(unlocks))
	for _, u := range unlocks {
		ids = append(ids, u.RewardID)
	}
	return ids, nil
}

func (s *service) Board(ctx context.Context, userID string, rewardType domain.RewardType) ([]domain.RewardSlot, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if !rewardType.Valid() {
		return nil, fmt.Errorf("%w: unknown reward type %q", domain.ErrInvalidInput, rewardType)
	}

	defs, err := s.catalog.GetRewardDefinitions(ctx, &rewardType)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBoardFailed, err)
	}
	unlocked, err := s.ListUnlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		done[id] = true
	}

	slots := make([]domain.RewardSlot, 0, len(defs))
	for _, def := range defs {
		slots = append(slots, domain.RewardSlot{Definition: def, Unlocked: done[def.ID]})
	}
	return slots, nil
}
