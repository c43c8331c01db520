package chest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/lootbox"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service manages the chest lifecycle: Unopened -> Opened
type Service interface {
	// Issue always creates a new unopened chest
	Issue(ctx context.Context, userID string, tier domain.ChestTier, source domain.ChestSource) (*domain.Chest, error)
	// Open consumes a chest exactly once and grants the resolved item in the same transaction
	Open(ctx context.Context, chestID, userID string) (*domain.ChestOpenResult, error)
	ListChests(ctx context.Context, userID string, unopenedOnly bool) ([]domain.Chest, error)
}

type service struct {
	repo      repository.Chest
	resolver  lootbox.Resolver
	pool      lootbox.ItemSource
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a chest service. pool supplies the active items the resolver draws from.
func NewService(repo repository.Chest, resolver lootbox.Resolver, pool lootbox.ItemSource, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		resolver:  resolver,
		pool:      pool,
		publisher: publisher,
		now:       time.Now,
	}
}

// New builds an unopened chest with a fresh id
func New(userID string, tier domain.ChestTier, source domain.ChestSource, now time.Time) *domain.Chest {
	return &domain.Chest{
		ID:        uuid.NewString(),
		UserID:    userID,
		Tier:      tier,
		Source:    source,
		CreatedAt: now.UTC(),
	}
}

// ValidateIssue checks a chest request
func ValidateIssue(userID string, tier domain.ChestTier, source domain.ChestSource) error {
	if err := domain.ValidateUserID(userID); err != nil {
		return err
	}
	if !tier.Valid() {
		return fmt.Errorf("%w: unknown chest tier %q", domain.ErrInvalidInput, tier)
	}
	switch source {
	case domain.ChestSourceWelcome, domain.ChestSourceLevelMilestone, domain.ChestSourceAdmin, domain.ChestSourceCombo:
		return nil
	}
	return fmt.Errorf(ErrFmtUnknownSource, domain.ErrInvalidInput, source)
}

// PublishIssued emits chest.issued for every chest
func PublishIssued(ctx context.Context, publisher event.Publisher, chests ...domain.Chest) {
	if publisher == nil {
		return
	}
	for _, c := range chests {
		publisher.PublishWithRetry(ctx, event.NewChestIssuedEvent(c))
	}
}

func (s *service) Issue(ctx context.Context, userID string, tier domain.ChestTier, source domain.ChestSource) (*domain.Chest, error) {
	if err := ValidateIssue(userID, tier, source); err != nil {
		return nil, err
	}

	c := New(userID, tier, source, s.now())
	if err := s.repo.CreateChest(ctx, c); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgChestIssued, "user_id", userID, "chest_id", c.ID, "tier", tier, "source", source)
	PublishIssued(ctx, s.publisher, *c)
	return c, nil
}

func (s *service) Open(ctx context.Context, chestID, userID string) (*domain.ChestOpenResult, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if chestID == "" {
		return nil, fmt.Errorf(ErrFmtChestIDRequired, domain.ErrInvalidInput)
	}
	log := logger.FromContext(ctx)

	// Read the pool before the chest row is locked
	pool, err := s.pool.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPoolFailed, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	opened, err := tx.MarkChestOpened(ctx, chestID, userID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	item, err := s.resolver.ResolveFrom(ctx, pool, opened.Tier)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveFailed, chestID, err)
	}

	granted, err := tx.GrantItem(ctx, userID, item.ID, domain.SourceChest)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGrantFailed, item.ID, err)
	}
	if err := tx.SetChestItem(ctx, chestID, item.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgRecordItemFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitFailed, err)
	}

	opened.ItemID = &item.ID
	result := &domain.ChestOpenResult{
		Chest:        *opened,
		Item:         *item,
		AlreadyOwned: !granted,
	}

	log.Info(LogMsgChestOpened, "user_id", userID, "chest_id", chestID, "tier", opened.Tier, "item_id", item.ID, "rarity", item.Rarity)
	if !granted {
		log.Info(LogMsgChestDuplicate, "user_id", userID, "item_id", item.ID)
	}

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewChestOpenedEvent(result.Chest, *item))
		if granted {
			s.publisher.PublishWithRetry(ctx, event.NewItemGrantedEvent(userID, *item, domain.SourceChest))
		}
	}
	return result, nil
}

func (s *service) ListChests(ctx context.Context, userID string, unopenedOnly bool) ([]domain.Chest, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	chests, err := s.repo.ListChests(ctx, userID, unopenedOnly)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return chests, nil
}
