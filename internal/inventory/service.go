package inventory

import (
	"context"
	"fmt"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Service manages binary item ownership
type Service interface {
	Has(ctx context.Context, userID, itemID string) (bool, error)
	// Grant is idempotent: an owned item reports domain.GrantAlreadyOwned, never an error
	Grant(ctx context.Context, userID, itemID string, source domain.InventorySource) (domain.GrantOutcome, error)
	// Revoke returns domain.ErrNotOwned when there was nothing to remove
	Revoke(ctx context.Context, userID, itemID string) error
	// List returns owned items ordered by type, then price, then id. A nil type lists all.
	List(ctx context.Context, userID string, itemType *domain.ItemType) ([]domain.Item, error)
	// OwnedSet returns the ids of every owned item
	OwnedSet(ctx context.Context, userID string) (map[string]bool, error)
}

type service struct {
	repo      repository.Inventory
	catalog   catalog.Service
	publisher event.Publisher
}

// NewService creates an inventory service. publisher may be nil.
func NewService(repo repository.Inventory, catalogSvc catalog.Service, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   catalogSvc,
		publisher: publisher,
	}
}

func validateSource(source domain.InventorySource) error {
	switch source {
	case domain.SourcePurchase, domain.SourceChest, domain.SourceAdmin:
		return nil
	}
	return fmt.Errorf(ErrFmtUnknownSource, domain.ErrInvalidInput, source)
}

func validatePair(userID, itemID string) error {
	if err := domain.ValidateUserID(userID); err != nil {
		return err
	}
	if itemID == "" {
		return fmt.Errorf(ErrFmtItemIDRequired, domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) Has(ctx context.Context, userID, itemID string) (bool, error) {
	if err := validatePair(userID, itemID); err != nil {
		return false, err
	}
	owned, err := s.repo.HasItem(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgHasItemFailed, err)
	}
	return owned, nil
}

func (s *service) Grant(ctx context.Context, userID, itemID string, source domain.InventorySource) (domain.GrantOutcome, error) {
	if err := validatePair(userID, itemID); err != nil {
		return "", err
	}
	if err := validateSource(source); err != nil {
		return "", err
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return "", err
	}

	log := logger.FromContext(ctx)
	granted, err := s.repo.GrantItem(ctx, userID, itemID, source)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGrantFailed, itemID, err)
	}
	if !granted {
		log.Info(LogMsgItemAlreadyOwned, "user_id", userID, "item_id", itemID)
		return domain.GrantAlreadyOwned, nil
	}

	log.Info(LogMsgItemGranted, "user_id", userID, "item_id", itemID, "source", source)
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewItemGrantedEvent(userID, *item, source))
	}
	return domain.GrantGranted, nil
}

func (s *service) Revoke(ctx context.Context, userID, itemID string) error {
	if err := validatePair(userID, itemID); err != nil {
		return err
	}

	removed, err := s.repo.RevokeItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf(ErrMsgRevokeFailed, itemID, err)
	}
	if !removed {
		return fmt.Errorf("%w: %s", domain.ErrNotOwned, itemID)
	}

	logger.FromContext(ctx).Info(LogMsgItemRevoked, "user_id", userID, "item_id", itemID)
	if s.publisher != nil {
		item := domain.Item{ID: itemID}
		if resolved, err := s.catalog.GetItem(ctx, itemID); err == nil {
			item = *resolved
		}
		s.publisher.PublishWithRetry(ctx, event.NewItemRevokedEvent(userID, item))
	}
	return nil
}

func (s *service) List(ctx context.Context, userID string, itemType *domain.ItemType) ([]domain.Item, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if itemType != nil && !itemType.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, *itemType)
	}
	items, err := s.repo.ListInventory(ctx, userID, itemType)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	return items, nil
}

func (s *service) OwnedSet(ctx context.Context, userID string) (map[string]bool, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	ids, err := s.repo.ListOwnedItemIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	owned := make(map[string]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}
	return owned, nil
}
