package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

func (s *service) Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "user_id", userID, "item_id", itemID)

	// 1. Validate request and resolve the item outside the transaction
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Active {
		return nil, fmt.Errorf(ErrFmtItemNotPurchasable, domain.ErrItemNotFound, itemID)
	}

	// 2. Begin transaction
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 3. Owned items are rejected before any coin moves
	owned, err := tx.HasItem(ctx, userID, item.ID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCheckOwnershipFailed, err)
	}
	if owned {
		return nil, fmt.Errorf(ErrFmtAlreadyOwned, domain.ErrAlreadyOwned, item.ID)
	}

	// 4. Conditional debit
	balance := 0
	if item.Price > 0 {
		balance, err = tx.Debit(ctx, userID, item.Price, domain.DebitPurchase)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgDebitFailed, err)
		}
	}

	// 5. Grant. A concurrent purchase that won the race rolls this one back.
	granted, err := tx.GrantItem(ctx, userID, item.ID, domain.SourcePurchase)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGrantFailed, item.ID, err)
	}
	if !granted {
		return nil, fmt.Errorf(ErrFmtAlreadyOwned, domain.ErrAlreadyOwned, item.ID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	// 6. Free items never touch the wallet, so read the balance back
	if item.Price == 0 {
		if balance, err = s.ledger.GetBalance(ctx, userID); err != nil {
			return nil, fmt.Errorf(ErrMsgGetBalanceFailed, err)
		}
	}

	log.Info(LogMsgItemPurchased, "user_id", userID, "item_id", item.ID, "price", item.Price, "balance", balance)

	if item.Price > 0 {
		s.publish(ctx, event.NewBalanceChangedEvent(userID, -item.Price, balance, string(domain.DebitPurchase)))
	}
	s.publish(ctx,
		event.NewItemPurchasedEvent(userID, *item, balance),
		event.NewItemGrantedEvent(userID, *item, domain.SourcePurchase),
	)

	return &domain.PurchaseResult{Item: *item, Balance: balance}, nil
}

func (s *service) Shop(ctx context.Context, userID, filter string) ([]domain.ShopEntry, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	var (
		items []domain.Item
		err   error
	)
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" || filter == ShopFilterAll {
		items, err = s.catalog.ListItems(ctx)
	} else {
		itemType, parseErr := domain.ParseItemType(filter)
		if parseErr != nil {
			return nil, fmt.Errorf(ErrFmtUnknownShopFilter, domain.ErrInvalidInput, filter)
		}
		items, err = s.catalog.ListItemsByType(ctx, itemType)
	}
	if err != nil {
		return nil, err
	}

	owned, err := s.inventory.OwnedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ShopEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, domain.ShopEntry{Item: item, Owned: owned[item.ID]})
	}
	return entries, nil
}
