package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

type catalogRepo struct{ s *Store }

func (r catalogRepo) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return &item, nil
}

func (r catalogRepo) ListItems(ctx context.Context, itemType *domain.ItemType, activeOnly bool) ([]domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedItems(func(item domain.Item) bool {
		if itemType != nil && item.Type != *itemType {
			return false
		}
		return !activeOnly || item.Active
	}), nil
}

func (r catalogRepo) UpsertItem(ctx context.Context, item domain.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = item
	return nil
}

func (r catalogRepo) GetRewardDefinition(ctx context.Context, rewardID string) (*domain.RewardDefinition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	def, ok := r.s.rewards[rewardID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRewardNotFound, rewardID)
	}
	return &def, nil
}

func (r catalogRepo) ListRewardDefinitions(ctx context.Context, rewardType *domain.RewardType) ([]domain.RewardDefinition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	defs := make([]domain.RewardDefinition, 0, len(r.s.rewards))
	for _, def := range r.s.rewards {
		if rewardType == nil || def.Type == *rewardType {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Type != defs[j].Type {
			return defs[i].Type < defs[j].Type
		}
		return defs[i].SlotIndex < defs[j].SlotIndex
	})
	return defs, nil
}

func (r catalogRepo) UpsertRewardDefinition(ctx context.Context, def domain.RewardDefinition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, existing := range r.s.rewards {
		if id != def.ID && existing.Type == def.Type && existing.SlotIndex == def.SlotIndex {
			return fmt.Errorf("%w: %s slot %d is taken", domain.ErrInvalidInput, def.Type, def.SlotIndex)
		}
	}
	r.s.rewards[def.ID] = def
	return nil
}

type walletRepo struct{ s *Store }

func (r walletRepo) GetBalance(ctx context.Context, userID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.wallets[userID], nil
}

func (r walletRepo) Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.credit(nil, userID, amount, reason)
}

func (r walletRepo) Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.debit(nil, userID, amount, reason)
}

func (r walletRepo) GetLedgerEntries(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entries := make([]domain.LedgerEntry, 0)
	for i := len(r.s.ledger) - 1; i >= 0 && len(entries) < limit; i-- {
		if r.s.ledger[i].UserID == userID {
			entries = append(entries, r.s.ledger[i])
		}
	}
	return entries, nil
}

type inventoryRepo struct{ s *Store }

func (r inventoryRepo) HasItem(ctx context.Context, userID, itemID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.owned[ownershipKey{userID, itemID}]
	return ok, nil
}

func (r inventoryRepo) GrantItem(ctx context.Context, userID, itemID string, source domain.InventorySource) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.grant(nil, userID, itemID, source)
}

func (r inventoryRepo) RevokeItem(ctx context.Context, userID, itemID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := ownershipKey{userID, itemID}
	if _, ok := r.s.owned[key]; !ok {
		return false, nil
	}
	delete(r.s.owned, key)
	return true, nil
}

func (r inventoryRepo) ListInventory(ctx context.Context, userID string, itemType *domain.ItemType) ([]domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	items := r.s.sortedItems(func(item domain.Item) bool {
		if _, ok := r.s.owned[ownershipKey{userID, item.ID}]; !ok {
			return false
		}
		return itemType == nil || item.Type == *itemType
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].Type < items[j].Type })
	return items, nil
}

func (r inventoryRepo) ListOwnedItemIDs(ctx context.Context, userID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]string, 0)
	for key := range r.s.owned {
		if key.userID == userID {
			ids = append(ids, key.itemID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type progressionRepo struct{ s *Store }

func (r progressionRepo) GetProgression(ctx context.Context, userID string) (*domain.UserProgression, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.progression[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}
	return &p, nil
}

func (r progressionRepo) BeginTx(ctx context.Context) (repository.ProgressionTx, error) {
	return r.s.begin(), nil
}

type chestRepo struct{ s *Store }

func (r chestRepo) CreateChest(ctx context.Context, chest *domain.Chest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.createChest(nil, chest)
}

func (r chestRepo) GetChest(ctx context.Context, chestID string) (*domain.Chest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	chest, ok := r.s.chests[chestID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
	}
	return &chest, nil
}

func (r chestRepo) ListChests(ctx context.Context, userID string, unopenedOnly bool) ([]domain.Chest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	chests := make([]domain.Chest, 0)
	for _, chest := range r.s.chests {
		if chest.UserID != userID || (unopenedOnly && chest.IsOpened()) {
			continue
		}
		chests = append(chests, chest)
	}
	sort.Slice(chests, func(i, j int) bool {
		if !chests[i].CreatedAt.Equal(chests[j].CreatedAt) {
			return chests[i].CreatedAt.Before(chests[j].CreatedAt)
		}
		return chests[i].ID < chests[j].ID
	})
	return chests, nil
}

func (r chestRepo) BeginTx(ctx context.Context) (repository.ChestTx, error) {
	return r.s.begin(), nil
}

type unlockRepo struct{ s *Store }

func (r unlockRepo) InsertUnlock(ctx context.Context, userID, rewardID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rewards[rewardID]; !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrRewardNotFound, rewardID)
	}
	key := ownershipKey{userID, rewardID}
	if _, ok := r.s.unlocks[key]; ok {
		return false, nil
	}
	r.s.unlocks[key] = r.s.now()
	return true, nil
}

func (r unlockRepo) ListUnlocks(ctx context.Context, userID string) ([]domain.UserRewardUnlock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	unlocks := make([]domain.UserRewardUnlock, 0)
	for key, at := range r.s.unlocks {
		if key.userID == userID {
			unlocks = append(unlocks, domain.UserRewardUnlock{UserID: userID, RewardID: key.itemID, UnlockedAt: at})
		}
	}
	sort.Slice(unlocks, func(i, j int) bool {
		if !unlocks[i].UnlockedAt.Equal(unlocks[j].UnlockedAt) {
			return unlocks[i].UnlockedAt.Before(unlocks[j].UnlockedAt)
		}
		return unlocks[i].RewardID < unlocks[j].RewardID
	})
	return unlocks, nil
}

type economyRepo struct{ s *Store }

func (r economyRepo) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}
	return &p, nil
}

func (r economyRepo) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	return r.s.begin(), nil
}

// SetClock overrides the time source, for deterministic ordering in tests
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	s.events.mu.Lock()
	s.events.now = now
	s.events.mu.Unlock()
}
