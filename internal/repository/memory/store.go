// Package memory provides an in-process implementation of every repository interface.
// It honours the same atomicity contracts as the PostgreSQL repositories: conditional
// debits, idempotent grants, single-use chest opening and all-or-nothing transactions.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

type ownershipKey struct {
	userID string
	itemID string
}

// Store holds all engine state behind one mutex.
// A transaction holds the mutex from BeginTx until Commit or Rollback.
type Store struct {
	mu sync.Mutex

	items   map[string]domain.Item
	rewards map[string]domain.RewardDefinition

	profiles    map[string]domain.Profile
	wallets     map[string]int
	ledger      []domain.LedgerEntry
	owned       map[ownershipKey]domain.InventorySource
	progression map[string]domain.UserProgression
	chests      map[string]domain.Chest
	unlocks     map[ownershipKey]time.Time

	events eventLog

	now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		items:       make(map[string]domain.Item),
		rewards:     make(map[string]domain.RewardDefinition),
		profiles:    make(map[string]domain.Profile),
		wallets:     make(map[string]int),
		owned:       make(map[ownershipKey]domain.InventorySource),
		progression: make(map[string]domain.UserProgression),
		chests:      make(map[string]domain.Chest),
		unlocks:     make(map[ownershipKey]time.Time),
		now:         time.Now,
	}
}

// Catalog returns the store as a repository.Catalog
func (s *Store) Catalog() repository.Catalog { return catalogRepo{s} }

// Wallet returns the store as a repository.Wallet
func (s *Store) Wallet() repository.Wallet { return walletRepo{s} }

// Inventory returns the store as a repository.Inventory
func (s *Store) Inventory() repository.Inventory { return inventoryRepo{s} }

// Progression returns the store as a repository.Progression
func (s *Store) Progression() repository.Progression { return progressionRepo{s} }

// Chest returns the store as a repository.Chest
func (s *Store) Chest() repository.Chest { return chestRepo{s} }

// Unlock returns the store as a repository.Unlock
func (s *Store) Unlock() repository.Unlock { return unlockRepo{s} }

// Economy returns the store as a repository.Economy
func (s *Store) Economy() repository.Economy { return economyRepo{s} }

// ---- unlocked state helpers; callers hold s.mu ----

// undoLog collects inverse operations so a transaction can be rolled back
type undoLog []func()

func (u *undoLog) add(fn func()) {
	if u != nil {
		*u = append(*u, fn)
	}
}

func (s *Store) credit(undo *undoLog, userID string, amount int, reason domain.CreditReason) (int, error) {
	if amount <= 0 || !reason.Valid() {
		return 0, fmt.Errorf("%w: credit of %d (%s)", domain.ErrInvalidInput, amount, reason)
	}
	prev, existed := s.wallets[userID]
	s.wallets[userID] = prev + amount
	s.journal(undo, userID, amount, string(reason))
	undo.add(func() {
		if existed {
			s.wallets[userID] = prev
		} else {
			delete(s.wallets, userID)
		}
	})
	return prev + amount, nil
}

func (s *Store) debit(undo *undoLog, userID string, amount int, reason domain.DebitReason) (int, error) {
	if amount <= 0 || !reason.Valid() {
		return 0, fmt.Errorf("%w: debit of %d (%s)", domain.ErrInvalidInput, amount, reason)
	}
	prev, ok := s.wallets[userID]
	if !ok || prev < amount {
		return 0, fmt.Errorf("%w: user %s cannot cover %d coins", domain.ErrInsufficientFunds, userID, amount)
	}
	s.wallets[userID] = prev - amount
	s.journal(undo, userID, -amount, string(reason))
	undo.add(func() { s.wallets[userID] = prev })
	return prev - amount, nil
}

func (s *Store) journal(undo *undoLog, userID string, delta int, reason string) {
	s.ledger = append(s.ledger, domain.LedgerEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Delta:        delta,
		Reason:       reason,
		BalanceAfter: s.wallets[userID],
		CreatedAt:    s.now(),
	})
	n := len(s.ledger) - 1
	undo.add(func() { s.ledger = s.ledger[:n] })
}

func (s *Store) grant(undo *undoLog, userID, itemID string, source domain.InventorySource) (bool, error) {
	if _, ok := s.items[itemID]; !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	key := ownershipKey{userID, itemID}
	if _, ok := s.owned[key]; ok {
		return false, nil
	}
	s.owned[key] = source
	undo.add(func() { delete(s.owned, key) })
	return true, nil
}

func (s *Store) lockProgression(undo *undoLog, userID string) domain.UserProgression {
	p, ok := s.progression[userID]
	if !ok {
		p = domain.UserProgression{UserID: userID, Level: domain.StartingLevel}
		s.progression[userID] = p
		undo.add(func() { delete(s.progression, userID) })
	}
	return p
}

func (s *Store) updateProgression(undo *undoLog, p domain.UserProgression) {
	prev, existed := s.progression[p.UserID]
	s.progression[p.UserID] = p
	undo.add(func() {
		if existed {
			s.progression[p.UserID] = prev
		} else {
			delete(s.progression, p.UserID)
		}
	})
}

func (s *Store) createChest(undo *undoLog, chest *domain.Chest) error {
	if _, ok := s.chests[chest.ID]; ok {
		return fmt.Errorf("chest %s already exists", chest.ID)
	}
	s.chests[chest.ID] = *chest
	undo.add(func() { delete(s.chests, chest.ID) })
	return nil
}

func (s *Store) sortedItems(filter func(domain.Item) bool) []domain.Item {
	items := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		if filter(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Price != items[j].Price {
			return items[i].Price < items[j].Price
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// ---- transaction ----

type memTx struct {
	s      *Store
	undo   undoLog
	closed bool
}

func (s *Store) begin() *memTx {
	s.mu.Lock()
	return &memTx{s: s}
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.undo = nil
	t.s.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.s.mu.Unlock()
	return nil
}

func (t *memTx) Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error) {
	return t.s.credit(&t.undo, userID, amount, reason)
}

func (t *memTx) Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error) {
	return t.s.debit(&t.undo, userID, amount, reason)
}

func (t *memTx) HasItem(ctx context.Context, userID, itemID string) (bool, error) {
	_, ok := t.s.owned[ownershipKey{userID, itemID}]
	return ok, nil
}

func (t *memTx) GrantItem(ctx context.Context, userID, itemID string, source domain.InventorySource) (bool, error) {
	return t.s.grant(&t.undo, userID, itemID, source)
}

func (t *memTx) GetProgressionForUpdate(ctx context.Context, userID string) (*domain.UserProgression, error) {
	p := t.s.lockProgression(&t.undo, userID)
	return &p, nil
}

func (t *memTx) UpdateProgression(ctx context.Context, p domain.UserProgression) error {
	t.s.updateProgression(&t.undo, p)
	return nil
}

func (t *memTx) CreateChest(ctx context.Context, chest *domain.Chest) error {
	return t.s.createChest(&t.undo, chest)
}

func (t *memTx) MarkChestOpened(ctx context.Context, chestID, userID string, openedAt time.Time) (*domain.Chest, error) {
	chest, ok := t.s.chests[chestID]
	if !ok || chest.UserID != userID {
		return nil, fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
	}
	if chest.IsOpened() {
		return nil, fmt.Errorf("%w: %s", domain.ErrChestAlreadyOpened, chestID)
	}
	prev := chest
	opened := openedAt
	chest.OpenedAt = &opened
	t.s.chests[chestID] = chest
	t.undo.add(func() { t.s.chests[chestID] = prev })
	return &chest, nil
}

func (t *memTx) SetChestItem(ctx context.Context, chestID, itemID string) error {
	chest, ok := t.s.chests[chestID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrChestNotFound, chestID)
	}
	prev := chest
	id := itemID
	chest.ItemID = &id
	t.s.chests[chestID] = chest
	t.undo.add(func() { t.s.chests[chestID] = prev })
	return nil
}

func (t *memTx) CreateProfile(ctx context.Context, userID, username string) (bool, error) {
	if _, ok := t.s.profiles[userID]; ok {
		return false, nil
	}
	t.s.profiles[userID] = domain.Profile{UserID: userID, Username: username, CreatedAt: t.s.now()}
	t.undo.add(func() { delete(t.s.profiles, userID) })
	return true, nil
}

func (t *memTx) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, ok := t.s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}
	return &p, nil
}

func (t *memTx) EnsureWallet(ctx context.Context, userID string) error {
	if _, ok := t.s.wallets[userID]; ok {
		return nil
	}
	t.s.wallets[userID] = 0
	t.undo.add(func() { delete(t.s.wallets, userID) })
	return nil
}

func (t *memTx) MarkWelcomeClaimed(ctx context.Context, userID string) error {
	p, ok := t.s.profiles[userID]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, userID)
	}
	if p.WelcomeClaimed {
		return fmt.Errorf("%w: %s", domain.ErrWelcomeAlreadyClaimed, userID)
	}
	prev := p
	p.WelcomeClaimed = true
	t.s.profiles[userID] = p
	t.undo.add(func() { t.s.profiles[userID] = prev })
	return nil
}

var (
	_ repository.ProgressionTx = (*memTx)(nil)
	_ repository.ChestTx       = (*memTx)(nil)
	_ repository.EconomyTx     = (*memTx)(nil)
)
