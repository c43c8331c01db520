package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
)

// MockEconomyService implements economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) ClaimProfile(ctx context.Context, userID, username string) (*domain.Profile, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockEconomyService) ClaimWelcomeChest(ctx context.Context, userID string) (*domain.Chest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chest), args.Error(1)
}

func (m *MockEconomyService) GetProfileSummary(ctx context.Context, userID string) (*domain.ProfileSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileSummary), args.Error(1)
}

func (m *MockEconomyService) Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) Shop(ctx context.Context, userID, filter string) ([]domain.ShopEntry, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopEntry), args.Error(1)
}

func (m *MockEconomyService) AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.AwardXPResult, error) {
	args := m.Called(ctx, userID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AwardXPResult), args.Error(1)
}

func (m *MockEconomyService) AdminGrantCoins(ctx context.Context, userID string, amount int) (int, error) {
	args := m.Called(ctx, userID, amount)
	return args.Int(0), args.Error(1)
}

// MockChestService implements chest.Service
type MockChestService struct {
	mock.Mock
}

func (m *MockChestService) Issue(ctx context.Context, userID string, tier domain.ChestTier, source domain.ChestSource) (*domain.Chest, error) {
	args := m.Called(ctx, userID, tier, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chest), args.Error(1)
}

func (m *MockChestService) Open(ctx context.Context, chestID, userID string) (*domain.ChestOpenResult, error) {
	args := m.Called(ctx, chestID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChestOpenResult), args.Error(1)
}

func (m *MockChestService) ListChests(ctx context.Context, userID string, unopenedOnly bool) ([]domain.Chest, error) {
	args := m.Called(ctx, userID, unopenedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chest), args.Error(1)
}

// MockUnlockService implements unlock.Service
type MockUnlockService struct {
	mock.Mock
}

func (m *MockUnlockService) Unlock(ctx context.Context, userID, rewardID string) (domain.UnlockOutcome, error) {
	args := m.Called(ctx, userID, rewardID)
	return args.Get(0).(domain.UnlockOutcome), args.Error(1)
}

func (m *MockUnlockService) ListUnlocked(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUnlockService) Board(ctx context.Context, userID string, rewardType domain.RewardType) ([]domain.RewardSlot, error) {
	args := m.Called(ctx, userID, rewardType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardSlot), args.Error(1)
}

// MockLedgerService implements ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, userID string, amount int, reason domain.CreditReason) (int, error) {
	args := m.Called(ctx, userID, amount, reason)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, userID string, amount int, reason domain.DebitReason) (int, error) {
	args := m.Called(ctx, userID, amount, reason)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, userID string, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// MockCatalogService implements catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetItem(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) ListItemsByType(ctx context.Context, itemType domain.ItemType) ([]domain.Item, error) {
	args := m.Called(ctx, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) GetRewardDefinition(ctx context.Context, rewardID string) (*domain.RewardDefinition, error) {
	args := m.Called(ctx, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardDefinition), args.Error(1)
}

func (m *MockCatalogService) GetRewardDefinitions(ctx context.Context, rewardType *domain.RewardType) ([]domain.RewardDefinition, error) {
	args := m.Called(ctx, rewardType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardDefinition), args.Error(1)
}

func (m *MockCatalogService) Snapshot(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockCatalogService) UpsertItem(ctx context.Context, item domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCatalogService) UpsertRewardDefinition(ctx context.Context, def domain.RewardDefinition) error {
	return m.Called(ctx, def).Error(0)
}

func (m *MockCatalogService) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

// MockReloader implements CatalogReloader
type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
