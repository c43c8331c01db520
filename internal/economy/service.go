package economy

import (
	"context"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/inventory"
	"github.com/oliverftrep03/La-Penada-Real/internal/ledger"
	"github.com/oliverftrep03/La-Penada-Real/internal/progression"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
	"github.com/oliverftrep03/La-Penada-Real/internal/unlock"
)

// Service orchestrates the flows that span wallet, inventory, progression and chests.
// Each flow commits as one transaction and publishes its events afterwards.
type Service interface {
	// ClaimProfile idempotently creates the profile, an empty wallet and level 1 progression
	ClaimProfile(ctx context.Context, userID, username string) (*domain.Profile, error)
	// ClaimWelcomeChest issues the one welcome chest a profile is entitled to
	ClaimWelcomeChest(ctx context.Context, userID string) (*domain.Chest, error)
	GetProfileSummary(ctx context.Context, userID string) (*domain.ProfileSummary, error)

	// Purchase debits the item price and grants the item, or does neither
	Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error)
	// Shop lists active items with the caller's ownership flag. filter is "all" or an item type.
	Shop(ctx context.Context, userID, filter string) ([]domain.ShopEntry, error)

	// AwardXP grants XP, then credits level-up bonuses and issues milestone chests
	AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.AwardXPResult, error)
	AdminGrantCoins(ctx context.Context, userID string, amount int) (int, error)
}

type service struct {
	repo        repository.Economy
	catalog     catalog.Service
	ledger      ledger.Service
	inventory   inventory.Service
	progression progression.Service
	unlocks     unlock.Service
	publisher   event.Publisher

	levelUpBonus int
	now          func() time.Time
}

// NewService creates the economy orchestrator.
// levelUpBonus is the coin bonus per level reached; publisher may be nil.
func NewService(
	repo repository.Economy,
	catalogSvc catalog.Service,
	ledgerSvc ledger.Service,
	inventorySvc inventory.Service,
	progressionSvc progression.Service,
	unlockSvc unlock.Service,
	publisher event.Publisher,
	levelUpBonus int,
) Service {
	return &service{
		repo:         repo,
		catalog:      catalogSvc,
		ledger:       ledgerSvc,
		inventory:    inventorySvc,
		progression:  progressionSvc,
		unlocks:      unlockSvc,
		publisher:    publisher,
		levelUpBonus: levelUpBonus,
		now:          time.Now,
	}
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	for _, evt := range events {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}

// MilestoneTier returns the chest a level grants, if any
func MilestoneTier(level int) (domain.ChestTier, bool) {
	switch {
	case level <= 0 || level%MilestoneInterval != 0:
		return "", false
	case level%LegendaryMilestoneInterval == 0:
		return domain.ChestTierLegendary, true
	case level%EpicMilestoneInterval == 0:
		return domain.ChestTierEpic, true
	default:
		return domain.ChestTierRare, true
	}
}
