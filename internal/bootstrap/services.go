package bootstrap

import (
	"fmt"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/chest"
	"github.com/oliverftrep03/La-Penada-Real/internal/config"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/economy"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/eventlog"
	"github.com/oliverftrep03/La-Penada-Real/internal/inventory"
	"github.com/oliverftrep03/La-Penada-Real/internal/ledger"
	"github.com/oliverftrep03/La-Penada-Real/internal/lootbox"
	"github.com/oliverftrep03/La-Penada-Real/internal/progression"
	"github.com/oliverftrep03/La-Penada-Real/internal/server"
	"github.com/oliverftrep03/La-Penada-Real/internal/unlock"
)

// InitializeServices builds the engine services bottom-up: catalog first,
// then the primitives, then the economy orchestrator on top.
func InitializeServices(
	cfg *config.Config,
	repos *Repositories,
	loader catalog.Loader,
	tables map[domain.ChestTier]lootbox.LootTable,
	publisher event.Publisher,
) (server.Services, *catalog.Reloader, error) {
	catalogSvc := catalog.NewService(repos.Catalog, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	reloader := catalog.NewReloader(loader, repos.Catalog, catalogSvc, cfg.CatalogItemsPath, cfg.CatalogRewardsPath)

	resolver, err := lootbox.NewResolver(catalogSvc, tables, nil)
	if err != nil {
		return server.Services{}, nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildResolver, err)
	}

	ledgerSvc := ledger.NewService(repos.Wallet, publisher)
	inventorySvc := inventory.NewService(repos.Inventory, catalogSvc, publisher)
	progressionSvc := progression.NewService(repos.Progression, publisher)
	chestSvc := chest.NewService(repos.Chest, resolver, catalogSvc, publisher)
	unlockSvc := unlock.NewService(repos.Unlock, catalogSvc, publisher)
	economySvc := economy.NewService(
		repos.Economy,
		catalogSvc,
		ledgerSvc,
		inventorySvc,
		progressionSvc,
		unlockSvc,
		publisher,
		cfg.LevelUpBonusPerLevel,
	)

	return server.Services{
		Catalog:     catalogSvc,
		Ledger:      ledgerSvc,
		Inventory:   inventorySvc,
		Progression: progressionSvc,
		Chest:       chestSvc,
		Unlock:      unlockSvc,
		Economy:     economySvc,
		EventLog:    eventlog.NewService(repos.EventLog),
		Reloader:    reloader,
	}, reloader, nil
}
