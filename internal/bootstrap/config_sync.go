package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/config"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/lootbox"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
	"github.com/oliverftrep03/La-Penada-Real/internal/validation"
)

// SyncCatalog loads, validates and upserts the item and reward config files.
func SyncCatalog(ctx context.Context, cfg *config.Config, loader catalog.Loader, repo repository.Catalog) error {
	slog.Info(LogMsgSyncingCatalog, "items", cfg.CatalogItemsPath, "rewards", cfg.CatalogRewardsPath)
	if err := catalog.Seed(ctx, loader, repo, cfg.CatalogItemsPath, cfg.CatalogRewardsPath); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}
	slog.Info(LogMsgCatalogSynced)
	return nil
}

// LoadLootTables reads the loot table config, falling back to the built-in
// tables when the file does not exist.
func LoadLootTables(ctx context.Context, cfg *config.Config) (map[domain.ChestTier]lootbox.LootTable, error) {
	if _, err := validation.ResolvePath(cfg.LootTablesPath); err != nil {
		slog.Warn(LogMsgLootTablesDefault, "path", cfg.LootTablesPath, "reason", err)
		return lootbox.DefaultTables(), nil
	}

	tables, err := lootbox.LoadTables(ctx, cfg.LootTablesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLootTables, err)
	}
	slog.Info(LogMsgLootTablesLoaded, "path", cfg.LootTablesPath, "tiers", len(tables))
	return tables, nil
}
