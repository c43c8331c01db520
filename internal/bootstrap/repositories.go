package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliverftrep03/La-Penada-Real/internal/database/postgres"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository/memory"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	Catalog     repository.Catalog
	Wallet      repository.Wallet
	Inventory   repository.Inventory
	Progression repository.Progression
	Chest       repository.Chest
	Unlock      repository.Unlock
	Economy     repository.Economy
	EventLog    repository.EventLog
}

// InitializePostgresRepositories creates the pgx-backed repositories
func InitializePostgresRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog:     postgres.NewCatalogRepository(dbPool),
		Wallet:      postgres.NewWalletRepository(dbPool),
		Inventory:   postgres.NewInventoryRepository(dbPool),
		Progression: postgres.NewProgressionRepository(dbPool),
		Chest:       postgres.NewChestRepository(dbPool),
		Unlock:      postgres.NewUnlockRepository(dbPool),
		Economy:     postgres.NewEconomyRepository(dbPool),
		EventLog:    postgres.NewEventLogRepository(dbPool),
	}
}

// InitializeMemoryRepositories wires every repository to one in-process store
func InitializeMemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Catalog:     store.Catalog(),
		Wallet:      store.Wallet(),
		Inventory:   store.Inventory(),
		Progression: store.Progression(),
		Chest:       store.Chest(),
		Unlock:      store.Unlock(),
		Economy:     store.Economy(),
		EventLog:    store.EventLog(),
	}
}
