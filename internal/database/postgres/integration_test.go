package postgres

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "frame_gold", Name: "Marco dorado", Type: domain.ItemTypeFrame, Rarity: domain.RarityRare, Price: 100, Content: "border-gold", Active: true},
		{ID: "frame_wood", Name: "Marco de madera", Type: domain.ItemTypeFrame, Rarity: domain.RarityCommon, Price: 20, Content: "border-wood", Active: true},
		{ID: "title_boss", Name: "El Jefe", Type: domain.ItemTypeTitle, Rarity: domain.RarityEpic, Price: 100, Content: "El Jefe", Active: true},
		{ID: "sticker_old", Name: "Pegatina retirada", Type: domain.ItemTypeSticker, Rarity: domain.RarityCommon, Price: 5, Active: false},
	}
}

func TestPostgresRepositories_Integration(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()

	catalogRepo := NewCatalogRepository(pool)
	walletRepo := NewWalletRepository(pool)
	inventoryRepo := NewInventoryRepository(pool)
	progressionRepo := NewProgressionRepository(pool)
	chestRepo := NewChestRepository(pool)
	unlockRepo := NewUnlockRepository(pool)
	economyRepo := NewEconomyRepository(pool)
	eventLogRepo := NewEventLogRepository(pool)

	seedItems(t, catalogRepo, testItems()...)

	t.Run("catalog ordering and filters", func(t *testing.T) {
		all, err := catalogRepo.ListItems(ctx, nil, false)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, []string{"sticker_old", "frame_wood", "frame_gold", "title_boss"},
			[]string{all[0].ID, all[1].ID, all[2].ID, all[3].ID}, "price ascending, id breaks ties")

		frames := domain.ItemTypeFrame
		active, err := catalogRepo.ListItems(ctx, &frames, true)
		require.NoError(t, err)
		assert.Len(t, active, 2)

		_, err = catalogRepo.GetItem(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("reward slots are unique per type", func(t *testing.T) {
		require.NoError(t, catalogRepo.UpsertRewardDefinition(ctx, domain.RewardDefinition{
			ID: "trophy_first", Type: domain.RewardTypeTrophy, SlotIndex: 0, Name: "Primera foto"}))
		err := catalogRepo.UpsertRewardDefinition(ctx, domain.RewardDefinition{
			ID: "trophy_clash", Type: domain.RewardTypeTrophy, SlotIndex: 0, Name: "Choque"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		defs, err := catalogRepo.ListRewardDefinitions(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, defs, 1)
	})

	t.Run("debit is conditional and journaled", func(t *testing.T) {
		user := "wallet-user"
		balance, err := walletRepo.Credit(ctx, user, 50, domain.CreditAdminGrant)
		require.NoError(t, err)
		assert.Equal(t, 50, balance)

		_, err = walletRepo.Debit(ctx, user, 51, domain.DebitPurchase)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		balance, err = walletRepo.Debit(ctx, user, 50, domain.DebitPurchase)
		require.NoError(t, err)
		assert.Equal(t, 0, balance)

		entries, err := walletRepo.GetLedgerEntries(ctx, user, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2, "the failed debit leaves no journal row")
		deltas := []int{entries[0].Delta, entries[1].Delta}
		assert.ElementsMatch(t, []int{50, -50}, deltas)
	})

	t.Run("concurrent debits never overspend", func(t *testing.T) {
		user := "race-user"
		_, err := walletRepo.Credit(ctx, user, 100, domain.CreditAdminGrant)
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := walletRepo.Debit(ctx, user, 30, domain.DebitPurchase); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 3, successes)
		balance, err := walletRepo.GetBalance(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 10, balance)
	})

	t.Run("grant is idempotent", func(t *testing.T) {
		granted, err := inventoryRepo.GrantItem(ctx, "inv-user", "frame_gold", domain.SourceAdmin)
		require.NoError(t, err)
		assert.True(t, granted)

		granted, err = inventoryRepo.GrantItem(ctx, "inv-user", "frame_gold", domain.SourceAdmin)
		require.NoError(t, err)
		assert.False(t, granted)

		_, err = inventoryRepo.GrantItem(ctx, "inv-user", "ghost", domain.SourceAdmin)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)

		items, err := inventoryRepo.ListInventory(ctx, "inv-user", nil)
		require.NoError(t, err)
		assert.Len(t, items, 1)

		removed, err := inventoryRepo.RevokeItem(ctx, "inv-user", "frame_gold")
		require.NoError(t, err)
		assert.True(t, removed)
		removed, err = inventoryRepo.RevokeItem(ctx, "inv-user", "frame_gold")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("progression row is created on first lock", func(t *testing.T) {
		_, err := progressionRepo.GetProgression(ctx, "xp-user")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)

		tx, err := progressionRepo.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)

		p, err := tx.GetProgressionForUpdate(ctx, "xp-user")
		require.NoError(t, err)
		assert.Equal(t, domain.StartingLevel, p.Level)

		p.Level, p.XP = 3, 7
		require.NoError(t, tx.UpdateProgression(ctx, *p))
		require.NoError(t, tx.Commit(ctx))

		stored, err := progressionRepo.GetProgression(ctx, "xp-user")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.Level)
		assert.Equal(t, 7, stored.XP)
	})

	t.Run("chest opens exactly once", func(t *testing.T) {
		chest := &domain.Chest{ID: uuid.NewString(), UserID: "chest-user", Tier: domain.ChestTierCommon,
			Source: domain.ChestSourceAdmin, CreatedAt: time.Now().UTC()}
		require.NoError(t, chestRepo.CreateChest(ctx, chest))

		openOnce := func(userID string) error {
			tx, err := chestRepo.BeginTx(ctx)
			require.NoError(t, err)
			defer repository.SafeRollback(ctx, tx)
			if _, err := tx.MarkChestOpened(ctx, chest.ID, userID, time.Now().UTC()); err != nil {
				return err
			}
			if err := tx.SetChestItem(ctx, chest.ID, "frame_wood"); err != nil {
				return err
			}
			return tx.Commit(ctx)
		}

		assert.ErrorIs(t, openOnce("someone-else"), domain.ErrChestNotFound)
		require.NoError(t, openOnce("chest-user"))
		assert.ErrorIs(t, openOnce("chest-user"), domain.ErrChestAlreadyOpened)

		stored, err := chestRepo.GetChest(ctx, chest.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsOpened())
		require.NotNil(t, stored.ItemID)
		assert.Equal(t, "frame_wood", *stored.ItemID)

		unopened, err := chestRepo.ListChests(ctx, "chest-user", true)
		require.NoError(t, err)
		assert.Empty(t, unopened)

		_, err = chestRepo.GetChest(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrChestNotFound)
	})

	t.Run("unlocks are append-only and idempotent", func(t *testing.T) {
		inserted, err := unlockRepo.InsertUnlock(ctx, "reward-user", "trophy_first")
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = unlockRepo.InsertUnlock(ctx, "reward-user", "trophy_first")
		require.NoError(t, err)
		assert.False(t, inserted)

		_, err = unlockRepo.InsertUnlock(ctx, "reward-user", "trophy_missing")
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)

		unlocks, err := unlockRepo.ListUnlocks(ctx, "reward-user")
		require.NoError(t, err)
		assert.Len(t, unlocks, 1)
	})

	t.Run("welcome claim flips once", func(t *testing.T) {
		tx, err := economyRepo.BeginTx(ctx)
		require.NoError(t, err)
		created, err := tx.CreateProfile(ctx, "profile-user", "pepe")
		require.NoError(t, err)
		assert.True(t, created)
		require.NoError(t, tx.EnsureWallet(ctx, "profile-user"))
		require.NoError(t, tx.Commit(ctx))

		tx, err = economyRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.MarkWelcomeClaimed(ctx, "profile-user"))
		assert.ErrorIs(t, tx.MarkWelcomeClaimed(ctx, "profile-user"), domain.ErrWelcomeAlreadyClaimed)
		assert.ErrorIs(t, tx.MarkWelcomeClaimed(ctx, "nobody"), domain.ErrProfileNotFound)
		require.NoError(t, tx.Commit(ctx))

		profile, err := economyRepo.GetProfile(ctx, "profile-user")
		require.NoError(t, err)
		assert.True(t, profile.WelcomeClaimed)
	})

	t.Run("event log filters and prunes", func(t *testing.T) {
		require.NoError(t, eventLogRepo.AppendEvent(ctx, domain.EventTypeBalanceChanged, "log-user", json.RawMessage(`{"delta":3}`)))
		require.NoError(t, eventLogRepo.AppendEvent(ctx, domain.EventTypeChestIssued, "log-user", json.RawMessage(`{}`)))
		require.NoError(t, eventLogRepo.AppendEvent(ctx, domain.EventTypeBalanceChanged, "", json.RawMessage(`{}`)))

		mine, err := eventLogRepo.ListEvents(ctx, repository.EventLogFilter{UserID: "log-user"})
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, domain.EventTypeChestIssued, mine[0].EventType, "newest first")
		assert.JSONEq(t, `{"delta":3}`, string(mine[1].Payload))

		limited, err := eventLogRepo.ListEvents(ctx, repository.EventLogFilter{EventType: domain.EventTypeBalanceChanged, Limit: 1})
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Empty(t, limited[0].UserID)

		deleted, err := eventLogRepo.DeleteEventsBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})
}
