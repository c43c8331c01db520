package inventory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverftrep03/La-Penada-Real/internal/catalog"
	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository/memory"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) count(t event.Type) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, evt := range p.events {
		if evt.Type == t {
			n++
		}
	}
	return n
}

func setup(t *testing.T) (Service, *recordingPublisher) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	for _, item := range []domain.Item{
		{ID: "frame_gold", Name: "Marco dorado", Type: domain.ItemTypeFrame, Rarity: domain.RarityEpic, Price: 200, Active: true},
		{ID: "frame_wood", Name: "Marco de madera", Type: domain.ItemTypeFrame, Rarity: domain.RarityCommon, Price: 20, Active: true},
		{ID: "sticker_beer", Name: "Birra", Type: domain.ItemTypeSticker, Rarity: domain.RarityCommon, Price: 5, Active: true},
	} {
		require.NoError(t, store.Catalog().UpsertItem(ctx, item))
	}
	pub := &recordingPublisher{}
	catalogSvc := catalog.NewService(store.Catalog(), 16, time.Minute)
	return NewService(store.Inventory(), catalogSvc, pub), pub
}

func TestGrant_IsIdempotent(t *testing.T) {
	svc, pub := setup(t)
	ctx := context.Background()

	first, err := svc.Grant(ctx, "u1", "frame_gold", domain.SourcePurchase)
	require.NoError(t, err)
	assert.Equal(t, domain.GrantGranted, first)

	second, err := svc.Grant(ctx, "u1", "frame_gold", domain.SourceChest)
	require.NoError(t, err)
	assert.Equal(t, domain.GrantAlreadyOwned, second)

	items, err := svc.List(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, pub.count(event.ItemGranted), "only the real grant is announced")
}

func TestGrant_ConcurrentSingleEntry(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := svc.Grant(ctx, "u1", "sticker_beer", domain.SourceChest)
			if assert.NoError(t, err) && outcome == domain.GrantGranted {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), granted.Load())
}

func TestGrant_Validation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Grant(ctx, "u1", "missing_item", domain.SourceAdmin)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.Grant(ctx, "u1", "frame_gold", domain.InventorySource("stolen"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Grant(ctx, "", "frame_gold", domain.SourceAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRevoke(t *testing.T) {
	svc, pub := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Revoke(ctx, "u1", "frame_gold"), domain.ErrNotOwned)

	_, err := svc.Grant(ctx, "u1", "frame_gold", domain.SourceAdmin)
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(ctx, "u1", "frame_gold"))

	owned, err := svc.Has(ctx, "u1", "frame_gold")
	require.NoError(t, err)
	assert.False(t, owned)
	assert.Equal(t, 1, pub.count(event.ItemRevoked))

	assert.ErrorIs(t, svc.Revoke(ctx, "u1", "frame_gold"), domain.ErrNotOwned)
}

func TestList_OrderedAndFiltered(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	for _, id := range []string{"sticker_beer", "frame_gold", "frame_wood"} {
		_, err := svc.Grant(ctx, "u1", id, domain.SourceAdmin)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, "u1", nil)
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, item := range all {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"frame_wood", "frame_gold", "sticker_beer"}, ids)

	frame := domain.ItemTypeFrame
	frames, err := svc.List(ctx, "u1", &frame)
	require.NoError(t, err)
	assert.Len(t, frames, 2)

	owned, err := svc.OwnedSet(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, owned["frame_gold"])
	assert.False(t, owned["title_king"])

	bogus := domain.ItemType("hat")
	_, err = svc.List(ctx, "u1", &bogus)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
