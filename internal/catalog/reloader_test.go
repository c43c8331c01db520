package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliverftrep03/La-Penada-Real/internal/repository/memory"
)

func TestReloader_RestoresFilesAndInvalidates(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Catalog()
	svc := NewService(repo, 16, time.Hour)
	reloader := NewReloader(NewLoader(), repo, svc, shippedItems, shippedRewards)

	require.NoError(t, reloader.Reload(ctx))

	item, err := svc.GetItem(ctx, "frame_gold")
	require.NoError(t, err)
	assert.Equal(t, 200, item.Price)

	// Out-of-band edit that bypasses the service cache
	drifted := *item
	drifted.Price = 1
	require.NoError(t, repo.UpsertItem(ctx, drifted))

	cached, err := svc.GetItem(ctx, "frame_gold")
	require.NoError(t, err)
	assert.Equal(t, 200, cached.Price, "still served from cache")

	require.NoError(t, reloader.Reload(ctx))

	fresh, err := svc.GetItem(ctx, "frame_gold")
	require.NoError(t, err)
	assert.Equal(t, 200, fresh.Price, "file value wins after reload")

	stored, err := repo.GetItem(ctx, "frame_gold")
	require.NoError(t, err)
	assert.Equal(t, 200, stored.Price)
}

func TestReloader_MissingFile(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Catalog()
	svc := NewService(repo, 16, time.Hour)

	err := NewReloader(NewLoader(), repo, svc, "configs/catalog/missing.json", shippedRewards).Reload(ctx)
	assert.Error(t, err)
}
