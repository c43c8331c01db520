package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
	"github.com/oliverftrep03/La-Penada-Real/internal/repository"
)

// Reloader re-seeds the catalog from its config files, then drops cached reads.
// Concurrent reloads are serialized.
type Reloader struct {
	mu          sync.Mutex
	loader      Loader
	repo        repository.Catalog
	svc         Service
	itemsPath   string
	rewardsPath string
}

// NewReloader creates a Reloader over the given files
func NewReloader(l Loader, repo repository.Catalog, svc Service, itemsPath, rewardsPath string) *Reloader {
	return &Reloader{
		loader:      l,
		repo:        repo,
		svc:         svc,
		itemsPath:   itemsPath,
		rewardsPath: rewardsPath,
	}
}

// Reload syncs both files into storage and invalidates the cache.
// The cache is invalidated even when the sync fails part way, since some rows may have changed.
func (r *Reloader) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := Seed(ctx, r.loader, r.repo, r.itemsPath, r.rewardsPath)
	r.svc.Invalidate(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgReloadFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogReloaded, "items", r.itemsPath, "rewards", r.rewardsPath)
	return nil
}
