package worker

import "context"

// CatalogReloader re-reads catalog config and invalidates cached entries
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// CatalogRefreshJob reapplies the catalog config files so drift from admin
// edits or config deploys is picked up without a restart.
type CatalogRefreshJob struct {
	reloader CatalogReloader
}

// NewCatalogRefreshJob wraps a reloader as a pool job
func NewCatalogRefreshJob(reloader CatalogReloader) *CatalogRefreshJob {
	return &CatalogRefreshJob{reloader: reloader}
}

// Name implements Job
func (j *CatalogRefreshJob) Name() string { return JobNameCatalogRefresh }

// Process implements Job
func (j *CatalogRefreshJob) Process(ctx context.Context) error {
	return j.reloader.Reload(ctx)
}
