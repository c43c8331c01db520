package eventlog

import (
	"context"
	"time"

	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// CleanupJob prunes the audit log on a schedule
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a cleanup job. A non-positive retention uses DefaultRetention.
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &CleanupJob{service: service, retention: retention}
}

// Name identifies the job in worker logs
func (j *CleanupJob) Name() string { return JobNameCleanup }

// Process runs one cleanup pass
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCleanupStarting, "retention", j.retention)

	start := time.Now()
	count, err := j.service.Cleanup(ctx, j.retention)
	duration := time.Since(start)

	if err != nil {
		log.Error(LogMsgCleanupFailed, "error", err, "duration", duration)
		return err
	}

	log.Info(LogMsgCleanupCompleted, "deleted", count, "duration", duration)
	return nil
}
