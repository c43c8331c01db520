package worker

import "time"

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = time.Minute

// Log messages
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job finished"
	LogMsgWorkerQueueFull = "Worker queue full, job skipped"
)

// Job names
const (
	JobNameCatalogRefresh = "catalog_refresh"
)
