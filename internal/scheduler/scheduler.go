package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/oliverftrep03/La-Penada-Real/internal/worker"
)

// Scheduler fires jobs into the worker pool on cron schedules.
// Standard five-field specs and descriptors such as "@every 15m" are accepted.
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron:       cron.New(),
	}
}

// Schedule registers job under spec. An empty spec is a no-op.
func (s *Scheduler) Schedule(spec string, job worker.Job) error {
	if spec == "" {
		slog.Info(LogMsgJobDisabled, "job", job.Name())
		return nil
	}
	// A full queue skips this tick rather than stall the cron goroutine
	id, err := s.cron.AddFunc(spec, func() { s.workerPool.TryEnqueue(job) })
	if err != nil {
		return fmt.Errorf(ErrFmtInvalidSpec, spec, job.Name(), err)
	}
	slog.Info(LogMsgJobScheduled, "job", job.Name(), "spec", spec, "entry", id)
	return nil
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing jobs and waits for an in-flight enqueue to return
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Entries reports how many jobs are scheduled
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
