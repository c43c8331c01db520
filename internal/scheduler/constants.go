package scheduler

const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobDisabled  = "Job schedule empty, not scheduling"

	ErrFmtInvalidSpec = "invalid schedule %q for job %s: %w"
)
