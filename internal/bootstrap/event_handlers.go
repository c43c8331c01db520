package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/eventlog"
	"github.com/oliverftrep03/La-Penada-Real/internal/metrics"
	"github.com/oliverftrep03/La-Penada-Real/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	EventLog eventlog.Service
}

// RegisterEventHandlers subscribes the metrics collector, the audit log and the SSE bridge to the bus
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.EventLog != nil {
		deps.EventLog.Subscribe(deps.EventBus)
	}

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	}

	return nil
}
