package metrics

import (
	"context"

	"github.com/oliverftrep03/La-Penada-Real/internal/domain"
	"github.com/oliverftrep03/La-Penada-Real/internal/event"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// EventMetricsCollector subscribes to engine events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all engine events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BalanceChanged:
		p, err := event.DecodePayload[domain.BalanceChangedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		if p.Delta > 0 {
			CoinsCredited.WithLabelValues(p.Reason).Add(float64(p.Delta))
		} else {
			CoinsDebited.WithLabelValues(p.Reason).Add(float64(-p.Delta))
		}

	case event.ItemPurchased:
		p, err := event.DecodePayload[domain.ItemPurchasedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		Purchases.WithLabelValues(p.Rarity).Inc()

	case event.ChestIssued, event.ChestOpened:
		p, err := event.DecodePayload[domain.ChestPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		if evt.Type == event.ChestIssued {
			ChestsIssued.WithLabelValues(p.Tier).Inc()
		} else {
			ChestsOpened.WithLabelValues(p.Tier).Inc()
			LootDrops.WithLabelValues(p.Rarity).Inc()
		}

	case event.LeveledUp:
		LevelUps.Inc()

	case event.RewardUnlocked:
		p, err := event.DecodePayload[domain.RewardUnlockedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		RewardUnlocks.WithLabelValues(p.RewardType).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
