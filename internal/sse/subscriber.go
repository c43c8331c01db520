package sse

import (
	"context"
	"log/slog"

	"github.com/oliverftrep03/La-Penada-Real/internal/event"
)

// Subscriber forwards engine events from the bus to SSE clients
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a bus-to-hub subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarding handler for every engine event type
func (s *Subscriber) Subscribe() {
	for _, t := range event.AllTypes {
		s.bus.Subscribe(t, s.forward)
	}
	slog.Info(LogMsgSubscriberReady, "types", len(event.AllTypes))
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(ctx, string(evt.Type), event.UserIDOf(evt), evt.Payload)
	return nil
}
