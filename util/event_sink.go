// util/event_sink.go

package util

import (
	"context"

	"github.com/edulock/sebgate/model"
)

// EventAccessPrevented is the bus topic for blocked validation attempts.
const EventAccessPrevented = "quiz.access_prevented"

// AccessEventSink receives access-prevented events from the validator.
// Emission is fire-and-forget; delivery and storage are the subscribers'
// problem, never the validator's.
type AccessEventSink interface {
	EmitAccessPrevented(ctx context.Context, event model.AccessPreventedEvent)
}

// BusAccessEventSink publishes access-prevented events on the EventBus.
type BusAccessEventSink struct {
	eventBus *EventBus
}

func NewBusAccessEventSink(eventBus *EventBus) *BusAccessEventSink {
	return &BusAccessEventSink{eventBus: eventBus}
}

func (s *BusAccessEventSink) EmitAccessPrevented(ctx context.Context, event model.AccessPreventedEvent) {
	s.eventBus.Publish(ctx, EventAccessPrevented, event)
}
