// util/event_bus_test.go
package util_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	logger "github.com/edulock/sebgate/logging"
	"github.com/edulock/sebgate/model"
	"github.com/edulock/sebgate/util"
)

func TestEventBusDeliversToSubscribers(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	bus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus.Start(ctx)

	received := make(chan util.Event, 1)
	bus.Subscribe("quiz.access_prevented", func(ctx context.Context, event util.Event) error {
		received <- event
		return nil
	})

	bus.Publish(ctx, "quiz.access_prevented", model.AccessPreventedEvent{ID: "evt-1"})

	select {
	case event := <-received:
		assert.Equal(t, "quiz.access_prevented", event.Type)
		payload, ok := event.Payload.(model.AccessPreventedEvent)
		assert.True(t, ok)
		assert.Equal(t, "evt-1", payload.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestEventBusIgnoresUnknownTopics(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	bus := util.NewEventBus()
	ctx := context.Background()

	received := make(chan util.Event, 1)
	bus.Subscribe("quiz.access_prevented", func(ctx context.Context, event util.Event) error {
		received <- event
		return nil
	})

	bus.Publish(ctx, "some.other.topic", "payload")

	select {
	case <-received:
		t.Fatal("subscriber received an event for a topic it never subscribed to")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBusAccessEventSinkPublishesOnBus(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	bus := util.NewEventBus()
	ctx := context.Background()

	received := make(chan model.AccessPreventedEvent, 1)
	bus.Subscribe(util.EventAccessPrevented, func(ctx context.Context, event util.Event) error {
		received <- event.Payload.(model.AccessPreventedEvent)
		return nil
	})

	sink := util.NewBusAccessEventSink(bus)
	sink.EmitAccessPrevented(ctx, model.AccessPreventedEvent{ID: "evt-2", UserID: "user-1"})

	select {
	case event := <-received:
		assert.Equal(t, "evt-2", event.ID)
		assert.Equal(t, "user-1", event.UserID)
	case <-time.After(2 * time.Second):
		t.Fatal("sink never delivered the event")
	}
}
