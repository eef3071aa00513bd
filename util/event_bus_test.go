package util_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medicore-hms/hmsctl/util"
)

func TestEventBusDeliversToSubscribers(t *testing.T) {
	bus := util.NewEventBus()
	got := make(chan util.Event, 1)

	bus.Subscribe(util.EventSessionExpired, func(ctx context.Context, e util.Event) error {
		got <- e
		return nil
	})

	bus.Publish(context.Background(), util.EventSessionExpired, "ops@hospital.test")

	select {
	case e := <-got:
		assert.Equal(t, util.EventSessionExpired, e.Type)
		assert.Equal(t, "ops@hospital.test", e.Payload)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestEventBusIgnoresUnsubscribedTypes(t *testing.T) {
	bus := util.NewEventBus()
	called := make(chan struct{}, 1)

	bus.Subscribe(util.EventSessionLogin, func(ctx context.Context, e util.Event) error {
		called <- struct{}{}
		return nil
	})

	bus.Publish(context.Background(), util.EventSessionLogout, nil)

	select {
	case <-called:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(50 * time.Millisecond):
	}
}
