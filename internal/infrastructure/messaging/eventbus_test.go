package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

func TestEventBus_DeliversInRegistrationOrder(t *testing.T) {
	bus := NewEventBus(nil)
	var order []string

	bus.Subscribe(shared.EventViewChanged, shared.EventHandlerFunc(func(shared.Event) error {
		order = append(order, "first")
		return nil
	}))
	bus.Subscribe(shared.EventViewChanged, shared.EventHandlerFunc(func(shared.Event) error {
		order = append(order, "second")
		return nil
	}))

	err := bus.Publish(shared.NewViewChangedEvent("exams"))

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventBus_PublishIsSynchronous(t *testing.T) {
	bus := NewEventBus(nil)
	delivered := false
	bus.Subscribe(shared.EventSessionClosed, shared.EventHandlerFunc(func(shared.Event) error {
		delivered = true
		return nil
	}))

	_ = bus.Publish(shared.NewSessionClosedEvent(1))

	// No sleeps, no channels: dispatch completed before Publish returned.
	assert.True(t, delivered)
}

func TestEventBus_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewEventBus(nil)
	var reached bool

	bus.Subscribe(shared.EventThemeChanged, shared.EventHandlerFunc(func(shared.Event) error {
		return errors.New("boom")
	}))
	bus.Subscribe(shared.EventThemeChanged, shared.EventHandlerFunc(func(shared.Event) error {
		reached = true
		return nil
	}))

	err := bus.Publish(shared.NewThemeChangedEvent("dark"))

	assert.Error(t, err)
	assert.True(t, reached)
}

func TestEventBus_PanickingHandlerIsContained(t *testing.T) {
	bus := NewEventBus(nil)
	bus.Subscribe(shared.EventFallbackEngaged, shared.EventHandlerFunc(func(shared.Event) error {
		panic("handler bug")
	}))

	require.NotPanics(t, func() {
		err := bus.Publish(shared.NewFallbackEngagedEvent("student_dashboard", "down"))
		assert.Error(t, err)
	})
}

func TestEventBus_NoSubscribersIsNoop(t *testing.T) {
	bus := NewEventBus(nil)
	assert.NoError(t, bus.Publish(shared.NewViewChangedEvent("dashboard")))
	assert.Equal(t, 0, bus.SubscriberCount(shared.EventViewChanged))
}
