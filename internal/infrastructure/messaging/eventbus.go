// Package messaging implements the in-process event bus.
//
// The bus is synchronous: Publish runs every subscriber inline on the
// caller's goroutine. The whole application is driven by a single event
// loop, so there is no concurrency to exploit and asynchronous dispatch
// would only reorder diagnostics.
package messaging

import (
	"errors"
	"runtime/debug"
	"sync"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// EventBus implements shared.EventBus with synchronous in-process dispatch.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[shared.EventType][]shared.EventHandler
	logger   *logger.Logger
}

// NewEventBus creates an EventBus.
func NewEventBus(log *logger.Logger) *EventBus {
	if log == nil {
		log = logger.Default()
	}
	return &EventBus{
		handlers: make(map[shared.EventType][]shared.EventHandler),
		logger:   log.With(logger.Component("eventbus")),
	}
}

// Subscribe registers a handler for an event type. Handlers run in
// registration order.
func (b *EventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish delivers the event to every subscriber inline. A failing or
// panicking handler is logged and skipped; diagnostics must never take the
// UI down with them. The returned error joins all handler errors.
func (b *EventBus) Publish(event shared.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := b.dispatch(h, event); err != nil {
			b.logger.Error("event handler failed",
				logger.String("event_type", string(event.EventType())),
				logger.Err(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *EventBus) dispatch(h shared.EventHandler, event shared.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				logger.String("event_type", string(event.EventType())),
				logger.Any("panic", r),
				logger.String("stack", string(debug.Stack())),
			)
			err = shared.NewDomainError("messaging", "Publish", shared.ErrInvalidState,
				"event handler panicked")
		}
	}()
	return h.Handle(event)
}

// SubscriberCount reports how many handlers are registered for a type.
func (b *EventBus) SubscriberCount(eventType shared.EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
