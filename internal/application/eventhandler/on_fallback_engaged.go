// Package eventhandler contains subscribers for domain events.
// All handlers here are diagnostic: they log and count, and never mutate
// session or view state. The UI owns its state; the bus only observes it.
package eventhandler

import (
	"sync"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON FALLBACK ENGAGED HANDLER
// A fallback is a recovery, not an error: the dashboard stayed usable on
// demo data. It is logged at Warn so operators can see how often the API
// is failing without treating the session as broken.
// ═══════════════════════════════════════════════════════════════════════════

// OnFallbackEngagedHandler logs and counts demo-data fallbacks.
type OnFallbackEngagedHandler struct {
	logger *logger.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewOnFallbackEngagedHandler creates a new OnFallbackEngagedHandler.
func NewOnFallbackEngagedHandler(log *logger.Logger) *OnFallbackEngagedHandler {
	return &OnFallbackEngagedHandler{
		logger: log.With(logger.Component("eventhandler")),
		counts: make(map[string]int),
	}
}

// Handle implements shared.EventHandler.
func (h *OnFallbackEngagedHandler) Handle(event shared.Event) error {
	e, ok := event.(shared.FallbackEngagedEvent)
	if !ok {
		return nil
	}

	h.mu.Lock()
	h.counts[e.Operation]++
	total := h.counts[e.Operation]
	h.mu.Unlock()

	h.logger.Warn("fallback engaged, serving demo data",
		logger.Operation(e.Operation),
		logger.String("reason", e.Reason),
		logger.Int("total_for_operation", total),
	)
	return nil
}

// Count returns how many times the fallback engaged for an operation.
func (h *OnFallbackEngagedHandler) Count(operation string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[operation]
}

// Subscribe registers the handler on the bus.
func (h *OnFallbackEngagedHandler) Subscribe(bus shared.EventSubscriber) {
	bus.Subscribe(shared.EventFallbackEngaged, h)
}
