package eventhandler

import (
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// VIEW DIAGNOSTICS HANDLER
// Traces navigation, filter changes, and discarded stale fetches at Debug.
// Stale discards are the interesting signal: each one is a race the
// staleness guard won.
// ═══════════════════════════════════════════════════════════════════════════

// OnViewChangedHandler traces view transitions.
type OnViewChangedHandler struct {
	logger *logger.Logger
}

// NewOnViewChangedHandler creates a new OnViewChangedHandler.
func NewOnViewChangedHandler(log *logger.Logger) *OnViewChangedHandler {
	return &OnViewChangedHandler{
		logger: log.With(logger.Component("eventhandler")),
	}
}

// Handle implements shared.EventHandler.
func (h *OnViewChangedHandler) Handle(event shared.Event) error {
	switch e := event.(type) {
	case shared.ViewChangedEvent:
		h.logger.Debug("tab changed", logger.View(e.Tab))
	case shared.FilterChangedEvent:
		h.logger.Debug("risk filter changed", logger.String("filter", e.Filter))
	case shared.StaleFetchDiscardedEvent:
		h.logger.Info("stale fetch discarded", logger.FetchToken(e.Token))
	case shared.DashboardLoadedEvent:
		h.logger.Debug("dashboard loaded",
			logger.UserID(e.UserID),
			logger.Float64("risk_score", e.RiskScore),
			logger.Bool("from_demo", e.FromDemo),
		)
	case shared.RosterLoadedEvent:
		h.logger.Debug("roster loaded",
			logger.UserID(e.MentorID),
			logger.Int("student_count", e.StudentCount),
			logger.Bool("from_demo", e.FromDemo),
		)
	}
	return nil
}

// Subscribe registers the handler for view and load events.
func (h *OnViewChangedHandler) Subscribe(bus shared.EventSubscriber) {
	bus.Subscribe(shared.EventViewChanged, h)
	bus.Subscribe(shared.EventFilterChange, h)
	bus.Subscribe(shared.EventStaleFetch, h)
	bus.Subscribe(shared.EventDashboardLoaded, h)
	bus.Subscribe(shared.EventRosterLoaded, h)
}
