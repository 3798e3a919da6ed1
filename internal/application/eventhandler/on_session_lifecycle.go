package eventhandler

import (
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// SESSION LIFECYCLE HANDLER
// Logs session open/close/restore and theme changes at Info. Email and
// password never appear in events, so nothing sensitive reaches the log.
// ═══════════════════════════════════════════════════════════════════════════

// OnSessionLifecycleHandler logs the session lifecycle.
type OnSessionLifecycleHandler struct {
	logger *logger.Logger
}

// NewOnSessionLifecycleHandler creates a new OnSessionLifecycleHandler.
func NewOnSessionLifecycleHandler(log *logger.Logger) *OnSessionLifecycleHandler {
	return &OnSessionLifecycleHandler{
		logger: log.With(logger.Component("eventhandler")),
	}
}

// Handle implements shared.EventHandler.
func (h *OnSessionLifecycleHandler) Handle(event shared.Event) error {
	switch e := event.(type) {
	case shared.SessionOpenedEvent:
		msg := "session opened"
		if e.Restored {
			msg = "session restored"
		}
		h.logger.Info(msg, logger.UserID(e.UserID), logger.Role(e.Role))
	case shared.SessionClosedEvent:
		h.logger.Info("session closed", logger.UserID(e.UserID))
	case shared.ThemeChangedEvent:
		h.logger.Info("theme changed", logger.String("theme", e.Theme))
	}
	return nil
}

// Subscribe registers the handler for all session events.
func (h *OnSessionLifecycleHandler) Subscribe(bus shared.EventSubscriber) {
	bus.Subscribe(shared.EventSessionOpened, h)
	bus.Subscribe(shared.EventSessionRestore, h)
	bus.Subscribe(shared.EventSessionClosed, h)
	bus.Subscribe(shared.EventThemeChanged, h)
}
