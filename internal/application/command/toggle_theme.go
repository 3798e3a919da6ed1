package command

import (
	"context"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOGGLE THEME COMMAND
// Flips light/dark and persists the choice. Works on any screen, including
// before login.
// ══════════════════════════════════════════════════════════════════════════════

// ToggleThemeCommand flips the theme preference.
type ToggleThemeCommand struct{}

// ToggleThemeResult reports the new theme.
type ToggleThemeResult struct {
	// Theme is the preference after the toggle.
	Theme session.Theme

	// Persisted indicates the preference was written to the store.
	Persisted bool
}

// ToggleThemeHandler handles the ToggleThemeCommand.
type ToggleThemeHandler struct {
	store     session.Store
	session   *session.Session
	publisher shared.EventPublisher
}

// NewToggleThemeHandler creates a new ToggleThemeHandler.
func NewToggleThemeHandler(store session.Store, sess *session.Session, publisher shared.EventPublisher) *ToggleThemeHandler {
	return &ToggleThemeHandler{
		store:     store,
		session:   sess,
		publisher: publisher,
	}
}

// Handle flips the theme. A store failure does not revert the in-memory
// toggle; the user keeps the theme they asked for until restart.
func (h *ToggleThemeHandler) Handle(ctx context.Context, _ ToggleThemeCommand) (*ToggleThemeResult, error) {
	theme := h.session.ToggleTheme()

	persisted := h.store.Set(ctx, session.KeyTheme, theme.String()) == nil

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewThemeChangedEvent(theme.String()))
	}

	return &ToggleThemeResult{Theme: theme, Persisted: persisted}, nil
}
