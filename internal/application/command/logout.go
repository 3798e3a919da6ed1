package command

import (
	"context"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGOUT COMMAND
// Clears the session and its persisted entries. Idempotent: logging out of
// an empty session succeeds and does nothing. The theme preference survives.
// ══════════════════════════════════════════════════════════════════════════════

// LogoutCommand triggers a logout.
type LogoutCommand struct{}

// LogoutResult reports what was closed.
type LogoutResult struct {
	// WasAuthenticated indicates a session was actually open.
	WasAuthenticated bool
}

// LogoutHandler handles the LogoutCommand.
type LogoutHandler struct {
	store     session.Store
	session   *session.Session
	publisher shared.EventPublisher
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(store session.Store, sess *session.Session, publisher shared.EventPublisher) *LogoutHandler {
	return &LogoutHandler{
		store:     store,
		session:   sess,
		publisher: publisher,
	}
}

// Handle executes the logout. Store failures are swallowed: the in-memory
// session is already closed and leftover entries will be cleared by the
// partial-session rule on the next restore.
func (h *LogoutHandler) Handle(ctx context.Context, _ LogoutCommand) (*LogoutResult, error) {
	id, wasOpen := h.session.Identity()
	h.session.Close()

	_ = h.store.Delete(ctx, session.KeyToken, session.KeyUser)

	if wasOpen && h.publisher != nil {
		_ = h.publisher.Publish(shared.NewSessionClosedEvent(id.ID))
	}

	return &LogoutResult{WasAuthenticated: wasOpen}, nil
}
