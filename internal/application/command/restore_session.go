package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESTORE SESSION COMMAND
// Runs once at startup. A session restores only when BOTH the token and the
// serialized identity are present; a partial pair is treated as no session
// and the leftovers are cleared. The theme preference restores independently.
// ══════════════════════════════════════════════════════════════════════════════

// RestoreSessionCommand triggers session restoration from the store.
type RestoreSessionCommand struct{}

// RestoreSessionResult reports what was recovered from the store.
type RestoreSessionResult struct {
	// Restored indicates a full session (token + identity) was recovered.
	Restored bool

	// Identity is the recovered user. Zero value unless Restored.
	Identity session.Identity

	// Theme is the effective theme after restoration.
	Theme session.Theme
}

// RestoreSessionHandler handles the RestoreSessionCommand.
type RestoreSessionHandler struct {
	store     session.Store
	session   *session.Session
	publisher shared.EventPublisher
}

// NewRestoreSessionHandler creates a new RestoreSessionHandler.
func NewRestoreSessionHandler(
	store session.Store,
	sess *session.Session,
	publisher shared.EventPublisher,
) *RestoreSessionHandler {
	return &RestoreSessionHandler{
		store:     store,
		session:   sess,
		publisher: publisher,
	}
}

// Handle executes the restore. A missing or partial session is not an error:
// the result simply reports Restored false and the app starts on the login
// screen.
func (h *RestoreSessionHandler) Handle(ctx context.Context, _ RestoreSessionCommand) (*RestoreSessionResult, error) {
	h.restoreTheme(ctx)

	result := &RestoreSessionResult{Theme: h.session.Theme()}

	token, tokenErr := h.store.Get(ctx, session.KeyToken)
	rawUser, userErr := h.store.Get(ctx, session.KeyUser)

	tokenMissing := isMissing(tokenErr)
	userMissing := isMissing(userErr)

	switch {
	case tokenErr != nil && !tokenMissing:
		return nil, fmt.Errorf("restore_session: read token: %w", tokenErr)
	case userErr != nil && !userMissing:
		return nil, fmt.Errorf("restore_session: read user: %w", userErr)
	case tokenMissing && userMissing:
		return result, nil
	case tokenMissing || userMissing:
		// Half a session is no session. Clear the leftover entry.
		_ = h.store.Delete(ctx, session.KeyToken, session.KeyUser)
		return result, nil
	}

	var id session.Identity
	if err := json.Unmarshal([]byte(rawUser), &id); err != nil {
		_ = h.store.Delete(ctx, session.KeyToken, session.KeyUser)
		return result, nil
	}
	if token == "" || h.session.Open(id) != nil {
		_ = h.store.Delete(ctx, session.KeyToken, session.KeyUser)
		return result, nil
	}

	result.Restored = true
	result.Identity = id

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewSessionOpenedEvent(id.ID, id.Role.String(), true))
	}

	return result, nil
}

// restoreTheme applies a persisted theme preference, if any.
func (h *RestoreSessionHandler) restoreTheme(ctx context.Context) {
	raw, err := h.store.Get(ctx, session.KeyTheme)
	if err != nil {
		return
	}
	h.session.SetTheme(session.ParseTheme(raw))
}

// isMissing reports whether a store read failed because the key is absent.
func isMissing(err error) bool {
	return err != nil && errors.Is(err, shared.ErrNotFound)
}
