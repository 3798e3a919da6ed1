// Package command contains write operations (CQRS - Commands).
// Commands mutate the session and view state; every failure a command can
// hit during normal operation is converted into a displayable outcome
// rather than an error, so the UI always has something to show.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGIN COMMAND
// Authenticates against the campus API and opens the session. Login never
// falls back to demo data: a failed login leaves the user on the login
// screen with a message.
// ══════════════════════════════════════════════════════════════════════════════

// ConnectionErrorMessage is shown when the campus API is unreachable during
// login. Distinct from a rejected-credentials message.
const ConnectionErrorMessage = "Connection error. Please ensure the backend server is running."

// InvalidCredentialsMessage is the default rejection message when the server
// does not provide one.
const InvalidCredentialsMessage = "Invalid credentials"

// LoginCommand contains the credentials from the login form.
type LoginCommand struct {
	Email    string
	Password string
}

// Validate checks both fields are present. Runs before any network call.
func (c LoginCommand) Validate() error {
	return session.Credentials{Email: c.Email, Password: c.Password}.Validate()
}

// LoginResult is the displayable outcome of a login attempt.
type LoginResult struct {
	// Success indicates the session is now open.
	Success bool

	// Identity is the authenticated user. Zero value unless Success.
	Identity session.Identity

	// Message is the user-visible failure text. Empty on success.
	Message string

	// Persisted indicates the session survived into the store. A false
	// value with Success true means the session works but will not be
	// restored on the next start.
	Persisted bool
}

// LoginHandler handles the LoginCommand.
type LoginHandler struct {
	gateway   risk.Gateway
	store     session.Store
	session   *session.Session
	publisher shared.EventPublisher
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(
	gateway risk.Gateway,
	store session.Store,
	sess *session.Session,
	publisher shared.EventPublisher,
) *LoginHandler {
	return &LoginHandler{
		gateway:   gateway,
		store:     store,
		session:   sess,
		publisher: publisher,
	}
}

// Handle executes the login command. The returned error is reserved for
// programmer mistakes (corrupt server payloads); expected failures come back
// as a LoginResult with a Message.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return &LoginResult{Message: displayMessage(err, InvalidCredentialsMessage)}, nil
	}

	creds := session.Credentials{Email: cmd.Email, Password: cmd.Password}
	grant, err := h.gateway.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, shared.ErrExternalService) || errors.Is(err, shared.ErrTimeout) {
			return &LoginResult{Message: ConnectionErrorMessage}, nil
		}
		return &LoginResult{Message: displayMessage(err, InvalidCredentialsMessage)}, nil
	}

	if err := h.session.Open(grant.User); err != nil {
		return nil, fmt.Errorf("login: server returned invalid identity: %w", err)
	}

	result := &LoginResult{
		Success:   true,
		Identity:  grant.User,
		Persisted: h.persist(ctx, grant),
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewSessionOpenedEvent(grant.User.ID, grant.User.Role.String(), false))
	}

	return result, nil
}

// persist writes the token and serialized identity to the store. Failures
// do not abort the login; the session simply will not survive a restart.
func (h *LoginHandler) persist(ctx context.Context, grant *session.AuthGrant) bool {
	raw, err := json.Marshal(grant.User)
	if err != nil {
		return false
	}
	if err := h.store.Set(ctx, session.KeyToken, grant.Token); err != nil {
		return false
	}
	if err := h.store.Set(ctx, session.KeyUser, string(raw)); err != nil {
		_ = h.store.Delete(ctx, session.KeyToken)
		return false
	}
	return true
}

// displayMessage extracts the user-facing text from a domain error,
// falling back to a default.
func displayMessage(err error, fallback string) string {
	var de *shared.DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
