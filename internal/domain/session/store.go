package session

import "context"

// Persisted key names. All three entries are optional; token and user must
// both be present for a session restore to succeed.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// Store is the key-value port for persisted session state. Values are opaque
// strings (the identity travels as serialized JSON). Implementations must
// return shared.ErrNotFound (possibly wrapped) for missing keys.
type Store interface {
	// Set stores a value under key.
	Set(ctx context.Context, key, value string) error

	// Get retrieves the value for key.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
