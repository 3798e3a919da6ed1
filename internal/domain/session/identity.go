// Package session contains the authenticated-identity model and the session
// state object. No I/O happens here; persistence goes through the Store port.
package session

import (
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Role determines which dashboard variant a user sees.
type Role string

const (
	// RoleStudent sees their own risk dashboard.
	RoleStudent Role = "student"
	// RoleMentor sees the roster of assigned students.
	RoleMentor Role = "mentor"
)

// IsValid checks that the role is one of the closed set.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleMentor
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a wire value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", shared.ErrInvalidRole
	}
	return r, nil
}

// Theme is the two-valued display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid checks that the theme is light or dark.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}

// ParseTheme parses a persisted value into a Theme, defaulting to light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ══════════════════════════════════════════════════════════════════════════════
// IDENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Identity is the authenticated user. It is created on successful login or
// restored from the store, and destroyed on logout. The role never changes
// for the lifetime of a session.
type Identity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate checks the identity invariants.
func (i Identity) Validate() error {
	if i.ID <= 0 || i.Name == "" || i.Email == "" {
		return shared.ErrInvalidIdentity
	}
	if !i.Role.IsValid() {
		return shared.ErrInvalidRole
	}
	return nil
}

// AvatarInitial returns the uppercased first rune of the user's name,
// used for the header avatar.
func (i Identity) AvatarInitial() string {
	for _, r := range i.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Credentials carry a login attempt. They are never persisted.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks that both fields are present before any network call.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return shared.NewDomainError("session", "Login", shared.ErrEmptyValue,
			"Email and password required")
	}
	return nil
}

// AuthGrant is what a successful login yields: an opaque token plus the
// authenticated identity.
type AuthGrant struct {
	Token string
	User  Identity
}
