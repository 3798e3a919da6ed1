package session

// Session is the explicit session-state object. It replaces ambient globals:
// every consumer receives it through explicit passing, reads through
// accessors, and mutates through the methods below.
//
// Invariant: the identity is non-nil iff the dashboard screen is active;
// the view state machine enforces the screen side of that invariant.
type Session struct {
	identity *Identity
	theme    Theme
}

// New creates an unauthenticated session with the given theme preference.
func New(theme Theme) *Session {
	if !theme.IsValid() {
		theme = ThemeLight
	}
	return &Session{theme: theme}
}

// Authenticated reports whether an identity is present.
func (s *Session) Authenticated() bool {
	return s.identity != nil
}

// Identity returns a copy of the current identity, if any.
func (s *Session) Identity() (Identity, bool) {
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Theme returns the current theme preference.
func (s *Session) Theme() Theme {
	return s.theme
}

// Open installs an identity after a successful login or restore.
func (s *Session) Open(id Identity) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.identity = &id
	return nil
}

// Close clears the identity. Idempotent: closing an empty session is a no-op.
func (s *Session) Close() {
	s.identity = nil
}

// ToggleTheme flips the theme and returns the new value. Callable at any
// time, including before login.
func (s *Session) ToggleTheme() Theme {
	s.theme = s.theme.Toggle()
	return s.theme
}

// SetTheme installs a restored theme preference. Invalid values are ignored.
func (s *Session) SetTheme(theme Theme) {
	if theme.IsValid() {
		s.theme = theme
	}
}
