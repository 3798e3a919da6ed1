// Package view implements the dashboard's view router as a closed
// tagged-variant state machine. Invalid view/tab combinations are
// unrepresentable: there is exactly one screen, and a tab only exists while
// the dashboard screen is active.
package view

import (
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VARIANTS
// ══════════════════════════════════════════════════════════════════════════════

// Screen is the top-level state tag.
type Screen int

const (
	// ScreenLogin is the unauthenticated state.
	ScreenLogin Screen = iota
	// ScreenDashboard is the authenticated state; role and tab qualify it.
	ScreenDashboard
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Tab is a navigation destination within the dashboard screen.
type Tab string

const (
	TabDashboard     Tab = "dashboard"
	TabAttendance    Tab = "attendance"
	TabAssignments   Tab = "assignments"
	TabExams         Tab = "exams"
	TabNotifications Tab = "notifications"
)

// IsValid checks that the tab is one of the closed set.
func (t Tab) IsValid() bool {
	switch t {
	case TabDashboard, TabAttendance, TabAssignments, TabExams, TabNotifications:
		return true
	default:
		return false
	}
}

// Title returns the capitalized page title for the tab.
func (t Tab) Title() string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseTab parses a navigation value into a Tab.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", shared.ErrInvalidTab
	}
	return t, nil
}

// RiskFilter is the orthogonal mentor-only roster filter. Changing it only
// toggles card visibility; it never refetches or re-aggregates.
type RiskFilter string

const (
	FilterAll    RiskFilter = "all"
	FilterLow    RiskFilter = "low"
	FilterMedium RiskFilter = "medium"
	FilterHigh   RiskFilter = "high"
)

// IsValid checks that the filter is one of the closed set.
func (f RiskFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterLow, FilterMedium, FilterHigh:
		return true
	default:
		return false
	}
}

// ParseRiskFilter parses a control value into a RiskFilter.
func ParseRiskFilter(s string) (RiskFilter, error) {
	f := RiskFilter(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", shared.ErrInvalidFilter
	}
	return f, nil
}

// Variant is the derived dashboard sub-view for the dashboard tab. It is
// recomputed from the role on every read, never stored.
type Variant int

const (
	// VariantNone means no dashboard is active.
	VariantNone Variant = iota
	// VariantStudent is the student risk overview.
	VariantStudent
	// VariantMentor is the mentor roster grid.
	VariantMentor
)

// ══════════════════════════════════════════════════════════════════════════════
// STATE MACHINE
// ══════════════════════════════════════════════════════════════════════════════

// State is the router state. Exactly one screen is active; while the
// dashboard is active, exactly one tab is marked active and the role is
// fixed for the session lifetime.
type State struct {
	screen Screen
	role   session.Role
	tab    Tab
	filter RiskFilter
}

// NewState returns the initial state: the login screen.
func NewState() *State {
	return &State{screen: ScreenLogin, filter: FilterAll}
}

// Screen returns the active screen.
func (s *State) Screen() Screen { return s.screen }

// Role returns the dashboard role; meaningful only on the dashboard screen.
func (s *State) Role() session.Role { return s.role }

// ActiveTab returns the active tab; meaningful only on the dashboard screen.
func (s *State) ActiveTab() Tab { return s.tab }

// Filter returns the roster risk filter.
func (s *State) Filter() RiskFilter { return s.filter }

// OpenDashboard transitions Login -> Dashboard(role, dashboard). It is also
// the re-entry transition after a fresh login over an expired screen.
func (s *State) OpenDashboard(role session.Role) error {
	if !role.IsValid() {
		return shared.ErrInvalidRole
	}
	s.screen = ScreenDashboard
	s.role = role
	s.tab = TabDashboard
	s.filter = FilterAll
	return nil
}

// CloseSession transitions to Login from any state. Unconditional and
// idempotent: logging out of the login screen stays on the login screen.
func (s *State) CloseSession() {
	s.screen = ScreenLogin
	s.role = ""
	s.tab = ""
	s.filter = FilterAll
}

// SelectTab transitions Dashboard(role, t1) -> Dashboard(role, t2). The role
// is invariant across tab changes; selecting a tab on the login screen is a
// state-transition error.
func (s *State) SelectTab(t Tab) error {
	if s.screen != ScreenDashboard {
		return shared.ErrNotOnDashboard
	}
	if !t.IsValid() {
		return shared.ErrInvalidTab
	}
	s.tab = t
	return nil
}

// SetRiskFilter changes the roster filter. Only the mentor dashboard carries
// the filter control.
func (s *State) SetRiskFilter(f RiskFilter) error {
	if s.screen != ScreenDashboard || s.role != session.RoleMentor {
		return shared.ErrFilterForbidden
	}
	if !f.IsValid() {
		return shared.ErrInvalidFilter
	}
	s.filter = f
	return nil
}

// DashboardVariant derives the role-specific sub-view for the dashboard tab.
func (s *State) DashboardVariant() Variant {
	if s.screen != ScreenDashboard || s.tab != TabDashboard {
		return VariantNone
	}
	switch s.role {
	case session.RoleMentor:
		return VariantMentor
	case session.RoleStudent:
		return VariantStudent
	default:
		return VariantNone
	}
}
