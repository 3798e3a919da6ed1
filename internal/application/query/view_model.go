package query

import (
	"fmt"
	"math"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
)

// ══════════════════════════════════════════════════════════════════════════════
// RENDER VIEW QUERY
// Projects session state plus the aggregated snapshot into a render-ready
// view model. Stateless and idempotent: identical inputs produce identical
// view models, and nothing in the input is mutated.
// ══════════════════════════════════════════════════════════════════════════════

// NoDeadlinesMessage is the explicit empty-state indicator for the deadlines
// widget; it distinguishes "loaded, nothing due" from "not yet loaded".
const NoDeadlinesMessage = "No upcoming deadlines"

// RenderQuery contains everything the projection needs. Router state is
// passed as plain values so the query stays pure.
type RenderQuery struct {
	Identity *session.Identity
	Theme    session.Theme

	Screen  view.Screen
	Tab     view.Tab
	Variant view.Variant
	Filter  view.RiskFilter

	// LoginMessage is a user-visible outcome from the last login attempt.
	LoginMessage string

	// Summary is the aggregated student snapshot (student variant).
	Summary *DashboardSummaryResult

	// Roster is the mentor's card list (mentor variant).
	Roster []risk.StudentSummaryCard
}

// ViewModel is the render-ready projection. Display fields are preformatted
// strings so presenters print them verbatim; in particular a backlog count
// of zero renders as "0", never blank.
type ViewModel struct {
	Screen    view.Screen
	Title     string
	Theme     session.Theme
	ThemeIcon string

	Login   *LoginViewModel
	Header  *HeaderViewModel
	Tabs    []TabViewModel
	Student *StudentDashboardViewModel
	Mentor  *MentorDashboardViewModel
}

// LoginViewModel is shown on the login screen.
type LoginViewModel struct {
	Message string
}

// HeaderViewModel carries the authenticated header strip.
type HeaderViewModel struct {
	UserName      string
	AvatarInitial string
}

// TabViewModel is one navigation item; exactly one is active.
type TabViewModel struct {
	Tab    view.Tab
	Title  string
	Active bool
}

// DeadlineViewModel is one deadline row.
type DeadlineViewModel struct {
	Title       string
	Description string
	DaysLeft    int
}

// AlertViewModel is one alert banner, rendered verbatim.
type AlertViewModel struct {
	Type    risk.AlertType
	Message string
}

// StudentDashboardViewModel is the student risk overview.
type StudentDashboardViewModel struct {
	AttendanceDisplay  string
	PendingAssignments string
	UpcomingExams      string
	TotalBacklogs      string

	RiskScoreDisplay string
	RiskBadge        string
	RiskLevel        risk.RiskLevel

	FactorAttendance  string
	FactorAssignments string
	FactorExams       string
	FactorBacklogs    string

	Alerts []AlertViewModel

	Deadlines        []DeadlineViewModel
	DeadlinesMessage string // non-empty only for the explicit empty state
}

// RosterCardViewModel is one student card on the mentor grid.
type RosterCardViewModel struct {
	StudentID         int
	Name              string
	AvatarInitial     string
	RollNumber        string
	RiskScoreDisplay  string
	RiskBadge         string
	RiskLevel         risk.RiskLevel
	FactorAttendance  string
	FactorAssignments string
	FactorBacklogs    string
	Visible           bool
}

// MentorDashboardViewModel is the mentor roster grid.
type MentorDashboardViewModel struct {
	Filter       view.RiskFilter
	Cards        []RosterCardViewModel
	VisibleCount int
}

// RenderView builds the view model for the current state.
func RenderView(q RenderQuery) ViewModel {
	vm := ViewModel{
		Screen:    q.Screen,
		Theme:     q.Theme,
		ThemeIcon: themeIcon(q.Theme),
	}

	if q.Screen == view.ScreenLogin {
		vm.Title = "Login"
		vm.Login = &LoginViewModel{Message: q.LoginMessage}
		return vm
	}

	vm.Title = q.Tab.Title()
	if q.Identity != nil {
		vm.Header = &HeaderViewModel{
			UserName:      q.Identity.Name,
			AvatarInitial: q.Identity.AvatarInitial(),
		}
	}
	vm.Tabs = renderTabs(q.Tab)

	switch q.Variant {
	case view.VariantStudent:
		vm.Student = renderStudentDashboard(q.Summary)
	case view.VariantMentor:
		vm.Mentor = renderMentorDashboard(q.Roster, q.Filter)
	}
	return vm
}

func themeIcon(t session.Theme) string {
	if t == session.ThemeDark {
		return "☀️"
	}
	return "🌙"
}

func renderTabs(active view.Tab) []TabViewModel {
	order := []view.Tab{
		view.TabDashboard,
		view.TabAttendance,
		view.TabAssignments,
		view.TabExams,
		view.TabNotifications,
	}
	tabs := make([]TabViewModel, 0, len(order))
	for _, t := range order {
		tabs = append(tabs, TabViewModel{Tab: t, Title: t.Title(), Active: t == active})
	}
	return tabs
}

func renderStudentDashboard(s *DashboardSummaryResult) *StudentDashboardViewModel {
	if s == nil {
		return nil
	}

	vm := &StudentDashboardViewModel{
		AttendanceDisplay:  fmt.Sprintf("%.1f%%", s.AttendancePercent),
		PendingAssignments: fmt.Sprintf("%d", s.PendingAssignments),
		UpcomingExams:      fmt.Sprintf("%d", s.UpcomingExams),
		TotalBacklogs:      fmt.Sprintf("%d", s.TotalBacklogs),
		RiskScoreDisplay:   fmt.Sprintf("%d", int(math.Round(s.RiskScore))),
		RiskBadge:          s.RiskLevel.Label(),
		RiskLevel:          s.RiskLevel,
		FactorAttendance:   fmt.Sprintf("%g%%", s.Factors.Attendance),
		FactorAssignments:  fmt.Sprintf("%g%%", s.Factors.Assignments),
		FactorExams:        fmt.Sprintf("%g%%", s.Factors.Exams),
		FactorBacklogs:     fmt.Sprintf("%d", s.Factors.Backlogs),
	}

	for _, a := range s.Alerts {
		vm.Alerts = append(vm.Alerts, AlertViewModel{Type: a.Type, Message: a.Message})
	}

	if !s.HasDeadlines {
		vm.DeadlinesMessage = NoDeadlinesMessage
		return vm
	}
	for _, d := range s.Deadlines {
		desc := d.Description
		if desc == "" {
			desc = "No description"
		}
		vm.Deadlines = append(vm.Deadlines, DeadlineViewModel{
			Title:       d.Title,
			Description: desc,
			DaysLeft:    d.DaysLeft,
		})
	}
	return vm
}

func renderMentorDashboard(roster []risk.StudentSummaryCard, filter view.RiskFilter) *MentorDashboardViewModel {
	filtered := FilterRoster(FilterRosterQuery{Cards: roster, Filter: filter})

	vm := &MentorDashboardViewModel{
		Filter:       filter,
		VisibleCount: filtered.VisibleCount,
		Cards:        make([]RosterCardViewModel, 0, len(filtered.Cards)),
	}
	for _, cv := range filtered.Cards {
		c := cv.Card
		initial := "?"
		for _, r := range c.Name {
			initial = string(r)
			break
		}
		vm.Cards = append(vm.Cards, RosterCardViewModel{
			StudentID:         c.ID,
			Name:              c.Name,
			AvatarInitial:     initial,
			RollNumber:        c.RollNumber,
			RiskScoreDisplay:  fmt.Sprintf("%g", c.RiskScore),
			RiskBadge:         c.RiskLevel.Label(),
			RiskLevel:         c.RiskLevel,
			FactorAttendance:  fmt.Sprintf("%g%%", c.Factors.Attendance),
			FactorAssignments: fmt.Sprintf("%g%%", c.Factors.Assignments),
			FactorBacklogs:    fmt.Sprintf("%d", c.Factors.Backlogs),
			Visible:           cv.Visible,
		})
	}
	return vm
}
