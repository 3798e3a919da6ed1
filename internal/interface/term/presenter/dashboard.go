package presenter

import (
	"fmt"
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// DASHBOARD PRESENTER
// Renders the header, the tab bar, and the student dashboard. The mentor
// roster has its own presenter.
// ══════════════════════════════════════════════════════════════════════════════

// DashboardPresenter formats the dashboard screen for a student.
type DashboardPresenter struct{}

// NewDashboardPresenter creates a new DashboardPresenter.
func NewDashboardPresenter() *DashboardPresenter {
	return &DashboardPresenter{}
}

// FormatHeader renders the page title, user chip, and tab bar.
func (p *DashboardPresenter) FormatHeader(vm query.ViewModel) string {
	var sb strings.Builder

	sb.WriteString("═══ " + vm.Title + " ═══  " + vm.ThemeIcon + "\n")
	if vm.Header != nil {
		sb.WriteString(fmt.Sprintf("(%s) %s\n", vm.Header.AvatarInitial, vm.Header.UserName))
	}

	tabs := make([]string, 0, len(vm.Tabs))
	for _, tab := range vm.Tabs {
		if tab.Active {
			tabs = append(tabs, "["+tab.Title+"]")
		} else {
			tabs = append(tabs, tab.Title)
		}
	}
	sb.WriteString(strings.Join(tabs, "  ") + "\n")

	return sb.String()
}

// FormatStudent renders the student dashboard body.
func (p *DashboardPresenter) FormatStudent(vm *query.StudentDashboardViewModel) string {
	if vm == nil {
		return "Loading...\n"
	}

	var sb strings.Builder

	// Stat cards
	sb.WriteString(fmt.Sprintf("Attendance: %s   Pending assignments: %s   Upcoming exams: %s   Backlogs: %s\n",
		vm.AttendanceDisplay, vm.PendingAssignments, vm.UpcomingExams, vm.TotalBacklogs))

	// Risk circle
	sb.WriteString(fmt.Sprintf("Risk score: %s (%s)\n", vm.RiskScoreDisplay, vm.RiskBadge))
	sb.WriteString(fmt.Sprintf("  attendance %s  assignments %s  exams %s  backlogs %s\n",
		vm.FactorAttendance, vm.FactorAssignments, vm.FactorExams, vm.FactorBacklogs))

	// Alerts, verbatim and in payload order
	for _, alert := range vm.Alerts {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", alert.Type, alert.Message))
	}

	// Deadlines
	sb.WriteString("\nUpcoming deadlines:\n")
	if vm.DeadlinesMessage != "" {
		sb.WriteString("  " + vm.DeadlinesMessage + "\n")
		return sb.String()
	}
	for _, d := range vm.Deadlines {
		sb.WriteString(fmt.Sprintf("  %-24s %s — %d days left\n", d.Title, d.Description, d.DaysLeft))
	}

	return sb.String()
}
