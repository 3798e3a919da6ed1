package presenter

import (
	"fmt"
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/application/query"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// RosterPresenter formats the mentor's student grid.
type RosterPresenter struct{}

// NewRosterPresenter creates a new RosterPresenter.
func NewRosterPresenter() *RosterPresenter {
	return &RosterPresenter{}
}

// Format renders the mentor roster. Hidden cards keep their slot in the
// view model but are not printed.
func (p *RosterPresenter) Format(vm *query.MentorDashboardViewModel) string {
	if vm == nil {
		return "Loading...\n"
	}

	var sb strings.Builder

	filter := string(vm.Filter)
	if vm.Filter == view.FilterAll {
		filter = "all"
	}
	sb.WriteString(fmt.Sprintf("My Students — filter: %s (%d shown)\n", filter, vm.VisibleCount))

	for _, card := range vm.Cards {
		if !card.Visible {
			continue
		}
		sb.WriteString(fmt.Sprintf("  (%s) %s  #%s  [id %d]\n",
			card.AvatarInitial, card.Name, card.RollNumber, card.StudentID))
		sb.WriteString(fmt.Sprintf("      risk %s (%s)  attendance %s  assignments %s  backlogs %s\n",
			card.RiskScoreDisplay, card.RiskBadge,
			card.FactorAttendance, card.FactorAssignments, card.FactorBacklogs))
	}

	if vm.VisibleCount == 0 {
		sb.WriteString("  No students match this filter\n")
	}

	return sb.String()
}
