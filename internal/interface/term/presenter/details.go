package presenter

import (
	"fmt"
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
)

// ══════════════════════════════════════════════════════════════════════════════
// DETAILS PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// DetailsPresenter formats the mentor's drill-down view of one student.
type DetailsPresenter struct{}

// NewDetailsPresenter creates a new DetailsPresenter.
func NewDetailsPresenter() *DetailsPresenter {
	return &DetailsPresenter{}
}

// Format renders a student detail record.
func (p *DetailsPresenter) Format(d *risk.StudentDetails) string {
	if d == nil {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Student: %s  #%s  [id %d]\n",
		d.Student.Name, d.Student.RollNumber, d.Student.ID))
	if d.Student.Email != "" {
		sb.WriteString("  " + d.Student.Email + "\n")
	}
	sb.WriteString(fmt.Sprintf("Risk: %g (%s)\n", d.Risk.Score, d.Risk.Level.Label()))
	sb.WriteString(fmt.Sprintf("  attendance %g%%  assignments %g%%  exams %g%%  backlogs %d\n",
		d.Risk.Factors.Attendance, d.Risk.Factors.Assignments,
		d.Risk.Factors.Exams, d.Risk.Factors.Backlogs))
	sb.WriteString(fmt.Sprintf("Attendance: %.1f%% (%d of %d classes)\n",
		d.Attendance.Percentage, d.Attendance.Attended, d.Attendance.TotalClasses))

	return sb.String()
}
