// Package query contains read operations following CQRS pattern.
// Queries never modify state - they are pure, deterministic transformations
// over an already-fetched snapshot. No I/O happens here; the clock is passed
// in explicitly so results are reproducible.
package query

import (
	"sort"
	"time"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// DASHBOARD SUMMARY QUERY
// Derives the headline stats, upcoming deadlines, and pass-through risk data
// from a raw student payload.
// ══════════════════════════════════════════════════════════════════════════════

// MaxDeadlines is how many pending assignments the deadlines widget shows.
const MaxDeadlines = 5

// DashboardSummaryQuery contains the inputs for the aggregation.
type DashboardSummaryQuery struct {
	// Payload is the last-fetched student snapshot.
	Payload *risk.DashboardPayload

	// Now anchors the days-left computation.
	Now time.Time
}

// Deadline is one row in the upcoming-deadlines widget.
type Deadline struct {
	AssignmentID int
	Title        string
	Description  string
	DueDate      time.Time

	// DaysLeft is ceil((due - now) / 1 day). Past deadlines go negative;
	// the renderer shows the value as-is.
	DaysLeft int
}

// DashboardSummaryResult is the aggregated student summary.
type DashboardSummaryResult struct {
	AttendancePercent  float64
	PendingAssignments int
	UpcomingExams      int
	TotalBacklogs      int

	// Risk data passed through from the payload, never recomputed.
	RiskScore float64
	RiskLevel risk.RiskLevel
	Factors   risk.RiskFactors

	// Alerts in payload order, rendered verbatim.
	Alerts []risk.Alert

	// Deadlines holds at most MaxDeadlines pending assignments, sorted
	// non-decreasing by due date (stable on ties).
	Deadlines []Deadline

	// HasDeadlines distinguishes a loaded-but-empty deadline list from a
	// snapshot that was never aggregated. The renderer shows an explicit
	// "No upcoming deadlines" indicator when false.
	HasDeadlines bool
}

// SummarizeDashboard runs the aggregation. The payload must already be
// validated; a nil payload yields a zero result.
func SummarizeDashboard(q DashboardSummaryQuery) DashboardSummaryResult {
	if q.Payload == nil {
		return DashboardSummaryResult{}
	}
	p := q.Payload

	res := DashboardSummaryResult{
		AttendancePercent: p.Attendance.Percentage,
		TotalBacklogs:     len(p.Backlogs),
		RiskScore:         p.Risk.Score,
		RiskLevel:         p.Risk.Level,
		Factors:           p.Risk.Factors,
		Alerts:            p.Alerts,
	}

	for _, a := range p.Assignments {
		if a.Status.IsPending() {
			res.PendingAssignments++
		}
	}
	for _, e := range p.Exams {
		if e.IsUpcoming() {
			res.UpcomingExams++
		}
	}

	res.Deadlines = upcomingDeadlines(p.Assignments, q.Now)
	res.HasDeadlines = len(res.Deadlines) > 0
	return res
}

// upcomingDeadlines filters to pending assignments, sorts ascending by due
// date preserving the original relative order on ties, and keeps the first
// MaxDeadlines entries.
func upcomingDeadlines(assignments []risk.Assignment, now time.Time) []Deadline {
	pending := make([]risk.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Status.IsPending() {
			pending = append(pending, a)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})

	if len(pending) > MaxDeadlines {
		pending = pending[:MaxDeadlines]
	}

	deadlines := make([]Deadline, 0, len(pending))
	for _, a := range pending {
		deadlines = append(deadlines, Deadline{
			AssignmentID: a.ID,
			Title:        a.Title,
			Description:  a.Description,
			DueDate:      a.DueDate,
			DaysLeft:     timeutil.DaysUntil(now, a.DueDate),
		})
	}
	return deadlines
}
