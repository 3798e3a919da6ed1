package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testNow.AddDate(0, 0, offset)
}

func pending(id int, title string, due time.Time) risk.Assignment {
	return risk.Assignment{ID: id, Title: title, DueDate: due, Status: risk.StatusPending}
}

func TestSummarizeDashboard_Counts(t *testing.T) {
	marks := 64.0
	payload := &risk.DashboardPayload{
		Student:    risk.StudentProfile{ID: 1, Name: "Aarav Patel"},
		Attendance: risk.AttendanceRecord{Percentage: 85.5, TotalClasses: 140, Attended: 119},
		Assignments: []risk.Assignment{
			pending(1, "AP Assignment 1", day(5)),
			pending(2, "PCE Lab Report", day(3)),
			{ID: 3, Title: "Old Essay", DueDate: day(-7), Status: risk.StatusGraded},
		},
		Exams: []risk.ExamRecord{
			{ID: 1, CourseID: 1, ExamType: "end-term"},
			{ID: 2, CourseID: 2, ExamType: "mid-term", MarksObtained: &marks},
		},
		Backlogs: nil,
		Risk: risk.RiskAssessment{
			Score:   78.5,
			Level:   risk.RiskLow,
			Factors: risk.RiskFactors{Attendance: 85.5, Assignments: 80, Exams: 75},
		},
		Alerts: []risk.Alert{{Type: risk.AlertInfo, Message: "due soon"}},
	}

	res := SummarizeDashboard(DashboardSummaryQuery{Payload: payload, Now: testNow})

	assert.Equal(t, 2, res.PendingAssignments)
	assert.Equal(t, 1, res.UpcomingExams)
	assert.Equal(t, 0, res.TotalBacklogs)
	assert.Equal(t, 85.5, res.AttendancePercent)

	// Risk and alerts pass through untouched.
	assert.Equal(t, 78.5, res.RiskScore)
	assert.Equal(t, risk.RiskLow, res.RiskLevel)
	assert.Equal(t, payload.Alerts, res.Alerts)
}

func TestSummarizeDashboard_DeadlinesSortedAndCapped(t *testing.T) {
	assignments := []risk.Assignment{
		pending(1, "f", day(9)),
		pending(2, "a", day(1)),
		pending(3, "d", day(6)),
		{ID: 4, Title: "done", DueDate: day(2), Status: risk.StatusSubmitted},
		pending(5, "b", day(2)),
		pending(6, "e", day(8)),
		pending(7, "c", day(4)),
	}
	payload := &risk.DashboardPayload{
		Student:     risk.StudentProfile{ID: 1, Name: "x"},
		Assignments: assignments,
		Risk:        risk.RiskAssessment{Score: 50, Level: risk.RiskMedium},
	}

	res := SummarizeDashboard(DashboardSummaryQuery{Payload: payload, Now: testNow})

	require.Len(t, res.Deadlines, MaxDeadlines)
	assert.True(t, res.HasDeadlines)

	titles := make([]string, 0, len(res.Deadlines))
	for i, d := range res.Deadlines {
		titles = append(titles, d.Title)
		if i > 0 {
			assert.False(t, d.DueDate.Before(res.Deadlines[i-1].DueDate),
				"deadlines must be non-decreasing by due date")
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, titles)
}

func TestSummarizeDashboard_DeadlineTiesPreserveOrder(t *testing.T) {
	due := day(3)
	payload := &risk.DashboardPayload{
		Student: risk.StudentProfile{ID: 1, Name: "x"},
		Assignments: []risk.Assignment{
			pending(10, "first", due),
			pending(11, "second", due),
			pending(12, "third", due),
		},
		Risk: risk.RiskAssessment{Score: 50, Level: risk.RiskMedium},
	}

	res := SummarizeDashboard(DashboardSummaryQuery{Payload: payload, Now: testNow})
	require.Len(t, res.Deadlines, 3)
	assert.Equal(t, []int{10, 11, 12}, []int{
		res.Deadlines[0].AssignmentID,
		res.Deadlines[1].AssignmentID,
		res.Deadlines[2].AssignmentID,
	})
}

func TestSummarizeDashboard_PastDueGoesNegative(t *testing.T) {
	payload := &risk.DashboardPayload{
		Student:     risk.StudentProfile{ID: 1, Name: "x"},
		Assignments: []risk.Assignment{pending(1, "overdue", day(-4))},
		Risk:        risk.RiskAssessment{Score: 30, Level: risk.RiskHigh},
	}

	res := SummarizeDashboard(DashboardSummaryQuery{Payload: payload, Now: testNow})
	require.Len(t, res.Deadlines, 1)
	assert.Equal(t, -4, res.Deadlines[0].DaysLeft)
}

func TestSummarizeDashboard_EmptyAssignments(t *testing.T) {
	payload := &risk.DashboardPayload{
		Student: risk.StudentProfile{ID: 1, Name: "x"},
		Risk:    risk.RiskAssessment{Score: 90, Level: risk.RiskLow},
	}

	res := SummarizeDashboard(DashboardSummaryQuery{Payload: payload, Now: testNow})
	assert.Empty(t, res.Deadlines)
	assert.False(t, res.HasDeadlines)
}

func TestSummarizeDashboard_NilPayload(t *testing.T) {
	res := SummarizeDashboard(DashboardSummaryQuery{Now: testNow})
	assert.Zero(t, res)
}

func TestSummarizeDashboard_Deterministic(t *testing.T) {
	payload := &risk.DashboardPayload{
		Student: risk.StudentProfile{ID: 1, Name: "x"},
		Assignments: []risk.Assignment{
			pending(1, "a", day(2)), pending(2, "b", day(1)),
		},
		Risk: risk.RiskAssessment{Score: 60, Level: risk.RiskMedium},
	}
	q := DashboardSummaryQuery{Payload: payload, Now: testNow}
	assert.Equal(t, SummarizeDashboard(q), SummarizeDashboard(q))
}
