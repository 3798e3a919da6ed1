package campus

import (
	"time"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// DEMO DATA
// The built-in fallback dataset. Deadlines are relative to the clock passed
// in so the demo always shows plausible "due in N days" rows regardless of
// when it is rendered.
// ══════════════════════════════════════════════════════════════════════════════

// DemoStudentDashboard returns the fallback student snapshot.
func DemoStudentDashboard(now time.Time) *risk.DashboardPayload {
	return &risk.DashboardPayload{
		Student: risk.StudentProfile{
			ID:         1,
			Name:       "Aarav Patel",
			Email:      "aarav.patel@student.edu",
			RollNumber: "2024001",
		},
		Attendance: risk.AttendanceRecord{
			Percentage:   85.5,
			TotalClasses: 140,
			Attended:     119,
		},
		Assignments: []risk.Assignment{
			{
				ID:          1,
				Title:       "AP Assignment 1",
				Description: "Complete problems from chapter 1",
				DueDate:     timeutil.StartOfDay(timeutil.AddDays(now, 5)),
				Status:      risk.StatusPending,
			},
			{
				ID:          2,
				Title:       "PCE Lab Report",
				Description: "Submit programming lab report",
				DueDate:     timeutil.StartOfDay(timeutil.AddDays(now, 3)),
				Status:      risk.StatusPending,
			},
		},
		Exams: []risk.ExamRecord{
			{ID: 1, CourseID: 1, ExamType: "end-term", MarksObtained: nil},
		},
		Backlogs: []risk.Backlog{},
		Risk: risk.RiskAssessment{
			Score: 78.5,
			Level: risk.RiskLow,
			Factors: risk.RiskFactors{
				Attendance:  85.5,
				Assignments: 80,
				Exams:       75,
				Backlogs:    0,
			},
		},
		Alerts: []risk.Alert{
			{Type: risk.AlertInfo, Message: `📝 Assignment "PCE Lab Report" due in 3 days!`},
		},
	}
}

// DemoMentorRoster returns the fallback mentor roster.
func DemoMentorRoster() []risk.StudentSummaryCard {
	return []risk.StudentSummaryCard{
		{
			ID:         1,
			Name:       "Aarav Patel",
			RollNumber: "2024001",
			RiskScore:  78,
			RiskLevel:  risk.RiskLow,
			Factors:    risk.RiskFactors{Attendance: 85, Assignments: 80, Exams: 75, Backlogs: 0},
		},
		{
			ID:         5,
			Name:       "Vihaan Gupta",
			RollNumber: "2024005",
			RiskScore:  45,
			RiskLevel:  risk.RiskHigh,
			Factors:    risk.RiskFactors{Attendance: 60, Assignments: 50, Exams: 40, Backlogs: 2},
		},
		{
			ID:         3,
			Name:       "Arjun Singh",
			RollNumber: "2024003",
			RiskScore:  65,
			RiskLevel:  risk.RiskMedium,
			Factors:    risk.RiskFactors{Attendance: 75, Assignments: 70, Exams: 60, Backlogs: 0},
		},
	}
}
