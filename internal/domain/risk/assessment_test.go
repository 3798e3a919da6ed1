package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

func TestRiskLevel(t *testing.T) {
	assert.True(t, RiskLow.IsValid())
	assert.False(t, RiskLevel("critical").IsValid())
	assert.Equal(t, "Medium Risk", RiskMedium.Label())

	l, err := ParseRiskLevel(" HIGH ")
	assert.NoError(t, err)
	assert.Equal(t, RiskHigh, l)

	_, err = ParseRiskLevel("severe")
	assert.Error(t, err)
}

func TestAttendanceRecord_Validate(t *testing.T) {
	ok := AttendanceRecord{Percentage: 85.5, TotalClasses: 140, Attended: 119}
	assert.NoError(t, ok.Validate())

	assert.Error(t, AttendanceRecord{Percentage: 101}.Validate())
	assert.Error(t, AttendanceRecord{Percentage: 50, TotalClasses: 10, Attended: 11}.Validate())
	assert.Error(t, AttendanceRecord{Percentage: 50, TotalClasses: -1}.Validate())
}

func TestExamRecord_IsUpcoming(t *testing.T) {
	marks := 72.0
	assert.True(t, ExamRecord{ID: 1}.IsUpcoming())
	assert.False(t, ExamRecord{ID: 2, MarksObtained: &marks}.IsUpcoming())
}

func validPayload() *DashboardPayload {
	return &DashboardPayload{
		Student:    StudentProfile{ID: 1, Name: "Aarav Patel"},
		Attendance: AttendanceRecord{Percentage: 85.5, TotalClasses: 140, Attended: 119},
		Assignments: []Assignment{
			{ID: 1, Title: "AP Assignment 1", DueDate: time.Now().AddDate(0, 0, 5), Status: StatusPending},
		},
		Risk: RiskAssessment{
			Score:   78.5,
			Level:   RiskLow,
			Factors: RiskFactors{Attendance: 85.5, Assignments: 80, Exams: 75, Backlogs: 0},
		},
	}
}

func TestDashboardPayload_Validate(t *testing.T) {
	assert.NoError(t, validPayload().Validate())
}

func TestDashboardPayload_FailsClosedWithoutRisk(t *testing.T) {
	p := validPayload()
	p.Risk = RiskAssessment{}
	err := p.Validate()
	assert.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidEntity)
}

func TestDashboardPayload_NilAndMissingStudent(t *testing.T) {
	var p *DashboardPayload
	assert.ErrorIs(t, p.Validate(), shared.ErrInvalidEntity)

	q := validPayload()
	q.Student.ID = 0
	assert.Error(t, q.Validate())
}
