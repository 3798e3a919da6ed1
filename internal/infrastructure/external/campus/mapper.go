package campus

import (
	"fmt"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAPPER
// Converts wire DTOs to domain types. All mapping fails closed: a payload
// that does not survive domain validation is rejected whole, so the renderer
// never sees a half-valid snapshot.
// ══════════════════════════════════════════════════════════════════════════════

// Mapper converts Campus API DTOs to domain types.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapAuthGrant converts a login response. The identity must be complete;
// a grant without a token or a valid user is a server bug, not a state the
// session may enter.
func (m *Mapper) MapAuthGrant(dto LoginResponseDTO) (*session.AuthGrant, error) {
	role, err := session.ParseRole(dto.User.Role)
	if err != nil {
		return nil, fmt.Errorf("map auth grant: %w", err)
	}

	id := session.Identity{
		ID:    dto.User.ID,
		Name:  dto.User.Name,
		Email: dto.User.Email,
		Role:  role,
	}
	if err := id.Validate(); err != nil {
		return nil, fmt.Errorf("map auth grant: %w", err)
	}
	if dto.Token == "" {
		return nil, shared.NewDomainError("gateway", "Login", shared.ErrInvalidEntity,
			"login response carries no token")
	}

	return &session.AuthGrant{Token: dto.Token, User: id}, nil
}

// MapDashboard converts a dashboard response and validates it as a whole.
func (m *Mapper) MapDashboard(dto DashboardResponseDTO) (*risk.DashboardPayload, error) {
	assignments := make([]risk.Assignment, 0, len(dto.Assignments))
	for _, a := range dto.Assignments {
		mapped, err := m.mapAssignment(a)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, mapped)
	}

	exams := make([]risk.ExamRecord, 0, len(dto.Exams))
	for _, e := range dto.Exams {
		exams = append(exams, risk.ExamRecord{
			ID:            e.ID,
			CourseID:      e.CourseID,
			ExamType:      e.ExamType,
			MarksObtained: e.MarksObtained,
		})
	}

	backlogs := make([]risk.Backlog, 0, len(dto.Backlogs))
	for _, b := range dto.Backlogs {
		backlogs = append(backlogs, risk.Backlog{ID: b.ID, Subject: b.Subject, Status: b.Status})
	}

	alerts := make([]risk.Alert, 0, len(dto.Alerts))
	for _, a := range dto.Alerts {
		alerts = append(alerts, risk.Alert{Type: risk.AlertType(a.Type), Message: a.Message})
	}

	assessment, err := m.mapRisk(dto.Risk)
	if err != nil {
		return nil, err
	}

	payload := &risk.DashboardPayload{
		Student:     m.mapStudent(dto.Student),
		Attendance:  m.mapAttendance(dto.Attendance),
		Assignments: assignments,
		Exams:       exams,
		Backlogs:    backlogs,
		Risk:        assessment,
		Alerts:      alerts,
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("map dashboard: %w", err)
	}
	return payload, nil
}

// MapRoster converts a mentor roster response. A single bad card rejects the
// whole roster; partial rosters would silently hide students.
func (m *Mapper) MapRoster(dto RosterResponseDTO) ([]risk.StudentSummaryCard, error) {
	cards := make([]risk.StudentSummaryCard, 0, len(dto.Students))
	for _, s := range dto.Students {
		level, err := risk.ParseRiskLevel(s.RiskLevel)
		if err != nil {
			return nil, fmt.Errorf("map roster: student %d: %w", s.ID, err)
		}
		cards = append(cards, risk.StudentSummaryCard{
			ID:         s.ID,
			Name:       s.Name,
			RollNumber: s.RollNumber,
			RiskScore:  s.RiskScore,
			RiskLevel:  level,
			Factors: risk.RiskFactors{
				Attendance:  s.Factors.Attendance,
				Assignments: s.Factors.Assignments,
				Exams:       s.Factors.Exams,
				Backlogs:    s.Factors.Backlogs,
			},
		})
	}
	return cards, nil
}

// MapDetails converts a student details response.
func (m *Mapper) MapDetails(dto DetailsResponseDTO) (*risk.StudentDetails, error) {
	assessment, err := m.mapRisk(dto.Risk)
	if err != nil {
		return nil, err
	}
	return &risk.StudentDetails{
		Student:    m.mapStudent(dto.Student),
		Risk:       assessment,
		Attendance: m.mapAttendance(dto.Attendance),
	}, nil
}

func (m *Mapper) mapStudent(dto StudentDTO) risk.StudentProfile {
	return risk.StudentProfile{
		ID:         dto.ID,
		Name:       dto.Name,
		Email:      dto.Email,
		RollNumber: dto.RollNumber,
	}
}

func (m *Mapper) mapAttendance(dto AttendanceDTO) risk.AttendanceRecord {
	return risk.AttendanceRecord{
		Percentage:   dto.Percentage,
		TotalClasses: dto.TotalClasses,
		Attended:     dto.Attended,
	}
}

func (m *Mapper) mapAssignment(dto AssignmentDTO) (risk.Assignment, error) {
	due, err := timeutil.ParseDate(dto.DueDate)
	if err != nil {
		return risk.Assignment{}, shared.WrapError("gateway", "MapDashboard",
			shared.ErrInvalidFormat, "bad assignment due date", err)
	}
	a := risk.Assignment{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     due,
		Status:      risk.AssignmentStatus(dto.Status),
	}
	if err := a.Validate(); err != nil {
		return risk.Assignment{}, err
	}
	return a, nil
}

func (m *Mapper) mapRisk(dto RiskDTO) (risk.RiskAssessment, error) {
	level, err := risk.ParseRiskLevel(dto.RiskLevel)
	if err != nil {
		return risk.RiskAssessment{}, err
	}
	a := risk.RiskAssessment{
		Score: dto.RiskScore,
		Level: level,
		Factors: risk.RiskFactors{
			Attendance:  dto.Factors.Attendance,
			Assignments: dto.Factors.Assignments,
			Exams:       dto.Factors.Exams,
			Backlogs:    dto.Factors.Backlogs,
		},
	}
	if err := a.Validate(); err != nil {
		return risk.RiskAssessment{}, err
	}
	return a, nil
}
