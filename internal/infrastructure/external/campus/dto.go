// Package campus implements the Campus API client: authentication and the
// dashboard, roster, and detail fetches, plus the demo-data fallback that
// keeps the dashboard usable when the API is down.
package campus

import (
	"fmt"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// WIRE TYPES
// These mirror the Campus API JSON exactly. Mapping to domain types (and all
// validation) happens in the mapper.
// ══════════════════════════════════════════════════════════════════════════════

// LoginRequestDTO is the body of POST /login.
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO is the authenticated user in a login response and in persisted
// session state.
type UserDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponseDTO is the success body of POST /login.
type LoginResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ErrorResponseDTO is the error body every endpoint uses.
type ErrorResponseDTO struct {
	Message string `json:"message"`
}

// StudentDTO identifies a student inside dashboard and detail payloads.
type StudentDTO struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
}

// AttendanceDTO is the attendance block of a dashboard payload.
type AttendanceDTO struct {
	Percentage   float64 `json:"percentage"`
	TotalClasses int     `json:"total_classes"`
	Attended     int     `json:"attended"`
}

// AssignmentDTO is one assignment row. DueDate is a bare date, "2006-01-02".
type AssignmentDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

// ExamDTO is one exam row. MarksObtained is null for exams not yet taken.
type ExamDTO struct {
	ID            int      `json:"id"`
	CourseID      int      `json:"course_id"`
	ExamType      string   `json:"exam_type"`
	MarksObtained *float64 `json:"marks_obtained"`
}

// BacklogDTO is one pending backlog row.
type BacklogDTO struct {
	ID      int    `json:"id"`
	Subject string `json:"subject"`
	Status  string `json:"status"`
}

// FactorsDTO is the per-factor breakdown inside a risk block.
type FactorsDTO struct {
	Attendance  float64 `json:"attendance"`
	Assignments float64 `json:"assignments"`
	Exams       float64 `json:"exams"`
	Backlogs    int     `json:"backlogs"`
}

// RiskDTO is the server-computed risk block.
type RiskDTO struct {
	RiskScore float64    `json:"risk_score"`
	RiskLevel string     `json:"risk_level"`
	Factors   FactorsDTO `json:"factors"`
}

// AlertDTO is one server-generated alert.
type AlertDTO struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// DashboardResponseDTO is the body of GET /student/dashboard/{id}.
type DashboardResponseDTO struct {
	Student     StudentDTO      `json:"student"`
	Attendance  AttendanceDTO   `json:"attendance"`
	Assignments []AssignmentDTO `json:"assignments"`
	Exams       []ExamDTO       `json:"exams"`
	Backlogs    []BacklogDTO    `json:"backlogs"`
	Risk        RiskDTO         `json:"risk"`
	Alerts      []AlertDTO      `json:"alerts"`
}

// RosterStudentDTO is one student card in a mentor roster response.
type RosterStudentDTO struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	RollNumber string     `json:"roll_number"`
	Email      string     `json:"email"`
	RiskScore  float64    `json:"risk_score"`
	RiskLevel  string     `json:"risk_level"`
	Factors    FactorsDTO `json:"factors"`
}

// RosterResponseDTO is the body of GET /mentor/students/{id}.
type RosterResponseDTO struct {
	Students []RosterStudentDTO `json:"students"`
}

// DetailsResponseDTO is the body of GET /mentor/student/{id}/details.
type DetailsResponseDTO struct {
	Student    StudentDTO    `json:"student"`
	Risk       RiskDTO       `json:"risk"`
	Attendance AttendanceDTO `json:"attendance"`
}

// HealthResponseDTO is the body of GET /health.
type HealthResponseDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Healthy reports whether the API declared itself healthy.
func (h HealthResponseDTO) Healthy() bool {
	return h.Status == "healthy"
}

// APIError carries a non-2xx response. The server puts its user-facing text
// in Message.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("campus api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("campus api: status %d", e.StatusCode)
}

// parseTimestamp parses the ISO health timestamp, tolerating both with and
// without a zone suffix.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05.999999", s)
}
