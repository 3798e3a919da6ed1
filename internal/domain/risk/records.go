// Package risk contains the academic-risk data model: raw per-student
// records, the precomputed risk assessment, and the dashboard payload that
// bundles them. Everything here is an immutable snapshot for the duration of
// a render cycle; a new fetch replaces the whole snapshot atomically.
package risk

import (
	"time"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ATTENDANCE
// ══════════════════════════════════════════════════════════════════════════════

// AttendanceRecord summarizes class attendance.
type AttendanceRecord struct {
	// Percentage is attendance in [0, 100].
	Percentage float64 `json:"percentage"`

	// TotalClasses is the number of classes held.
	TotalClasses int `json:"total_classes"`

	// Attended is the number of classes attended, 0 <= Attended <= TotalClasses.
	Attended int `json:"attended"`
}

// Validate checks the attendance invariants.
func (a AttendanceRecord) Validate() error {
	if a.Percentage < 0 || a.Percentage > 100 {
		return shared.ErrInvalidAttendance
	}
	if a.TotalClasses < 0 || a.Attended < 0 || a.Attended > a.TotalClasses {
		return shared.ErrInvalidAttendance
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGNMENTS
// ══════════════════════════════════════════════════════════════════════════════

// AssignmentStatus is the lifecycle state of an assignment. Transitions
// happen externally; the dashboard only reads.
type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusSubmitted AssignmentStatus = "submitted"
	StatusGraded    AssignmentStatus = "graded"
	StatusLate      AssignmentStatus = "late"
)

// IsPending reports whether the assignment still needs work.
func (s AssignmentStatus) IsPending() bool {
	return s == StatusPending
}

// Assignment is a single piece of coursework with a calendar-date deadline.
type Assignment struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	DueDate     time.Time        `json:"due_date"`
	Status      AssignmentStatus `json:"status"`
}

// Validate checks the assignment invariants.
func (a Assignment) Validate() error {
	if a.Title == "" || a.Status == "" {
		return shared.ErrInvalidAssignment
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// EXAMS
// ══════════════════════════════════════════════════════════════════════════════

// ExamRecord is a single exam. MarksObtained is nil for an exam that has not
// been taken yet; such exams count as upcoming.
type ExamRecord struct {
	ID            int      `json:"id"`
	CourseID      int      `json:"course_id"`
	ExamType      string   `json:"exam_type"`
	MarksObtained *float64 `json:"marks_obtained"`
}

// IsUpcoming reports whether the exam has no marks yet.
func (e ExamRecord) IsUpcoming() bool {
	return e.MarksObtained == nil
}

// ══════════════════════════════════════════════════════════════════════════════
// BACKLOGS
// ══════════════════════════════════════════════════════════════════════════════

// Backlog is an unresolved failed course. The dashboard only cares about the
// count; the record itself is kept opaque for rendering detail rows.
type Backlog struct {
	ID      int    `json:"id"`
	Subject string `json:"subject,omitempty"`
	Status  string `json:"status,omitempty"`
}
