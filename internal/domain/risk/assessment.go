package risk

import (
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RISK ASSESSMENT
// The score and level arrive precomputed from the data service. The client
// never recomputes them from factors - it only formats and threshold-displays
// what the payload supplies.
// ══════════════════════════════════════════════════════════════════════════════

// RiskLevel is the three-tier classification accompanying the score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid checks that the level is one of the closed set.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the level.
func (l RiskLevel) String() string {
	return string(l)
}

// Label returns the capitalized display label, e.g. "Low Risk".
func (l RiskLevel) Label() string {
	s := string(l)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:] + " Risk"
}

// ParseRiskLevel parses a wire value into a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	l := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", shared.ErrInvalidRiskLevel
	}
	return l, nil
}

// RiskFactors are the percentages and counts feeding the score, not the
// score itself.
type RiskFactors struct {
	Attendance  float64 `json:"attendance"`
	Assignments float64 `json:"assignments"`
	Exams       float64 `json:"exams"`
	Backlogs    int     `json:"backlogs"`
}

// RiskAssessment is the precomputed score, level, and contributing factors.
// Derived upstream, never persisted by the client, recomputed every fetch.
type RiskAssessment struct {
	Score   float64     `json:"risk_score"`
	Level   RiskLevel   `json:"risk_level"`
	Factors RiskFactors `json:"factors"`
}

// Validate fails closed: a payload whose risk block is absent or malformed
// must not render undefined values.
func (r RiskAssessment) Validate() error {
	if !r.Level.IsValid() {
		return shared.ErrInvalidRiskLevel
	}
	if r.Score < 0 {
		return shared.ErrPayloadIncomplete
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ALERTS
// ══════════════════════════════════════════════════════════════════════════════

// AlertType classifies an alert for visual styling only.
type AlertType string

const (
	AlertInfo    AlertType = "info"
	AlertWarning AlertType = "warning"
	AlertDanger  AlertType = "danger"
)

// Alert is a message rendered verbatim in payload order: no dedup, no
// prioritization, no truncation.
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`
}

// ══════════════════════════════════════════════════════════════════════════════
// PAYLOADS
// ══════════════════════════════════════════════════════════════════════════════

// StudentProfile identifies the student a payload belongs to.
type StudentProfile struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
}

// DashboardPayload is the full student snapshot returned by the data service
// (or the demo fallback). Replaced atomically on every fetch - no partial merge.
type DashboardPayload struct {
	Student     StudentProfile   `json:"student"`
	Attendance  AttendanceRecord `json:"attendance"`
	Assignments []Assignment     `json:"assignments"`
	Exams       []ExamRecord     `json:"exams"`
	Backlogs    []Backlog        `json:"backlogs"`
	Risk        RiskAssessment   `json:"risk"`
	Alerts      []Alert          `json:"alerts"`
}

// Validate checks the blocks the renderer depends on. Missing risk or
// inconsistent attendance blocks the render rather than degrading.
func (p *DashboardPayload) Validate() error {
	if p == nil {
		return shared.ErrPayloadIncomplete
	}
	if p.Student.ID <= 0 {
		return shared.ErrPayloadIncomplete
	}
	if err := p.Risk.Validate(); err != nil {
		return shared.WrapError("risk", "Validate", shared.ErrInvalidEntity,
			"risk block rejected", err)
	}
	if err := p.Attendance.Validate(); err != nil {
		return err
	}
	return nil
}

// StudentSummaryCard is one roster entry on the mentor dashboard.
type StudentSummaryCard struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	RollNumber string      `json:"roll_number"`
	RiskScore  float64     `json:"risk_score"`
	RiskLevel  RiskLevel   `json:"risk_level"`
	Factors    RiskFactors `json:"factors"`
}

// StudentDetails is the secondary read behind a roster card. Failures here
// are reported, never substituted with fallback data.
type StudentDetails struct {
	Student    StudentProfile   `json:"student"`
	Risk       RiskAssessment   `json:"risk"`
	Attendance AttendanceRecord `json:"attendance"`
}
