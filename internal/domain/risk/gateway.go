package risk

import (
	"context"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
)

// Gateway is the port to the remote data service. Implementations own the
// fallback policy for the two primary reads; Login and StudentDetails never
// substitute fallback data.
type Gateway interface {
	// Login exchanges credentials for a token and identity. Bad credentials
	// surface as shared.ErrUnauthorized kinds; transport failures as
	// shared.ErrExternalService kinds. No fallback on this path.
	Login(ctx context.Context, creds session.Credentials) (*session.AuthGrant, error)

	// StudentDashboard fetches the full snapshot for a student.
	StudentDashboard(ctx context.Context, studentID int) (*DashboardPayload, error)

	// MentorRoster fetches the summary cards for a mentor's students.
	MentorRoster(ctx context.Context, mentorID int) ([]StudentSummaryCard, error)

	// StudentDetails fetches the secondary detail read for one student.
	StudentDetails(ctx context.Context, studentID int) (*StudentDetails, error)
}
