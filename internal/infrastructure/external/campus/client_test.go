package campus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(DefaultClientConfig(srv.URL)), srv
}

func TestClient_LoginSuccess(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req LoginRequestDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "aarav@student.edu", req.Email)

		json.NewEncoder(w).Encode(LoginResponseDTO{
			Token: "jwt-token",
			User:  UserDTO{ID: 1, Name: "Aarav Patel", Email: req.Email, Role: "student"},
		})
	}))

	grant, err := client.Login(context.Background(), session.Credentials{
		Email:    "aarav@student.edu",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", grant.Token)
	assert.Equal(t, 1, grant.User.ID)
	assert.Equal(t, session.RoleStudent, grant.User.Role)
}

func TestClient_LoginRejectedKeepsServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponseDTO{Message: "Invalid credentials"})
	}))

	_, err := client.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
	assert.NotErrorIs(t, err, shared.ErrExternalService)

	var de *shared.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "Invalid credentials", de.Message)
}

func TestClient_LoginTransportFailureIsExternalServiceError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	client := NewClient(DefaultClientConfig(srv.URL))
	_, err := client.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrExternalService)
	assert.NotErrorIs(t, err, shared.ErrUnauthorized)
}

func TestClient_StudentDashboardMapsPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/student/dashboard/1", r.URL.Path)
		json.NewEncoder(w).Encode(DashboardResponseDTO{
			Student:    StudentDTO{ID: 1, Name: "Aarav Patel", Email: "a@b.c", RollNumber: "2024001"},
			Attendance: AttendanceDTO{Percentage: 85.5, TotalClasses: 140, Attended: 119},
			Assignments: []AssignmentDTO{
				{ID: 2, Title: "PCE Lab Report", DueDate: "2026-09-02", Status: "pending"},
			},
			Exams:    []ExamDTO{{ID: 1, CourseID: 1, ExamType: "end-term"}},
			Backlogs: []BacklogDTO{},
			Risk: RiskDTO{
				RiskScore: 78.5,
				RiskLevel: "low",
				Factors:   FactorsDTO{Attendance: 85.5, Assignments: 80, Exams: 75},
			},
			Alerts: []AlertDTO{{Type: "info", Message: "due soon"}},
		})
	}))

	payload, err := client.StudentDashboard(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Aarav Patel", payload.Student.Name)
	assert.Equal(t, 78.5, payload.Risk.Score)
	require.Len(t, payload.Assignments, 1)
	assert.Equal(t, 2026, payload.Assignments[0].DueDate.Year())
	assert.True(t, payload.Assignments[0].Status.IsPending())
	require.Len(t, payload.Exams, 1)
	assert.True(t, payload.Exams[0].IsUpcoming())
}

func TestClient_DashboardRejectsUnknownRiskLevel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(DashboardResponseDTO{
			Student: StudentDTO{ID: 1, Name: "X"},
			Risk:    RiskDTO{RiskScore: 50, RiskLevel: "critical"},
		})
	}))

	_, err := client.StudentDashboard(context.Background(), 1)

	assert.ErrorIs(t, err, shared.ErrInvalidRiskLevel)
}

func TestClient_MentorRoster(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/mentor/students/2", r.URL.Path)
		json.NewEncoder(w).Encode(RosterResponseDTO{Students: []RosterStudentDTO{
			{ID: 1, Name: "Aarav Patel", RollNumber: "2024001", RiskScore: 78, RiskLevel: "low"},
			{ID: 5, Name: "Vihaan Gupta", RollNumber: "2024005", RiskScore: 45, RiskLevel: "high"},
		}})
	}))

	cards, err := client.MentorRoster(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Vihaan Gupta", cards[1].Name)
	assert.Equal(t, 45.0, cards[1].RiskScore)
}

func TestClient_StudentDetailsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponseDTO{Message: "Student not found"})
	}))

	_, err := client.StudentDetails(context.Background(), 99)

	assert.ErrorIs(t, err, shared.ErrDetailNotFound)
}

func TestClient_Health(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		json.NewEncoder(w).Encode(HealthResponseDTO{Status: "healthy", Timestamp: "2026-08-30T12:00:00"})
	}))

	healthy, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.True(t, healthy)
}
