package campus

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

type recordingBus struct {
	events []shared.Event
}

func (b *recordingBus) Publish(e shared.Event) error {
	b.events = append(b.events, e)
	return nil
}

// failingHandler answers every request with 404 so fetches fail fast
// without exhausting retries.
var failingHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(ErrorResponseDTO{Message: "Student not found"})
})

func TestGateway_DashboardFallsBackToDemoData(t *testing.T) {
	client, _ := newTestClient(t, failingHandler)
	bus := &recordingBus{}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	gw := NewGateway(client, PolicyDemoFallback, nil, bus).WithClock(func() time.Time { return now })

	fetch, err := gw.StudentDashboardTagged(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, SourceDemo, fetch.Source)
	assert.Equal(t, 78.5, fetch.Payload.Risk.Score)
	assert.Equal(t, "Aarav Patel", fetch.Payload.Student.Name)
	require.Len(t, fetch.Payload.Assignments, 2)
	// Demo deadlines are relative to the injected clock.
	assert.Equal(t, now.AddDate(0, 0, 3).Day(), fetch.Payload.Assignments[1].DueDate.Day())

	require.Len(t, bus.events, 1)
	assert.Equal(t, shared.EventFallbackEngaged, bus.events[0].EventType())
}

func TestGateway_FailClosedPropagatesError(t *testing.T) {
	client, _ := newTestClient(t, failingHandler)
	bus := &recordingBus{}
	gw := NewGateway(client, PolicyFailClosed, nil, bus)

	_, err := gw.StudentDashboard(context.Background(), 1)

	require.Error(t, err)
	assert.Empty(t, bus.events)
}

func TestGateway_RosterFallsBackToDemoRoster(t *testing.T) {
	client, _ := newTestClient(t, failingHandler)
	gw := NewGateway(client, PolicyDemoFallback, nil, nil)

	fetch, err := gw.MentorRosterTagged(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, SourceDemo, fetch.Source)
	require.Len(t, fetch.Cards, 3)
	assert.Equal(t, "Vihaan Gupta", fetch.Cards[1].Name)
	assert.Equal(t, 45.0, fetch.Cards[1].RiskScore)
}

func TestGateway_LoginNeverFallsBack(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponseDTO{Message: "Invalid credentials"})
	}))
	gw := NewGateway(client, PolicyDemoFallback, nil, nil)

	_, err := gw.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "bad"})

	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestGateway_DetailsNeverFallBack(t *testing.T) {
	client, _ := newTestClient(t, failingHandler)
	gw := NewGateway(client, PolicyDemoFallback, nil, nil)

	_, err := gw.StudentDetails(context.Background(), 99)

	assert.ErrorIs(t, err, shared.ErrDetailNotFound)
}

func TestParseFallbackPolicy(t *testing.T) {
	assert.Equal(t, PolicyFailClosed, ParseFallbackPolicy("fail-closed"))
	assert.Equal(t, PolicyDemoFallback, ParseFallbackPolicy("demo-fallback"))
	assert.Equal(t, PolicyDemoFallback, ParseFallbackPolicy("bogus"))
}
