package term

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/config"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/external/campus"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/messaging"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/persistence/memory"
)

type testHarness struct {
	app   *App
	bus   *messaging.EventBus
	store *memory.SessionStore
	in    *io.PipeWriter
	out   *bytes.Buffer
}

func newTestApp(t *testing.T, handler http.Handler) *testHarness {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	bus := messaging.NewEventBus(nil)
	store := memory.NewSessionStore()
	client := campus.NewClient(campus.DefaultClientConfig(srv.URL))
	gateway := campus.NewGateway(client, campus.PolicyDemoFallback, nil, bus)

	inR, inW := io.Pipe()
	t.Cleanup(func() { inW.Close() })
	out := &bytes.Buffer{}

	app := NewApp(Deps{
		In:           inR,
		Out:          out,
		Session:      session.New(session.ThemeLight),
		State:        view.NewState(),
		Store:        store,
		Gateway:      gateway,
		Bus:          bus,
		Flags:        config.LoadFeatureFlags(),
		FetchTimeout: 5 * time.Second,
	})

	return &testHarness{app: app, bus: bus, store: store, in: inW, out: out}
}

// notFoundHandler rejects every fetch, so the gateway serves demo data.
var notFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(campus.ErrorResponseDTO{Message: "not found"})
})

func loginHandler(t *testing.T, user campus.UserDTO) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/login" {
			json.NewEncoder(w).Encode(campus.LoginResponseDTO{Token: "jwt-token", User: user})
			return
		}
		notFoundHandler.ServeHTTP(w, r)
	})
}

func aaravDTO() campus.UserDTO {
	return campus.UserDTO{ID: 1, Name: "Aarav Patel", Email: "aarav@student.edu", Role: "student"}
}

// ─── Fetch application ────────────────────────────────────────────────────────

func demoFetch() *campus.DashboardFetch {
	return &campus.DashboardFetch{
		Payload: campus.DemoStudentDashboard(time.Now()),
		Source:  campus.SourceDemo,
	}
}

func TestApp_StaleFetchDiscarded(t *testing.T) {
	h := newTestApp(t, notFoundHandler)
	app := h.app

	var staleTokens []string
	h.bus.Subscribe(shared.EventStaleFetch, shared.EventHandlerFunc(func(e shared.Event) error {
		staleTokens = append(staleTokens, e.(shared.StaleFetchDiscardedEvent).Token)
		return nil
	}))

	require.NoError(t, app.session.Open(session.Identity{
		ID: 1, Name: "Aarav Patel", Email: "aarav@student.edu", Role: session.RoleStudent,
	}))
	require.NoError(t, app.state.OpenDashboard(session.RoleStudent))
	app.activeToken = uuid.New()

	staleToken := uuid.New()
	app.applyFetch(fetchResult{token: staleToken, dashboard: demoFetch()})

	assert.Nil(t, app.dashboard, "stale result must not touch render state")
	require.Len(t, staleTokens, 1)
	assert.Equal(t, staleToken.String(), staleTokens[0])

	app.applyFetch(fetchResult{token: app.activeToken, dashboard: demoFetch()})

	require.NotNil(t, app.dashboard)
	assert.InDelta(t, 78.5, app.dashboard.Payload.Risk.Score, 0.001)
	assert.Len(t, staleTokens, 1)
}

func TestApp_StaleGuardDisabledAppliesAnyResult(t *testing.T) {
	h := newTestApp(t, notFoundHandler)
	app := h.app
	require.NoError(t, app.flags.DisableFeature(config.FeatureStalenessGuard))

	require.NoError(t, app.session.Open(session.Identity{
		ID: 1, Name: "Aarav Patel", Email: "aarav@student.edu", Role: session.RoleStudent,
	}))
	require.NoError(t, app.state.OpenDashboard(session.RoleStudent))
	app.activeToken = uuid.New()

	app.applyFetch(fetchResult{token: uuid.New(), dashboard: demoFetch()})

	assert.NotNil(t, app.dashboard)
}

func TestApp_FetchErrorKeepsPreviousSnapshot(t *testing.T) {
	h := newTestApp(t, notFoundHandler)
	app := h.app

	require.NoError(t, app.session.Open(session.Identity{
		ID: 1, Name: "Aarav Patel", Email: "aarav@student.edu", Role: session.RoleStudent,
	}))
	require.NoError(t, app.state.OpenDashboard(session.RoleStudent))
	app.activeToken = uuid.New()

	app.applyFetch(fetchResult{token: app.activeToken, dashboard: demoFetch()})
	require.NotNil(t, app.dashboard)

	app.applyFetch(fetchResult{token: app.activeToken, err: shared.ErrConnection})

	assert.NotNil(t, app.dashboard, "failed refresh must not wipe the last snapshot")
}

// ─── Event loop ───────────────────────────────────────────────────────────────

func TestApp_RunLoginLogoutFlow(t *testing.T) {
	h := newTestApp(t, loginHandler(t, aaravDTO()))

	loaded := make(chan struct{}, 4)
	h.bus.Subscribe(shared.EventDashboardLoaded, shared.EventHandlerFunc(func(shared.Event) error {
		loaded <- struct{}{}
		return nil
	}))

	done := make(chan error, 1)
	go func() { done <- h.app.Run(context.Background()) }()

	writeLine(t, h.in, "login aarav@student.edu secret")
	waitFor(t, loaded, "dashboard load")
	writeLine(t, h.in, "tab assignments")
	writeLine(t, h.in, "theme")
	writeLine(t, h.in, "logout")
	writeLine(t, h.in, "quit")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app loop did not exit")
	}

	output := h.out.String()
	assert.Contains(t, output, "Campus Connect")
	assert.Contains(t, output, "Aarav Patel")
	assert.Contains(t, output, "85.5%", "demo fallback dashboard should render")
	assert.Contains(t, output, "PCE Lab Report")

	// Logout cleared the session but kept the theme preference.
	ctx := context.Background()
	_, err := h.store.Get(ctx, session.KeyToken)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	theme, err := h.store.Get(ctx, session.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestApp_RunRestoresPersistedSession(t *testing.T) {
	h := newTestApp(t, loginHandler(t, aaravDTO()))

	ctx := context.Background()
	identity, err := json.Marshal(session.Identity{
		ID: 1, Name: "Aarav Patel", Email: "aarav@student.edu", Role: session.RoleStudent,
	})
	require.NoError(t, err)
	require.NoError(t, h.store.Set(ctx, session.KeyToken, "jwt-token"))
	require.NoError(t, h.store.Set(ctx, session.KeyUser, string(identity)))

	restored := make(chan struct{}, 1)
	h.bus.Subscribe(shared.EventSessionRestore, shared.EventHandlerFunc(func(shared.Event) error {
		restored <- struct{}{}
		return nil
	}))
	loaded := make(chan struct{}, 1)
	h.bus.Subscribe(shared.EventDashboardLoaded, shared.EventHandlerFunc(func(shared.Event) error {
		loaded <- struct{}{}
		return nil
	}))

	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx) }()

	waitFor(t, restored, "session restore")
	waitFor(t, loaded, "dashboard load")
	writeLine(t, h.in, "quit")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app loop did not exit")
	}

	output := h.out.String()
	assert.Contains(t, output, "Aarav Patel")
	assert.NotContains(t, output, "login <email> <password>",
		"a restored session must not show the login screen")
}

func TestApp_RunUnknownCommand(t *testing.T) {
	h := newTestApp(t, notFoundHandler)

	done := make(chan error, 1)
	go func() { done <- h.app.Run(context.Background()) }()

	writeLine(t, h.in, "frobnicate")
	writeLine(t, h.in, "quit")

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app loop did not exit")
	}

	assert.Contains(t, h.out.String(), `Unknown command "frobnicate"`)
}

func writeLine(t *testing.T, w *io.PipeWriter, line string) {
	t.Helper()
	_, err := io.WriteString(w, line+"\n")
	require.NoError(t, err)
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}
