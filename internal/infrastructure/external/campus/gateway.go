package campus

import (
	"context"
	"time"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GATEWAY
// Wraps the raw client with the fallback policy. Dashboard and roster
// fetches may recover with demo data; login and detail reads never do —
// a fabricated identity or fabricated detail record would be a lie the
// user cannot detect.
// ══════════════════════════════════════════════════════════════════════════════

// FallbackPolicy decides what a failed fetch turns into.
type FallbackPolicy string

const (
	// PolicyDemoFallback substitutes the built-in demo dataset.
	PolicyDemoFallback FallbackPolicy = "demo-fallback"

	// PolicyFailClosed propagates the failure to the caller.
	PolicyFailClosed FallbackPolicy = "fail-closed"
)

// IsValid checks the policy value.
func (p FallbackPolicy) IsValid() bool {
	return p == PolicyDemoFallback || p == PolicyFailClosed
}

// ParseFallbackPolicy parses a config value, defaulting to demo-fallback.
func ParseFallbackPolicy(s string) FallbackPolicy {
	if p := FallbackPolicy(s); p.IsValid() {
		return p
	}
	return PolicyDemoFallback
}

// FetchSource reports where a payload came from.
type FetchSource string

const (
	SourceLive FetchSource = "live"
	SourceDemo FetchSource = "demo"
)

// DashboardFetch is a dashboard payload tagged with its source.
type DashboardFetch struct {
	Payload *risk.DashboardPayload
	Source  FetchSource
}

// RosterFetch is a roster tagged with its source.
type RosterFetch struct {
	Cards  []risk.StudentSummaryCard
	Source FetchSource
}

// Gateway implements risk.Gateway on top of the Campus API client, applying
// the fallback policy.
type Gateway struct {
	client    *Client
	policy    FallbackPolicy
	logger    *logger.Logger
	publisher shared.EventPublisher
	now       func() time.Time
}

// NewGateway creates a new Gateway.
func NewGateway(client *Client, policy FallbackPolicy, log *logger.Logger, publisher shared.EventPublisher) *Gateway {
	if !policy.IsValid() {
		policy = PolicyDemoFallback
	}
	if log == nil {
		log = logger.Default()
	}
	return &Gateway{
		client:    client,
		policy:    policy,
		logger:    log.With(logger.Component("campus_gateway"), logger.Policy(string(policy))),
		publisher: publisher,
		now:       time.Now,
	}
}

// WithClock overrides the clock used for demo deadline dates. Test hook.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

// Login authenticates. Never falls back: there is no such thing as a demo
// identity.
func (g *Gateway) Login(ctx context.Context, creds session.Credentials) (*session.AuthGrant, error) {
	return g.client.Login(ctx, creds)
}

// StudentDashboard fetches a dashboard snapshot, recovering with demo data
// under the demo-fallback policy.
func (g *Gateway) StudentDashboard(ctx context.Context, studentID int) (*risk.DashboardPayload, error) {
	fetch, err := g.StudentDashboardTagged(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return fetch.Payload, nil
}

// StudentDashboardTagged is StudentDashboard plus the source tag, for
// callers that surface the demo-data indicator.
func (g *Gateway) StudentDashboardTagged(ctx context.Context, studentID int) (*DashboardFetch, error) {
	payload, err := g.client.StudentDashboard(ctx, studentID)
	if err == nil {
		return &DashboardFetch{Payload: payload, Source: SourceLive}, nil
	}

	if g.policy != PolicyDemoFallback {
		return nil, err
	}

	g.engageFallback("student_dashboard", err)
	return &DashboardFetch{Payload: DemoStudentDashboard(g.now()), Source: SourceDemo}, nil
}

// MentorRoster fetches the mentor's student cards, recovering with the demo
// roster under the demo-fallback policy.
func (g *Gateway) MentorRoster(ctx context.Context, mentorID int) ([]risk.StudentSummaryCard, error) {
	fetch, err := g.MentorRosterTagged(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	return fetch.Cards, nil
}

// MentorRosterTagged is MentorRoster plus the source tag.
func (g *Gateway) MentorRosterTagged(ctx context.Context, mentorID int) (*RosterFetch, error) {
	cards, err := g.client.MentorRoster(ctx, mentorID)
	if err == nil {
		return &RosterFetch{Cards: cards, Source: SourceLive}, nil
	}

	if g.policy != PolicyDemoFallback {
		return nil, err
	}

	g.engageFallback("mentor_roster", err)
	return &RosterFetch{Cards: DemoMentorRoster(), Source: SourceDemo}, nil
}

// StudentDetails fetches the detail read behind a roster card. Never falls
// back: a detail failure is reported to the mentor as a failure.
func (g *Gateway) StudentDetails(ctx context.Context, studentID int) (*risk.StudentDetails, error) {
	return g.client.StudentDetails(ctx, studentID)
}

// Health probes the API.
func (g *Gateway) Health(ctx context.Context) (bool, error) {
	return g.client.Health(ctx)
}

// Policy returns the active fallback policy.
func (g *Gateway) Policy() FallbackPolicy {
	return g.policy
}

func (g *Gateway) engageFallback(operation string, cause error) {
	g.logger.Warn("fetch failed, engaging demo fallback",
		logger.Operation(operation),
		logger.Err(cause),
	)
	if g.publisher != nil {
		_ = g.publisher.Publish(shared.NewFallbackEngagedEvent(operation, cause.Error()))
	}
}
