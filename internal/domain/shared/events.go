package shared

import (
	"strconv"
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Events are diagnostic signals published on the
// in-process bus; consumers (loggers, counters) must never mutate state
// the UI depends on.
const (
	// Session events
	EventSessionOpened  EventType = "session.opened"
	EventSessionClosed  EventType = "session.closed"
	EventThemeChanged   EventType = "session.theme_changed"
	EventSessionRestore EventType = "session.restored"

	// Gateway events
	EventDashboardLoaded EventType = "gateway.dashboard_loaded"
	EventRosterLoaded    EventType = "gateway.roster_loaded"
	EventFallbackEngaged EventType = "gateway.fallback_engaged"

	// View events
	EventViewChanged  EventType = "view.changed"
	EventStaleFetch   EventType = "view.stale_fetch_discarded"
	EventFilterChange EventType = "view.filter_changed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
}

// EventHandler processes a published event.
type EventHandler interface {
	Handle(event Event) error
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(event Event) error

// Handle implements EventHandler.
func (f EventHandlerFunc) Handle(event Event) error {
	return f(event)
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
	EventID     string    `json:"event_id,omitempty"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
	}
}

// WithEventID sets a unique event ID for tracing.
func (e BaseEvent) WithEventID(id string) BaseEvent {
	e.EventID = id
	return e
}

// ═══════════════════════════════════════════════════════════════════════════
// Session Events
// ═══════════════════════════════════════════════════════════════════════════

// SessionOpenedEvent is emitted when a user logs in or a session is restored.
type SessionOpenedEvent struct {
	BaseEvent
	UserID   int    `json:"user_id"`
	Role     string `json:"role"`
	Restored bool   `json:"restored"`
}

// SessionClosedEvent is emitted on logout.
type SessionClosedEvent struct {
	BaseEvent
	UserID int `json:"user_id"`
}

// ThemeChangedEvent is emitted when the theme preference flips.
type ThemeChangedEvent struct {
	BaseEvent
	Theme string `json:"theme"`
}

// ═══════════════════════════════════════════════════════════════════════════
// Gateway Events
// ═══════════════════════════════════════════════════════════════════════════

// FallbackEngagedEvent is emitted when a fetch failure is recovered with
// demo data. It is a diagnostic signal, not an error.
type FallbackEngagedEvent struct {
	BaseEvent
	Operation string `json:"operation"` // "student_dashboard" or "mentor_roster"
	Reason    string `json:"reason"`
}

// DashboardLoadedEvent is emitted after a dashboard payload is applied.
type DashboardLoadedEvent struct {
	BaseEvent
	UserID    int     `json:"user_id"`
	RiskScore float64 `json:"risk_score"`
	FromDemo  bool    `json:"from_demo"`
}

// RosterLoadedEvent is emitted after a mentor roster is applied.
type RosterLoadedEvent struct {
	BaseEvent
	MentorID     int  `json:"mentor_id"`
	StudentCount int  `json:"student_count"`
	FromDemo     bool `json:"from_demo"`
}

// ═══════════════════════════════════════════════════════════════════════════
// View Events
// ═══════════════════════════════════════════════════════════════════════════

// ViewChangedEvent is emitted on tab navigation.
type ViewChangedEvent struct {
	BaseEvent
	Tab string `json:"tab"`
}

// StaleFetchDiscardedEvent is emitted when the staleness guard drops a
// response whose request token no longer matches the active view.
type StaleFetchDiscardedEvent struct {
	BaseEvent
	Token string `json:"token"`
}

// FilterChangedEvent is emitted when the mentor risk filter changes.
type FilterChangedEvent struct {
	BaseEvent
	Filter string `json:"filter"`
}

// ═══════════════════════════════════════════════════════════════════════════
// Event Constructors
// ═══════════════════════════════════════════════════════════════════════════

// NewSessionOpenedEvent creates a SessionOpenedEvent.
func NewSessionOpenedEvent(userID int, role string, restored bool) SessionOpenedEvent {
	eventType := EventSessionOpened
	if restored {
		eventType = EventSessionRestore
	}
	return SessionOpenedEvent{
		BaseEvent: NewBaseEvent(eventType, strconv.Itoa(userID)),
		UserID:    userID,
		Role:      role,
		Restored:  restored,
	}
}

// NewSessionClosedEvent creates a SessionClosedEvent.
func NewSessionClosedEvent(userID int) SessionClosedEvent {
	return SessionClosedEvent{
		BaseEvent: NewBaseEvent(EventSessionClosed, strconv.Itoa(userID)),
		UserID:    userID,
	}
}

// NewThemeChangedEvent creates a ThemeChangedEvent.
func NewThemeChangedEvent(theme string) ThemeChangedEvent {
	return ThemeChangedEvent{
		BaseEvent: NewBaseEvent(EventThemeChanged, "session"),
		Theme:     theme,
	}
}

// NewFallbackEngagedEvent creates a FallbackEngagedEvent.
func NewFallbackEngagedEvent(operation, reason string) FallbackEngagedEvent {
	return FallbackEngagedEvent{
		BaseEvent: NewBaseEvent(EventFallbackEngaged, operation),
		Operation: operation,
		Reason:    reason,
	}
}

// NewDashboardLoadedEvent creates a DashboardLoadedEvent.
func NewDashboardLoadedEvent(userID int, riskScore float64, fromDemo bool) DashboardLoadedEvent {
	return DashboardLoadedEvent{
		BaseEvent: NewBaseEvent(EventDashboardLoaded, strconv.Itoa(userID)),
		UserID:    userID,
		RiskScore: riskScore,
		FromDemo:  fromDemo,
	}
}

// NewRosterLoadedEvent creates a RosterLoadedEvent.
func NewRosterLoadedEvent(mentorID, studentCount int, fromDemo bool) RosterLoadedEvent {
	return RosterLoadedEvent{
		BaseEvent:    NewBaseEvent(EventRosterLoaded, strconv.Itoa(mentorID)),
		MentorID:     mentorID,
		StudentCount: studentCount,
		FromDemo:     fromDemo,
	}
}

// NewViewChangedEvent creates a ViewChangedEvent.
func NewViewChangedEvent(tab string) ViewChangedEvent {
	return ViewChangedEvent{
		BaseEvent: NewBaseEvent(EventViewChanged, "view"),
		Tab:       tab,
	}
}

// NewFilterChangedEvent creates a FilterChangedEvent.
func NewFilterChangedEvent(filter string) FilterChangedEvent {
	return FilterChangedEvent{
		BaseEvent: NewBaseEvent(EventFilterChange, "view"),
		Filter:    filter,
	}
}

// NewStaleFetchDiscardedEvent creates a StaleFetchDiscardedEvent.
func NewStaleFetchDiscardedEvent(token string) StaleFetchDiscardedEvent {
	return StaleFetchDiscardedEvent{
		BaseEvent: NewBaseEvent(EventStaleFetch, "view"),
		Token:     token,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Publishing
// ═══════════════════════════════════════════════════════════════════════════

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler)
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
