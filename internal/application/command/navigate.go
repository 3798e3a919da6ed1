package command

import (
	"context"

	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
)

// ══════════════════════════════════════════════════════════════════════════════
// NAVIGATION COMMANDS
// Tab selection and the mentor risk filter. Both are pure view-state
// transitions: switching tabs never refetches data, and the filter only
// hides cards that are already loaded.
// ══════════════════════════════════════════════════════════════════════════════

// NavigateHandlerConfig gates optional navigation surfaces.
type NavigateHandlerConfig struct {
	// NotificationsEnabled exposes the notifications tab.
	NotificationsEnabled bool

	// RiskFilterEnabled exposes the mentor roster risk filter.
	RiskFilterEnabled bool
}

// DefaultNavigateHandlerConfig returns the default configuration with all
// surfaces enabled.
func DefaultNavigateHandlerConfig() NavigateHandlerConfig {
	return NavigateHandlerConfig{
		NotificationsEnabled: true,
		RiskFilterEnabled:    true,
	}
}

// SelectTabCommand switches the active dashboard tab.
type SelectTabCommand struct {
	Tab string
}

// SelectTabResult reports the tab after the transition.
type SelectTabResult struct {
	Tab view.Tab
}

// SetRiskFilterCommand changes the mentor roster risk filter.
type SetRiskFilterCommand struct {
	Filter string
}

// SetRiskFilterResult reports the filter after the transition.
type SetRiskFilterResult struct {
	Filter view.RiskFilter
}

// NavigateHandler handles tab and filter transitions against the view
// state machine.
type NavigateHandler struct {
	state     *view.State
	publisher shared.EventPublisher
	config    NavigateHandlerConfig
}

// NewNavigateHandler creates a new NavigateHandler.
func NewNavigateHandler(state *view.State, publisher shared.EventPublisher, config NavigateHandlerConfig) *NavigateHandler {
	return &NavigateHandler{
		state:     state,
		publisher: publisher,
		config:    config,
	}
}

// HandleSelectTab executes a tab switch.
func (h *NavigateHandler) HandleSelectTab(_ context.Context, cmd SelectTabCommand) (*SelectTabResult, error) {
	tab, err := view.ParseTab(cmd.Tab)
	if err != nil {
		return nil, err
	}
	if tab == view.TabNotifications && !h.config.NotificationsEnabled {
		return nil, shared.ErrInvalidTab
	}

	if err := h.state.SelectTab(tab); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewViewChangedEvent(string(tab)))
	}

	return &SelectTabResult{Tab: tab}, nil
}

// HandleSetRiskFilter executes a filter change. Only mentors have a filter.
func (h *NavigateHandler) HandleSetRiskFilter(_ context.Context, cmd SetRiskFilterCommand) (*SetRiskFilterResult, error) {
	if !h.config.RiskFilterEnabled {
		return nil, shared.ErrFilterForbidden
	}

	filter, err := view.ParseRiskFilter(cmd.Filter)
	if err != nil {
		return nil, err
	}

	if err := h.state.SetRiskFilter(filter); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewFilterChangedEvent(string(filter)))
	}

	return &SetRiskFilterResult{Filter: filter}, nil
}
