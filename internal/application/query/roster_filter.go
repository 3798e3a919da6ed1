package query

import (
	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER FILTER QUERY
// Applies the mentor risk filter to an already-fetched roster. Filtering only
// toggles visibility on the rendered cards; it never refetches or
// re-aggregates.
// ══════════════════════════════════════════════════════════════════════════════

// FilterRosterQuery contains the inputs for roster filtering.
type FilterRosterQuery struct {
	// Cards is the roster in payload order.
	Cards []risk.StudentSummaryCard

	// Filter is the active risk filter.
	Filter view.RiskFilter
}

// RosterCardView pairs a card with its visibility under the active filter.
type RosterCardView struct {
	Card    risk.StudentSummaryCard
	Visible bool
}

// FilterRosterResult preserves payload order; hidden cards stay in place so
// a filter change back to "all" restores the original layout.
type FilterRosterResult struct {
	Cards        []RosterCardView
	VisibleCount int
}

// FilterRoster marks each card visible or hidden under the filter.
func FilterRoster(q FilterRosterQuery) FilterRosterResult {
	res := FilterRosterResult{
		Cards: make([]RosterCardView, 0, len(q.Cards)),
	}
	for _, c := range q.Cards {
		visible := q.Filter == view.FilterAll || string(c.RiskLevel) == string(q.Filter)
		if visible {
			res.VisibleCount++
		}
		res.Cards = append(res.Cards, RosterCardView{Card: c, Visible: visible})
	}
	return res
}
