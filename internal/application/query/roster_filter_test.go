package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/risk"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
)

func demoRoster() []risk.StudentSummaryCard {
	return []risk.StudentSummaryCard{
		{ID: 1, Name: "Aarav Patel", RollNumber: "2024001", RiskScore: 78, RiskLevel: risk.RiskLow},
		{ID: 5, Name: "Vihaan Gupta", RollNumber: "2024005", RiskScore: 45, RiskLevel: risk.RiskHigh},
		{ID: 3, Name: "Arjun Singh", RollNumber: "2024003", RiskScore: 65, RiskLevel: risk.RiskMedium},
	}
}

func TestFilterRoster_AllShowsEverything(t *testing.T) {
	res := FilterRoster(FilterRosterQuery{Cards: demoRoster(), Filter: view.FilterAll})
	assert.Equal(t, 3, res.VisibleCount)
	for _, c := range res.Cards {
		assert.True(t, c.Visible)
	}
}

func TestFilterRoster_HighShowsExactlyOne(t *testing.T) {
	res := FilterRoster(FilterRosterQuery{Cards: demoRoster(), Filter: view.FilterHigh})
	require.Len(t, res.Cards, 3)
	assert.Equal(t, 1, res.VisibleCount)
	assert.False(t, res.Cards[0].Visible)
	assert.True(t, res.Cards[1].Visible)
	assert.False(t, res.Cards[2].Visible)
}

func TestFilterRoster_MediumHidesOthers(t *testing.T) {
	res := FilterRoster(FilterRosterQuery{Cards: demoRoster(), Filter: view.FilterMedium})
	assert.Equal(t, 1, res.VisibleCount)
	assert.True(t, res.Cards[2].Visible)
	assert.Equal(t, "Arjun Singh", res.Cards[2].Card.Name)
}

func TestFilterRoster_PreservesOrder(t *testing.T) {
	res := FilterRoster(FilterRosterQuery{Cards: demoRoster(), Filter: view.FilterLow})
	ids := []int{res.Cards[0].Card.ID, res.Cards[1].Card.ID, res.Cards[2].Card.ID}
	assert.Equal(t, []int{1, 5, 3}, ids)
}

func TestFilterRoster_EmptyRoster(t *testing.T) {
	res := FilterRoster(FilterRosterQuery{Filter: view.FilterAll})
	assert.Empty(t, res.Cards)
	assert.Zero(t, res.VisibleCount)
}
