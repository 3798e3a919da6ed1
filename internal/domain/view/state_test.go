package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
)

func TestState_InitialScreenIsLogin(t *testing.T) {
	s := NewState()
	assert.Equal(t, ScreenLogin, s.Screen())
	assert.Equal(t, VariantNone, s.DashboardVariant())
}

func TestState_OpenDashboard(t *testing.T) {
	s := NewState()
	require.NoError(t, s.OpenDashboard(session.RoleStudent))

	assert.Equal(t, ScreenDashboard, s.Screen())
	assert.Equal(t, TabDashboard, s.ActiveTab())
	assert.Equal(t, session.RoleStudent, s.Role())
	assert.Equal(t, VariantStudent, s.DashboardVariant())

	assert.Error(t, NewState().OpenDashboard(session.Role("admin")))
}

func TestState_TabNavigationKeepsRole(t *testing.T) {
	s := NewState()
	require.NoError(t, s.OpenDashboard(session.RoleMentor))

	for _, tab := range []Tab{TabAttendance, TabAssignments, TabExams, TabNotifications, TabDashboard} {
		require.NoError(t, s.SelectTab(tab))
		assert.Equal(t, tab, s.ActiveTab())
		assert.Equal(t, session.RoleMentor, s.Role())
	}
	assert.Equal(t, VariantMentor, s.DashboardVariant())
}

func TestState_SelectTabOnLoginScreenFails(t *testing.T) {
	s := NewState()
	err := s.SelectTab(TabExams)
	assert.ErrorIs(t, err, shared.ErrStateTransition)
}

func TestState_VariantOnlyOnDashboardTab(t *testing.T) {
	s := NewState()
	require.NoError(t, s.OpenDashboard(session.RoleStudent))
	require.NoError(t, s.SelectTab(TabExams))
	assert.Equal(t, VariantNone, s.DashboardVariant())

	require.NoError(t, s.SelectTab(TabDashboard))
	assert.Equal(t, VariantStudent, s.DashboardVariant())
}

func TestState_CloseSessionFromAnyTab(t *testing.T) {
	s := NewState()
	require.NoError(t, s.OpenDashboard(session.RoleStudent))
	require.NoError(t, s.SelectTab(TabNotifications))

	s.CloseSession()
	assert.Equal(t, ScreenLogin, s.Screen())

	// Idempotent from the login screen too.
	s.CloseSession()
	assert.Equal(t, ScreenLogin, s.Screen())
}

func TestState_RiskFilterIsMentorOnly(t *testing.T) {
	s := NewState()
	require.NoError(t, s.OpenDashboard(session.RoleStudent))
	assert.ErrorIs(t, s.SetRiskFilter(FilterHigh), shared.ErrStateTransition)

	m := NewState()
	require.NoError(t, m.OpenDashboard(session.RoleMentor))
	require.NoError(t, m.SetRiskFilter(FilterHigh))
	assert.Equal(t, FilterHigh, m.Filter())

	assert.ErrorIs(t, m.SetRiskFilter(RiskFilter("critical")), shared.ErrInvalidInput)
}

func TestState_FilterResetsOnReentry(t *testing.T) {
	s := NewState()
	require.NoError(t, s.OpenDashboard(session.RoleMentor))
	require.NoError(t, s.SetRiskFilter(FilterMedium))

	s.CloseSession()
	require.NoError(t, s.OpenDashboard(session.RoleMentor))
	assert.Equal(t, FilterAll, s.Filter())
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" Exams ")
	assert.NoError(t, err)
	assert.Equal(t, TabExams, tab)
	assert.Equal(t, "Exams", tab.Title())

	_, err = ParseTab("settings")
	assert.Error(t, err)
}

func TestParseRiskFilter(t *testing.T) {
	f, err := ParseRiskFilter("HIGH")
	assert.NoError(t, err)
	assert.Equal(t, FilterHigh, f)

	_, err = ParseRiskFilter("")
	assert.Error(t, err)
}
