// Package presenter formats view models for terminal display.
// Presenters are pure: same view model in, same text out. All state lives
// upstream in the session and the view state machine.
package presenter

import (
	"strings"

	"github.com/krrish-maji/Campus-Connect/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGIN PRESENTER
// ══════════════════════════════════════════════════════════════════════════════

// LoginPresenter formats the login screen.
type LoginPresenter struct{}

// NewLoginPresenter creates a new LoginPresenter.
func NewLoginPresenter() *LoginPresenter {
	return &LoginPresenter{}
}

// Format renders the login screen from a view model.
func (p *LoginPresenter) Format(vm query.ViewModel) string {
	var sb strings.Builder

	sb.WriteString("┌──────────────────────────────────────┐\n")
	sb.WriteString("│        Campus Connect — Login        │\n")
	sb.WriteString("└──────────────────────────────────────┘\n")
	sb.WriteString("Theme: " + vm.ThemeIcon + "\n\n")

	if vm.Login != nil && vm.Login.Message != "" {
		sb.WriteString("! " + vm.Login.Message + "\n\n")
	}

	sb.WriteString("Commands:\n")
	sb.WriteString("  login <email> <password>\n")
	sb.WriteString("  theme\n")
	sb.WriteString("  quit\n")

	return sb.String()
}
