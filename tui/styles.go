// ABOUTME: Defines lipgloss style constants for the TUI panels, vertex roles, and the status bar.
// ABOUTME: Provides styleForRole to map network roles to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/grafo-labs/grafo/model"
)

var (
	// Panel borders
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Vertex role colors
	sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	sinkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	// Edge info
	edgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	// Messages
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Form
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)
	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// styleForRole returns the lipgloss style for a vertex role.
func styleForRole(role model.Role) lipgloss.Style {
	switch role {
	case model.RoleSource:
		return sourceStyle
	case model.RoleSink:
		return sinkStyle
	default:
		return passStyle
	}
}
