// ABOUTME: StatusBarModel renders the counts line, the generation, and the key hints.
// ABOUTME: Single-line bar pinned to the bottom of the layout.
package tui

import (
	"fmt"
)

// StatusBarModel is the single-line bar at the bottom of the layout.
type StatusBarModel struct {
	status     string
	generation uint64
	width      int
}

// Set updates the counts line and generation.
func (m *StatusBarModel) Set(status string, generation uint64) {
	m.status = status
	m.generation = generation
}

// SetWidth sets the bar's render width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the bar.
func (m StatusBarModel) View() string {
	line := fmt.Sprintf("%s  gen %d  [ctrl+a] action  [tab] field  [enter] apply  [ctrl+r] reset  [ctrl+e] empty  [esc] quit",
		m.status, m.generation)
	style := statusBarStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(line)
}
