// ABOUTME: ModelPanel renders the session's current vertices and edges with their derived labels.
// ABOUTME: Vertices are listed in insertion order; roles pick the display style for networks.
package tui

import (
	"fmt"
	"strings"

	"github.com/grafo-labs/grafo/model"
)

// ModelPanel is a read-only view of one graph snapshot.
type ModelPanel struct {
	graph *model.Graph
	width int
}

// NewModelPanel creates a panel over the given snapshot.
func NewModelPanel(g *model.Graph) ModelPanel {
	return ModelPanel{graph: g}
}

// SetGraph replaces the rendered snapshot.
func (p *ModelPanel) SetGraph(g *model.Graph) {
	p.graph = g
}

// SetWidth sets the panel's render width.
func (p *ModelPanel) SetWidth(w int) {
	p.width = w
}

// View renders the vertex and edge listing.
func (p ModelPanel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Vertices"))
	b.WriteString("\n")
	if p.graph == nil || p.graph.VertexCount() == 0 {
		b.WriteString("  (none)\n")
	}
	if p.graph != nil {
		for _, v := range p.graph.Vertices() {
			b.WriteString("  ")
			b.WriteString(styleForRole(v.Role).Render(v.Label))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Edges"))
		b.WriteString("\n")
		if p.graph.EdgeCount() == 0 {
			b.WriteString("  (none)\n")
		}
		arrow := "--"
		if p.graph.Kind().Directed() {
			arrow = "->"
		}
		for _, e := range p.graph.Edges() {
			line := fmt.Sprintf("  %s %s %s", e.From, arrow, e.To)
			if e.Info != "" {
				line += "  " + e.Info
			} else {
				line += fmt.Sprintf("  %d", e.Weight)
			}
			b.WriteString(edgeStyle.Render(line))
			b.WriteString("\n")
		}
	}

	style := borderStyle
	if p.width > 2 {
		style = style.Width(p.width - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}
