// ABOUTME: Derivation of network vertex roles and the human-readable labels shown by frontends.
// ABOUTME: Roles are a pure function of degree and recomputed after every incident edge mutation.
package model

import "fmt"

// refreshVertex recomputes the derived role and label for one vertex.
// Non-network variants only derive the label.
func (g *Graph) refreshVertex(id string) {
	v, ok := g.vertices[id]
	if !ok {
		return
	}
	switch g.kind {
	case KindGraph:
		v.Label = v.ID
	case KindDigraph:
		if v.Name == "" {
			v.Name = v.ID
		}
		v.Label = v.Name
	case KindNetwork:
		switch {
		case g.InDegree(id) == 0:
			v.Role = RoleSource
		case g.OutDegree(id) == 0:
			v.Role = RoleSink
		default:
			v.Role = RolePass
		}
		v.Label = networkLabel(v)
	}
}

// RefreshAll recomputes roles and labels for every vertex. Parsers call this
// once after rebuilding a model from an executor result.
func (g *Graph) RefreshAll() {
	for _, id := range g.order {
		g.refreshVertex(id)
	}
}

// networkLabel renders a network vertex as "+ id" for sources, "- id" for
// sinks, and "id" for pass vertices, with the fixed flow or min/max bounds
// appended when present.
func networkLabel(v *Vertex) string {
	prefix := ""
	switch v.Role {
	case RoleSource:
		prefix = "+ "
	case RoleSink:
		prefix = "- "
	}
	switch {
	case v.Flow != nil:
		return fmt.Sprintf("%s%s, %d", prefix, v.ID, *v.Flow)
	case v.MinFlow != nil && v.MaxFlow != nil:
		return fmt.Sprintf("%s%s, %d/%d", prefix, v.ID, *v.MinFlow, *v.MaxFlow)
	default:
		return prefix + v.ID
	}
}

// edgeInfo renders the network edge label: restriction, flow, capacity, cost.
func edgeInfo(e Edge) string {
	return fmt.Sprintf("r:%d, f:%d, q:%d, c:%d", e.Restriction, e.Flow, e.Weight, e.Cost)
}
