// ABOUTME: Mutable Graph structure shared by the three variants, with the full mutation capability set.
// ABOUTME: Enforces identifier uniqueness, network capacity/restriction bounds, and cascading vertex removal.
package model

import "fmt"

// Graph is the in-memory editable model. Vertices keep insertion order so
// serialized documents are stable across runs of the same session.
type Graph struct {
	kind     Kind
	vertices map[string]*Vertex
	order    []string
	edges    []*Edge
}

// New returns an empty Graph of the given kind.
func New(kind Kind) *Graph {
	return &Graph{
		kind:     kind,
		vertices: make(map[string]*Vertex),
	}
}

// Kind returns the variant of this model.
func (g *Graph) Kind() Kind {
	return g.kind
}

// AddVertex admits a vertex. The ID must be unique; network flow bounds must
// satisfy 0 <= min <= max. The vertex's role and label are derived on admission.
func (g *Graph) AddVertex(v Vertex) error {
	if _, exists := g.vertices[v.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateVertex, v.ID)
	}
	if g.kind == KindNetwork && v.MinFlow != nil && v.MaxFlow != nil {
		if *v.MinFlow < 0 || *v.MinFlow > *v.MaxFlow {
			return fmt.Errorf("%w: vertex %s", ErrInvalidBounds, v.ID)
		}
	}
	added := v
	g.vertices[v.ID] = &added
	g.order = append(g.order, v.ID)
	g.refreshVertex(v.ID)
	return nil
}

// AddEdge admits an edge between two existing vertices. If an edge already
// exists for the (ordered or unordered, per variant) pair, its attributes are
// replaced rather than a parallel edge being added. Network edges must satisfy
// weight >= 0 and 0 <= restriction <= weight before admission.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.vertices[e.From]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVertex, e.From)
	}
	if _, ok := g.vertices[e.To]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVertex, e.To)
	}
	if g.kind == KindNetwork {
		if e.Weight < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCapacity, e.Weight)
		}
		if e.Restriction < 0 || e.Restriction > e.Weight {
			return fmt.Errorf("%w: restriction %d, capacity %d", ErrInvalidRestriction, e.Restriction, e.Weight)
		}
		e.Info = edgeInfo(e)
	}
	if existing := g.findEdge(e.From, e.To); existing != nil {
		// Keep the original orientation of an undirected edge.
		e.From, e.To = existing.From, existing.To
		*existing = e
	} else {
		added := e
		g.edges = append(g.edges, &added)
	}
	g.refreshVertex(e.From)
	g.refreshVertex(e.To)
	return nil
}

// RemoveVertex removes a vertex and every edge incident to it.
func (g *Graph) RemoveVertex(id string) error {
	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVertex, id)
	}
	delete(g.vertices, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	kept := g.edges[:0]
	touched := make(map[string]bool)
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			touched[e.From] = true
			touched[e.To] = true
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	for vid := range touched {
		g.refreshVertex(vid)
	}
	return nil
}

// RemoveEdge removes the edge between from and to. For the undirected variant
// either orientation matches.
func (g *Graph) RemoveEdge(from, to string) error {
	if _, ok := g.vertices[from]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVertex, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVertex, to)
	}
	for i, e := range g.edges {
		if g.matches(e, from, to) {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			g.refreshVertex(from)
			g.refreshVertex(to)
			return nil
		}
	}
	return fmt.Errorf("%w: %s-%s", ErrNoSuchEdge, from, to)
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// HasEdge reports whether an edge exists between from and to.
func (g *Graph) HasEdge(from, to string) bool {
	return g.findEdge(from, to) != nil
}

// Vertex returns the vertex with the given ID, or nil.
func (g *Graph) Vertex(id string) *Vertex {
	return g.vertices[id]
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Vertices returns the vertices in insertion order.
func (g *Graph) Vertices() []*Vertex {
	result := make([]*Vertex, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.vertices[id])
	}
	return result
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Clear empties the model in place. It always succeeds.
func (g *Graph) Clear() {
	g.vertices = make(map[string]*Vertex)
	g.order = nil
	g.edges = nil
}

// Clone returns a deep copy of the model. Sessions snapshot through Clone so
// the retained pre-run state cannot be mutated through aliasing.
func (g *Graph) Clone() *Graph {
	c := New(g.kind)
	c.order = append([]string(nil), g.order...)
	for id, v := range g.vertices {
		cv := *v
		cv.Flow = cloneInt(v.Flow)
		cv.MinFlow = cloneInt(v.MinFlow)
		cv.MaxFlow = cloneInt(v.MaxFlow)
		c.vertices[id] = &cv
	}
	c.edges = make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		ce := *e
		c.edges = append(c.edges, &ce)
	}
	return c
}

// InDegree returns the number of edges terminating at the vertex. For the
// undirected variant every incident edge counts.
func (g *Graph) InDegree(id string) int {
	n := 0
	for _, e := range g.edges {
		if e.To == id || (!g.kind.Directed() && e.From == id) {
			n++
		}
	}
	return n
}

// OutDegree returns the number of edges originating at the vertex. For the
// undirected variant every incident edge counts.
func (g *Graph) OutDegree(id string) int {
	n := 0
	for _, e := range g.edges {
		if e.From == id || (!g.kind.Directed() && e.To == id) {
			n++
		}
	}
	return n
}

func (g *Graph) findEdge(from, to string) *Edge {
	for _, e := range g.edges {
		if g.matches(e, from, to) {
			return e
		}
	}
	return nil
}

func (g *Graph) matches(e *Edge, from, to string) bool {
	if e.From == from && e.To == to {
		return true
	}
	if !g.kind.Directed() && e.From == to && e.To == from {
		return true
	}
	return false
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
