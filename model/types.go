// ABOUTME: Core types for the editable graph model: Kind, Role, Vertex, Edge, and sentinel errors.
// ABOUTME: Kind selects one of the three variants (graph, digraph, network) and fixes attribute shape.
package model

import "errors"

// Kind selects which of the three model variants a Graph is.
type Kind int

const (
	// KindGraph is the plain undirected, weighted graph.
	KindGraph Kind = iota
	// KindDigraph is the directed, weighted graph.
	KindDigraph
	// KindNetwork is the directed flow network with capacities, restrictions, flows, and costs.
	KindNetwork
)

// String returns the lowercase variant name used in interchange headers and messages.
func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindDigraph:
		return "digraph"
	case KindNetwork:
		return "network"
	}
	return "unknown"
}

// Directed reports whether edges of this variant are ordered pairs.
func (k Kind) Directed() bool {
	return k != KindGraph
}

// ParseKind resolves a lowercase variant name to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "graph":
		return KindGraph, true
	case "digraph":
		return KindDigraph, true
	case "network":
		return KindNetwork, true
	}
	return KindGraph, false
}

// Role classifies a network vertex by its degree. It is always derived,
// never user-set: in-degree 0 is a source, out-degree 0 is a sink,
// everything else is a pass vertex.
type Role string

const (
	RoleSource Role = "source"
	RoleSink   Role = "sink"
	RolePass   Role = "pass"
)

var (
	// ErrDuplicateVertex is returned when adding a vertex whose ID already exists.
	ErrDuplicateVertex = errors.New("model: duplicate vertex")

	// ErrUnknownVertex is returned when an operation references a vertex that is not in the model.
	ErrUnknownVertex = errors.New("model: unknown vertex")

	// ErrNoSuchEdge is returned when removing an edge that does not exist.
	ErrNoSuchEdge = errors.New("model: no such edge")

	// ErrInvalidCapacity is returned when a network edge is admitted with a negative capacity.
	ErrInvalidCapacity = errors.New("model: invalid capacity")

	// ErrInvalidRestriction is returned when a network edge's restriction is negative
	// or exceeds its capacity.
	ErrInvalidRestriction = errors.New("model: invalid restriction")

	// ErrInvalidBounds is returned when a network vertex carries flow bounds
	// with min < 0 or min > max.
	ErrInvalidBounds = errors.New("model: invalid flow bounds")
)

// Vertex is a node in the model. ID is unique within one Graph. Name is the
// digraph display name. The network-only fields Flow (fixed production or
// demand) and MinFlow/MaxFlow (bounded flow) are optional; Role and Label are
// derived and recomputed after every incident edge mutation.
type Vertex struct {
	ID      string
	Name    string
	Role    Role
	Flow    *int
	MinFlow *int
	MaxFlow *int
	Label   string
}

// Edge connects two vertices. The pair is ordered for directed variants and
// unordered for the plain graph. Weight doubles as capacity for networks,
// where Restriction, Flow, and Cost are also carried. Info is the derived
// human-readable network edge label.
type Edge struct {
	From        string
	To          string
	Weight      int
	Restriction int
	Flow        int
	Cost        int
	Info        string
}
