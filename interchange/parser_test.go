// ABOUTME: Test suite for the result-file parser family.
// ABOUTME: Covers the shared grammar, the exception sentinel, variant record shapes, and malformed input.
package interchange

import (
	"errors"
	"strings"
	"testing"

	"github.com/grafo-labs/grafo/model"
)

func TestParseSimpleGraph(t *testing.T) {
	input := "graph\nvertices\nA\nB\nedges\nA B 3\nend\n"
	res, err := ParseGraph(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	g := res.Graph
	if g.Kind() != model.KindGraph {
		t.Fatalf("kind = %s, want graph", g.Kind())
	}
	if g.VertexCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("got %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	}
	if got := g.Edges()[0].Weight; got != 3 {
		t.Fatalf("weight = %d, want 3", got)
	}
	if !g.HasEdge("B", "A") {
		t.Fatal("undirected edge should match reversed pair")
	}
	if res.Info != "" {
		t.Fatalf("unexpected trailing info %q", res.Info)
	}
}

func TestParseGraphAcceptsDigraphHeader(t *testing.T) {
	input := "digraph\nvertices\nA\nB\nedges\nA B 1\nend\n"
	res, err := ParseGraph(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if res.Graph.Kind() != model.KindDigraph {
		t.Fatalf("legacy digraph header should produce a directed model, got %s", res.Graph.Kind())
	}
	if res.Graph.HasEdge("B", "A") {
		t.Fatal("directed edge should not match reversed pair")
	}
}

func TestExceptionPassthrough(t *testing.T) {
	input := "exception\nNo path exists.\nvertices\nshould not be read\n"
	_, err := ParseGraph(strings.NewReader(input))
	var execErr *ExecutorError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecutorError, got %v", err)
	}
	if execErr.Message != "No path exists." {
		t.Fatalf("message = %q", execErr.Message)
	}
}

func TestParseDigraphRecords(t *testing.T) {
	input := "digraph\nvertices\na Alpha\nb Beta\nedges\na b 4\nextra\nShortest path: a b\n"
	res, err := ParseDigraph(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := res.Graph.Vertex("a").Name; got != "Alpha" {
		t.Fatalf("vertex name = %q", got)
	}
	if res.Info != "Shortest path: a b" {
		t.Fatalf("info = %q", res.Info)
	}
}

func TestParseDigraphRejectsGraphHeader(t *testing.T) {
	input := "graph\nvertices\nA\nedges\nend\n"
	_, err := ParseDigraph(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected malformed record for mismatched header, got %v", err)
	}
}

func TestParseNetworkVertexVariants(t *testing.T) {
	input := strings.Join([]string{
		"network",
		"vertices",
		"S source _ _ 10",
		"X pass _ 2 5 _",
		"T sink _ _",
		"edges",
		"S X 10 0 7 1",
		"X T 10 2 7 0",
		"end",
	}, "\n") + "\n"
	res, err := ParseNetwork(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	g := res.Graph

	s := g.Vertex("S")
	if s.Flow == nil || *s.Flow != 10 {
		t.Fatalf("S fixed flow = %v, want 10", s.Flow)
	}
	x := g.Vertex("X")
	if x.MinFlow == nil || x.MaxFlow == nil || *x.MinFlow != 2 || *x.MaxFlow != 5 {
		t.Fatalf("X bounds = %v/%v, want 2/5", x.MinFlow, x.MaxFlow)
	}
	if x.Role != model.RolePass {
		t.Fatalf("X role = %s, want pass (recomputed from degree)", x.Role)
	}
	e := g.Edges()[1]
	if e.Weight != 10 || e.Restriction != 2 || e.Flow != 7 || e.Cost != 0 {
		t.Fatalf("edge attrs = %+v", e)
	}
}

func TestParseNetworkAcceptsAnyHeader(t *testing.T) {
	input := "ford\nvertices\nedges\nend\n"
	res, err := ParseNetwork(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if res.Graph.VertexCount() != 0 {
		t.Fatal("expected empty network")
	}
}

func TestParseNetworkRolesRecomputed(t *testing.T) {
	// The executor claims X is a source, but X has an incoming edge; the
	// role must follow the degree, never the stored input.
	input := "network\nvertices\nS source _ _\nX source _ _\nedges\nS X 5 0 0 0\nend\n"
	res, err := ParseNetwork(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := res.Graph.Vertex("X").Role; got != model.RoleSink {
		t.Fatalf("X role = %s, want sink", got)
	}
}

func TestMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		kind  model.Kind
		input string
	}{
		{"non-integer weight", model.KindGraph, "graph\nvertices\nA\nB\nedges\nA B heavy\nend\n"},
		{"edge field count", model.KindGraph, "graph\nvertices\nA\nedges\nA B\nend\n"},
		{"digraph vertex field count", model.KindDigraph, "digraph\nvertices\na\nedges\nend\n"},
		{"network vertex field count", model.KindNetwork, "net\nvertices\nS source\nedges\nend\n"},
		{"network edge field count", model.KindNetwork, "net\nvertices\nedges\nS T 1 0 0\nend\n"},
		{"truncated vertex section", model.KindGraph, "graph\nvertices\nA\n"},
		{"truncated edge section", model.KindGraph, "graph\nvertices\nA\nedges\nA A 1\n"},
		{"missing terminator", model.KindGraph, "graph\nvertices\nedges\n"},
		{"empty input", model.KindGraph, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), tt.kind)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord, got %v", err)
			}
			var execErr *ExecutorError
			if errors.As(err, &execErr) {
				t.Fatal("malformed record must not look like an executor-reported exception")
			}
		})
	}
}

func TestParseErrorsCarryLineNumbers(t *testing.T) {
	input := "graph\nvertices\nA\nB\nedges\nA B oops\nend\n"
	_, err := ParseGraph(strings.NewReader(input))
	if err == nil || !strings.Contains(err.Error(), "line 6") {
		t.Fatalf("expected line 6 in error, got %v", err)
	}
}

func TestReservedIdentifiers(t *testing.T) {
	for _, id := range []string{"edges", "extra", "end", "exception"} {
		if !Reserved(id) {
			t.Fatalf("%s should be reserved", id)
		}
	}
	for _, id := range []string{"A", "Edges", "ends", ""} {
		if Reserved(id) {
			t.Fatalf("%s should not be reserved", id)
		}
	}
}
