// ABOUTME: Line-oriented parsers that reconstruct a model from the executor's result file.
// ABOUTME: Three format variants share one grammar: header, vertex records, "edges", edge records, "extra"/"end".
package interchange

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grafo-labs/grafo/model"
)

// Reserved grammar keywords. They terminate sections and must not collide
// with vertex or edge field values.
const (
	tokenEdges     = "edges"
	tokenExtra     = "extra"
	tokenEnd       = "end"
	tokenException = "exception"
)

// Reserved reports whether an identifier collides with a grammar keyword. A
// vertex carrying such an id would terminate a section early on the next
// round trip, so callers reject it before it enters a model.
func Reserved(id string) bool {
	switch id {
	case tokenEdges, tokenExtra, tokenEnd, tokenException:
		return true
	}
	return false
}

// ErrMalformedRecord is wrapped by every structural parse failure: an
// unexpected token shape, a non-integer numeric field, or a truncated file.
// It is distinct from an ExecutorError, which the executor reported itself.
var ErrMalformedRecord = errors.New("interchange: malformed record")

// ExecutorError carries the verbatim failure message an executor wrote under
// the "exception" sentinel. It is a modeled algorithm failure, not a parse or
// infrastructure problem.
type ExecutorError struct {
	Message string
}

func (e *ExecutorError) Error() string {
	return e.Message
}

// Result is a successfully parsed model plus the optional trailing info line
// an executor may attach under the "extra" sentinel.
type Result struct {
	Graph *model.Graph
	Info  string
}

// Parse reads a result file for the expected variant.
func Parse(r io.Reader, kind model.Kind) (*Result, error) {
	switch kind {
	case model.KindGraph:
		return ParseGraph(r)
	case model.KindDigraph:
		return ParseDigraph(r)
	case model.KindNetwork:
		return ParseNetwork(r)
	}
	return nil, fmt.Errorf("%w: unsupported kind %d", ErrMalformedRecord, kind)
}

// ParseFile opens and parses the result file at path.
func ParseFile(path string, kind model.Kind) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open result file: %w", err)
	}
	defer f.Close()
	return Parse(f, kind)
}

// ParseGraph reads a plain-graph result. The legacy "digraph" header is also
// accepted and selects a directed model instead.
func ParseGraph(r io.Reader) (*Result, error) {
	p := newLineParser(r)
	header, err := p.header()
	if err != nil {
		return nil, err
	}
	var g *model.Graph
	switch header {
	case "graph":
		g = model.New(model.KindGraph)
	case "digraph":
		g = model.New(model.KindDigraph)
	default:
		return nil, p.errorf("unexpected header %q", header)
	}
	return p.body(g, parseGraphVertex, parseWeightedEdge)
}

// ParseDigraph reads a digraph result. Any header other than "digraph" is a
// mismatched expectation and fails.
func ParseDigraph(r io.Reader) (*Result, error) {
	p := newLineParser(r)
	header, err := p.header()
	if err != nil {
		return nil, err
	}
	if header != "digraph" {
		return nil, p.errorf("unexpected header %q", header)
	}
	return p.body(model.New(model.KindDigraph), parseDigraphVertex, parseWeightedEdge)
}

// ParseNetwork reads a network result. Network executors identify themselves
// with varying headers, so any non-exception header is accepted.
func ParseNetwork(r io.Reader) (*Result, error) {
	p := newLineParser(r)
	if _, err := p.header(); err != nil {
		return nil, err
	}
	return p.body(model.New(model.KindNetwork), parseNetworkVertex, parseNetworkEdge)
}

// lineParser tracks the scanner position for error reporting.
type lineParser struct {
	scanner *bufio.Scanner
	line    int
}

func newLineParser(r io.Reader) *lineParser {
	return &lineParser{scanner: bufio.NewScanner(r)}
}

// next returns the next line and its fields, or io.EOF.
func (p *lineParser) next() (string, []string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", nil, fmt.Errorf("read result file: %w", err)
		}
		return "", nil, io.EOF
	}
	p.line++
	text := p.scanner.Text()
	return text, strings.Fields(text), nil
}

func (p *lineParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s at line %d", ErrMalformedRecord, msg, p.line)
}

// header consumes the first line. The "exception" sentinel stops parsing
// immediately: the following line is the executor's verbatim error message
// and no further lines are consumed.
func (p *lineParser) header() (string, error) {
	_, fields, err := p.next()
	if err != nil || len(fields) == 0 {
		return "", p.errorf("missing header")
	}
	if fields[0] == tokenException {
		msg, _, err := p.next()
		if err != nil {
			return "", p.errorf("exception sentinel without message")
		}
		return "", &ExecutorError{Message: strings.TrimSpace(msg)}
	}
	return fields[0], nil
}

// body consumes the vertex section, the edge section, and the trailing
// "extra"/"end" terminator. Missing edge endpoints are admitted implicitly,
// matching how executors may omit vertex records for endpoint-only vertices.
func (p *lineParser) body(g *model.Graph, vertex vertexFunc, edge edgeFunc) (*Result, error) {
	// The vertex section header line carries no data.
	if _, _, err := p.next(); err != nil {
		return nil, p.errorf("missing vertex section")
	}

	for {
		_, fields, err := p.next()
		if err != nil {
			return nil, p.errorf("result file ended inside vertex section")
		}
		if len(fields) == 0 {
			return nil, p.errorf("blank line inside vertex section")
		}
		if fields[0] == tokenEdges {
			break
		}
		if err := vertex(p, g, fields); err != nil {
			return nil, err
		}
	}

	for {
		_, fields, err := p.next()
		if err != nil {
			return nil, p.errorf("result file ended inside edge section")
		}
		if len(fields) == 0 {
			return nil, p.errorf("blank line inside edge section")
		}
		if fields[0] == tokenEnd {
			break
		}
		if fields[0] == tokenExtra {
			info, _, err := p.next()
			if err != nil {
				return nil, p.errorf("extra sentinel without info line")
			}
			g.RefreshAll()
			return &Result{Graph: g, Info: strings.TrimSpace(info)}, nil
		}
		if err := edge(p, g, fields); err != nil {
			return nil, err
		}
	}

	g.RefreshAll()
	return &Result{Graph: g}, nil
}

type vertexFunc func(p *lineParser, g *model.Graph, fields []string) error
type edgeFunc func(p *lineParser, g *model.Graph, fields []string) error

func parseGraphVertex(p *lineParser, g *model.Graph, fields []string) error {
	if err := g.AddVertex(model.Vertex{ID: fields[0]}); err != nil {
		return p.errorf("vertex %s: %v", fields[0], err)
	}
	return nil
}

func parseDigraphVertex(p *lineParser, g *model.Graph, fields []string) error {
	if len(fields) != 2 {
		return p.errorf("digraph vertex record needs 2 fields, got %d", len(fields))
	}
	if err := g.AddVertex(model.Vertex{ID: fields[0], Name: fields[1]}); err != nil {
		return p.errorf("vertex %s: %v", fields[0], err)
	}
	return nil
}

// parseNetworkVertex handles the three record shapes: plain (4 fields),
// fixed flow (5 fields: the last is the production), and bounded flow
// (6 fields: positions 4 and 5 are min and max).
func parseNetworkVertex(p *lineParser, g *model.Graph, fields []string) error {
	v := model.Vertex{ID: fields[0]}
	switch len(fields) {
	case 4:
		// name type _ _
	case 5:
		flow, err := p.intField(fields[4])
		if err != nil {
			return err
		}
		v.Flow = &flow
	case 6:
		min, err := p.intField(fields[3])
		if err != nil {
			return err
		}
		max, err := p.intField(fields[4])
		if err != nil {
			return err
		}
		v.MinFlow = &min
		v.MaxFlow = &max
	default:
		return p.errorf("network vertex record needs 4-6 fields, got %d", len(fields))
	}
	v.Role = model.Role(fields[1])
	if err := g.AddVertex(v); err != nil {
		return p.errorf("vertex %s: %v", v.ID, err)
	}
	return nil
}

func parseWeightedEdge(p *lineParser, g *model.Graph, fields []string) error {
	if len(fields) != 3 {
		return p.errorf("edge record needs 3 fields, got %d", len(fields))
	}
	weight, err := p.intField(fields[2])
	if err != nil {
		return err
	}
	if err := p.ensureEndpoints(g, fields[0], fields[1]); err != nil {
		return err
	}
	if err := g.AddEdge(model.Edge{From: fields[0], To: fields[1], Weight: weight}); err != nil {
		return p.errorf("edge %s %s: %v", fields[0], fields[1], err)
	}
	return nil
}

func parseNetworkEdge(p *lineParser, g *model.Graph, fields []string) error {
	if len(fields) != 6 {
		return p.errorf("network edge record needs 6 fields, got %d", len(fields))
	}
	nums := make([]int, 4)
	for i, raw := range fields[2:] {
		n, err := p.intField(raw)
		if err != nil {
			return err
		}
		nums[i] = n
	}
	if err := p.ensureEndpoints(g, fields[0], fields[1]); err != nil {
		return err
	}
	e := model.Edge{
		From:        fields[0],
		To:          fields[1],
		Weight:      nums[0],
		Restriction: nums[1],
		Flow:        nums[2],
		Cost:        nums[3],
	}
	if err := g.AddEdge(e); err != nil {
		return p.errorf("edge %s %s: %v", e.From, e.To, err)
	}
	return nil
}

func (p *lineParser) ensureEndpoints(g *model.Graph, ids ...string) error {
	for _, id := range ids {
		if g.HasVertex(id) {
			continue
		}
		if err := g.AddVertex(model.Vertex{ID: id}); err != nil {
			return p.errorf("vertex %s: %v", id, err)
		}
	}
	return nil
}

func (p *lineParser) intField(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, p.errorf("non-integer field %q", raw)
	}
	return n, nil
}
