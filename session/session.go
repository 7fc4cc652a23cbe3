// ABOUTME: Session holding the current model, the pre-run snapshot, and the generation counter.
// ABOUTME: Routes all edits, runs, rollback, and clear through commit semantics; no ambient state.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/interchange"
	"github.com/grafo-labs/grafo/model"
)

// Session is one editing context. The zero generation belongs to a fresh
// session; it increments on every successful run and names that run's
// interchange file pair. The original model is the snapshot taken immediately
// before the most recent run attempt, successful or not, so rollback always
// reverts exactly one run.
type Session struct {
	mu         sync.RWMutex
	ID         string
	kind       model.Kind
	current    *model.Graph
	original   *model.Graph
	generation uint64
	dataDir    string
	runner     executor.Runner
	CreatedAt  time.Time
	LastAccess time.Time
}

// New creates a fresh session: generation 0, empty current and original.
func New(id string, kind model.Kind, dataDir string, runner executor.Runner) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		kind:       kind,
		current:    model.New(kind),
		original:   model.New(kind),
		dataDir:    dataDir,
		runner:     runner,
		CreatedAt:  now,
		LastAccess: now,
	}
}

// Kind returns the session's model variant.
func (s *Session) Kind() model.Kind {
	return s.kind
}

// Generation returns the current generation counter.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// AddVertex admits a vertex into the current model.
func (s *Session) AddVertex(v model.Vertex) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.AddVertex(v)
}

// AddEdge admits an edge into the current model.
func (s *Session) AddEdge(e model.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.AddEdge(e)
}

// RemoveVertex removes a vertex and its incident edges from the current model.
func (s *Session) RemoveVertex(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.RemoveVertex(id)
}

// RemoveEdge removes an edge from the current model.
func (s *Session) RemoveEdge(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.RemoveEdge(from, to)
}

// HasVertex reports whether the current model contains the vertex.
func (s *Session) HasVertex(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.HasVertex(id)
}

// HasEdge reports whether the current model contains the edge.
func (s *Session) HasEdge(from, to string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.HasEdge(from, to)
}

// Snapshot returns a deep copy of the current model for rendering.
func (s *Session) Snapshot() *model.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Counts returns the current vertex and edge counts.
func (s *Session) Counts() (vertices, edges int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.VertexCount(), s.current.EdgeCount()
}

// StatusLine renders the count summary shown by the frontends.
func (s *Session) StatusLine() string {
	vertices, edges := s.Counts()
	return fmt.Sprintf("The %s has %d node(s) and %d edge(s).", s.kind, vertices, edges)
}

// Run executes one algorithm: it snapshots current into original, writes the
// interchange document for this generation, invokes the executor, and parses
// the result file. On success the parsed model replaces current and the
// generation increments. On any failure current is left untouched, but
// original keeps the pre-run snapshot, so the next rollback still reverts to
// the state right before the attempted run.
func (s *Session) Run(ctx context.Context, algorithm, extra string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docPath, err := interchange.WriteDocument(s.dataDir, s.generation, s.current)
	if err != nil {
		return "", fmt.Errorf("write interchange document: %w", err)
	}
	s.original = s.current.Clone()

	// A failed run does not advance the generation, so its result file would
	// otherwise be mistaken for the next attempt's output.
	resultPath := interchange.ResultPath(s.dataDir, s.generation)
	if err := os.Remove(resultPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("clear stale result file: %w", err)
	}

	req := executor.Request{
		DocumentPath: docPath,
		Generation:   s.generation,
		Algorithm:    algorithm,
		Extra:        extra,
	}
	if err := s.runner.Run(ctx, req); err != nil {
		return "", err
	}

	if _, err := os.Stat(resultPath); err != nil {
		return "", &executor.InvocationError{Op: "locate result file", Err: err}
	}

	res, err := interchange.ParseFile(resultPath, s.kind)
	if err != nil {
		return "", err
	}

	s.current = res.Graph
	s.generation++
	return res.Info, nil
}

// Rollback restores the pre-run snapshot and decrements the generation,
// floored at 1. Only the single most recent pre-run state is retained.
func (s *Session) Rollback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.original.Clone()
	if s.generation > 1 {
		s.generation--
	}
}

// Clear empties the current model in place. The original snapshot and the
// generation counter are untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Clear()
}
