// ABOUTME: HTTP server struct with chi router, session store, algorithm catalog, and journal.
// ABOUTME: Configures all routes and wires handler methods via functional options.
package editor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/journal"
	"github.com/grafo-labs/grafo/session"
)

// ServerOption configures optional Server behavior.
type ServerOption func(*Server)

// WithJournal attaches a command/run journal. Without one, nothing is recorded.
func WithJournal(j *journal.Journal) ServerOption {
	return func(s *Server) {
		s.journal = j
	}
}

// Server exposes the session store over HTTP: session lifecycle, direct
// mutations, the arbitrated command endpoint, runs, and the help page.
type Server struct {
	router  chi.Router
	store   *session.Store
	catalog executor.Catalog
	journal *journal.Journal
}

// NewServer creates a Server with all routes configured.
func NewServer(store *session.Store, catalog executor.Catalog, opts ...ServerOption) *Server {
	s := &Server{
		store:   store,
		catalog: catalog,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Get("/help", s.handleHelp)
	r.Get("/algorithms/{kind}", s.handleAlgorithms)

	// Session lifecycle
	r.Post("/sessions", s.handleCreateSession)
	r.Get("/sessions/{id}", s.handleGetSession)
	r.Delete("/sessions/{id}", s.handleDeleteSession)

	// Arbitrated command endpoint: the client reports per-action invocation
	// timestamps and the server decides which single action executes.
	r.Post("/sessions/{id}/commands", s.handleCommands)

	// Direct mutations
	r.Post("/sessions/{id}/vertices", s.handleAddVertex)
	r.Delete("/sessions/{id}/vertices/{vertexID}", s.handleRemoveVertex)
	r.Post("/sessions/{id}/edges", s.handleAddEdge)
	r.Delete("/sessions/{id}/edges", s.handleRemoveEdge)

	// Pipeline
	r.Post("/sessions/{id}/run", s.handleRun)
	r.Post("/sessions/{id}/rollback", s.handleRollback)
	r.Post("/sessions/{id}/clear", s.handleClear)

	s.router = r
	return s
}

// ServeHTTP implements the http.Handler interface, delegating to the chi router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
