// ABOUTME: HTTP handler methods for all editor endpoints.
// ABOUTME: Covers session lifecycle, direct mutations, arbitrated commands, runs, and the algorithm list.
package editor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grafo-labs/grafo/command"
	"github.com/grafo-labs/grafo/interchange"
	"github.com/grafo-labs/grafo/model"
	"github.com/grafo-labs/grafo/session"
)

// stateResponse is the session view returned by every mutating endpoint.
type stateResponse struct {
	SessionID  string                `json:"session_id"`
	Kind       string                `json:"kind"`
	Generation uint64                `json:"generation"`
	Status     string                `json:"status"`
	Message    string                `json:"message,omitempty"`
	Action     string                `json:"action,omitempty"`
	Document   *interchange.Document `json:"document"`
}

// commandRequest carries the client's pending-action timestamps plus every
// field the winning action might need.
type commandRequest struct {
	Timestamps map[string]int64 `json:"timestamps"`

	VertexID     string `json:"vertex_id,omitempty"`
	Source       string `json:"source,omitempty"`
	Target       string `json:"target,omitempty"`
	Weight       *int   `json:"weight,omitempty"`
	Restriction  *int   `json:"restriction,omitempty"`
	Cost         *int   `json:"cost,omitempty"`
	RemoveVertex string `json:"remove_vertex,omitempty"`
	RemoveSource string `json:"remove_source,omitempty"`
	RemoveTarget string `json:"remove_target,omitempty"`
	Algorithm    string `json:"algorithm,omitempty"`
	Extra        string `json:"extra,omitempty"`
}

func (req *commandRequest) input() command.Input {
	return command.Input{
		VertexID:     req.VertexID,
		Source:       req.Source,
		Target:       req.Target,
		Weight:       req.Weight,
		Restriction:  req.Restriction,
		Cost:         req.Cost,
		RemoveVertex: req.RemoveVertex,
		RemoveSource: req.RemoveSource,
		RemoveTarget: req.RemoveTarget,
		Algorithm:    req.Algorithm,
		Extra:        req.Extra,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) stateOf(sess *session.Session, action, message string) stateResponse {
	return stateResponse{
		SessionID:  sess.ID,
		Kind:       sess.Kind().String(),
		Generation: sess.Generation(),
		Status:     sess.StatusLine(),
		Message:    message,
		Action:     action,
		Document:   interchange.Serialize(sess.Snapshot()),
	}
}

func (s *Server) sessionFrom(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := s.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no such session")
		return nil, false
	}
	return sess, true
}

// handleCreateSession registers a fresh session for the requested variant.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string `json:"kind"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	kind, ok := model.ParseKind(req.Kind)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, "kind must be graph, digraph, or network")
		return
	}
	sess := s.store.Create(kind)
	writeJSON(w, http.StatusCreated, s.stateOf(sess, "", ""))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.stateOf(sess, "", ""))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.store.Remove(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "no such session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCommands arbitrates the pending actions and applies the winner. When
// every timestamp is absent or zero, nothing executes and the current state
// is returned untouched.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(w, r)
	if !ok {
		return
	}
	var req commandRequest
	if !readJSON(w, r, &req) {
		return
	}

	pending := command.Pending{}
	for name, ts := range req.Timestamps {
		action, ok := command.ParseAction(name)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, "unknown action "+name)
			return
		}
		pending[action] = ts
	}

	action, ok := command.Select(pending)
	if !ok {
		writeJSON(w, http.StatusOK, s.stateOf(sess, "", ""))
		return
	}

	msg := command.Apply(r.Context(), sess, s.catalog, action, req.input())
	s.record(sess, action.String(), msg)
	writeJSON(w, http.StatusOK, s.stateOf(sess, action.String(), msg))
}

func (s *Server) handleAddVertex(w http.ResponseWriter, r *http.Request) {
	s.applyDirect(w, r, command.ActionAddVertex)
}

func (s *Server) handleAddEdge(w http.ResponseWriter, r *http.Request) {
	s.applyDirect(w, r, command.ActionAddEdge)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	s.applyDirect(w, r, command.ActionRun)
}

func (s *Server) handleRollback(w http.ResponseWriter, r *http.Request) {
	s.applyDirect(w, r, command.ActionReset)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.applyDirect(w, r, command.ActionClear)
}

// handleRemoveVertex deletes one vertex and its incident edges.
func (s *Server) handleRemoveVertex(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(w, r)
	if !ok {
		return
	}
	in := command.Input{RemoveVertex: chi.URLParam(r, "vertexID")}
	msg := command.Apply(r.Context(), sess, s.catalog, command.ActionRemoveVertex, in)
	s.record(sess, command.ActionRemoveVertex.String(), msg)
	writeJSON(w, http.StatusOK, s.stateOf(sess, command.ActionRemoveVertex.String(), msg))
}

// handleRemoveEdge deletes the edge named by the source and target query params.
func (s *Server) handleRemoveEdge(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFrom(w, r)
	if !ok {
		return
	}
	in := command.Input{
		RemoveSource: r.URL.Query().Get("source"),
		RemoveTarget: r.URL.Query().Get("target"),
	}
	msg := command.Apply(r.Context(), sess, s.catalog, command.ActionRemoveEdge, in)
	s.record(sess, command.ActionRemoveEdge.String(), msg)
	writeJSON(w, http.StatusOK, s.stateOf(sess, command.ActionRemoveEdge.String(), msg))
}

func (s *Server) applyDirect(w http.ResponseWriter, r *http.Request, action command.Action) {
	sess, ok := s.sessionFrom(w, r)
	if !ok {
		return
	}
	var req commandRequest
	if r.ContentLength > 0 && !readJSON(w, r, &req) {
		return
	}
	msg := command.Apply(r.Context(), sess, s.catalog, action, req.input())
	s.record(sess, action.String(), msg)
	writeJSON(w, http.StatusOK, s.stateOf(sess, action.String(), msg))
}

// handleAlgorithms lists the catalog entries for a variant.
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	kind, ok := model.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, http.StatusNotFound, "kind must be graph, digraph, or network")
		return
	}
	type entry struct {
		Name  string `json:"name"`
		Label string `json:"label"`
		Extra string `json:"extra,omitempty"`
	}
	var entries []entry
	for _, a := range s.catalog.For(kind) {
		entries = append(entries, entry{Name: a.Name, Label: a.Label, Extra: string(a.Extra)})
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) record(sess *session.Session, action, message string) {
	if s.journal == nil {
		return
	}
	// Journaling is write-behind; a failed append never fails the request.
	_ = s.journal.RecordCommand(sess.ID, sess.Kind().String(), action, message)
}
