// ABOUTME: The command boundary: validates a selected action's fields and applies it to a session.
// ABOUTME: Resolves every failure into a single user-visible message; no error propagates past here.
package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/interchange"
	"github.com/grafo-labs/grafo/model"
	"github.com/grafo-labs/grafo/session"
)

// Input carries the field values accompanying a pending action. Numeric
// fields are pointers because an empty form field is distinct from zero.
type Input struct {
	VertexID     string
	Source       string
	Target       string
	Weight       *int
	Restriction  *int
	Cost         *int
	RemoveVertex string
	RemoveSource string
	RemoveTarget string
	Algorithm    string
	Extra        string
}

// Apply executes one arbitrated action against the session and returns the
// user-visible message: empty on silent success, the executor's trailing info
// on a successful run, or a failure description. The session model is never
// left half-mutated.
func Apply(ctx context.Context, sess *session.Session, catalog executor.Catalog, action Action, in Input) string {
	switch action {
	case ActionAddVertex:
		return applyAddVertex(sess, in)
	case ActionAddEdge:
		return applyAddEdge(sess, in)
	case ActionRemoveVertex:
		return applyRemoveVertex(sess, in)
	case ActionRemoveEdge:
		return applyRemoveEdge(sess, in)
	case ActionRun:
		return applyRun(ctx, sess, catalog, in)
	case ActionReset:
		sess.Rollback()
		return ""
	case ActionClear:
		sess.Clear()
		return ""
	}
	return fmt.Sprintf("Unknown action %q.", action)
}

func applyAddVertex(sess *session.Session, in Input) string {
	raw := strings.TrimSpace(in.VertexID)
	if raw == "" {
		return "Vertex identifier is required."
	}
	v, msg := parseVertexInput(sess.Kind(), raw)
	if msg != "" {
		return msg
	}
	if interchange.Reserved(v.ID) {
		return fmt.Sprintf("Vertex identifier %s is reserved.", v.ID)
	}
	if err := sess.AddVertex(v); err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateVertex):
			return fmt.Sprintf("Vertex %s is already on the %s.", v.ID, sess.Kind())
		case errors.Is(err, model.ErrInvalidBounds):
			return fmt.Sprintf("Invalid restrictions for vertex %s.", v.ID)
		}
		return err.Error()
	}
	return ""
}

// parseVertexInput handles the network vertex grammar: "id", "id/flow", or
// "id/min/max". Other variants take the raw value as the identifier.
func parseVertexInput(kind model.Kind, raw string) (model.Vertex, string) {
	if kind != model.KindNetwork {
		v := model.Vertex{ID: raw}
		if kind == model.KindDigraph {
			v.Name = raw
		}
		return v, ""
	}
	parts := strings.Split(raw, "/")
	v := model.Vertex{ID: parts[0]}
	switch {
	case len(parts) == 1:
		return v, ""
	case len(parts) == 2:
		flow, err := strconv.Atoi(parts[1])
		if err != nil {
			return v, fmt.Sprintf("Invalid flow value for vertex %s.", v.ID)
		}
		v.Flow = &flow
	default:
		minFlow, err1 := strconv.Atoi(parts[1])
		maxFlow, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			return v, fmt.Sprintf("Invalid restrictions for vertex %s.", v.ID)
		}
		v.MinFlow = &minFlow
		v.MaxFlow = &maxFlow
	}
	return v, ""
}

func applyAddEdge(sess *session.Session, in Input) string {
	source := strings.TrimSpace(in.Source)
	target := strings.TrimSpace(in.Target)
	if source == "" || target == "" {
		return "Both edge endpoints are required."
	}
	if in.Weight == nil {
		return "Edge weight is required."
	}
	if msg := missingEndpoints(sess, source, target); msg != "" {
		return msg
	}

	e := model.Edge{From: source, To: target, Weight: *in.Weight}
	if sess.Kind() == model.KindNetwork {
		if in.Restriction == nil || in.Cost == nil {
			return "Edge restriction and cost are required."
		}
		e.Restriction = *in.Restriction
		e.Cost = *in.Cost
	}

	if err := sess.AddEdge(e); err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRestriction) && e.Restriction < 0:
			return "The minimum restriction can't be negative."
		case errors.Is(err, model.ErrInvalidRestriction):
			return "The capacity of the edge can't be less than the restriction."
		case errors.Is(err, model.ErrInvalidCapacity):
			return "The capacity of the edge can't be negative."
		}
		return err.Error()
	}
	return ""
}

func applyRemoveVertex(sess *session.Session, in Input) string {
	id := strings.TrimSpace(in.RemoveVertex)
	if id == "" {
		return "Vertex identifier is required."
	}
	if err := sess.RemoveVertex(id); err != nil {
		return fmt.Sprintf("Vertex %s is not on the %s.", id, sess.Kind())
	}
	return ""
}

func applyRemoveEdge(sess *session.Session, in Input) string {
	source := strings.TrimSpace(in.RemoveSource)
	target := strings.TrimSpace(in.RemoveTarget)
	if source == "" || target == "" {
		return "Both edge endpoints are required."
	}
	if msg := missingEndpoints(sess, source, target); msg != "" {
		return msg
	}
	if err := sess.RemoveEdge(source, target); err != nil {
		return fmt.Sprintf("There isn't an edge between vertices %s and %s.", source, target)
	}
	return ""
}

func applyRun(ctx context.Context, sess *session.Session, catalog executor.Catalog, in Input) string {
	algo, ok := catalog.Find(sess.Kind(), in.Algorithm)
	if !ok {
		return fmt.Sprintf("Unknown algorithm %q for the %s.", in.Algorithm, sess.Kind())
	}
	extra := strings.TrimSpace(in.Extra)
	switch algo.Extra {
	case executor.ExtraStartVertex:
		if extra == "" {
			return fmt.Sprintf("A start vertex is required for %s.", algo.Label)
		}
	case executor.ExtraTargetFlow:
		if extra == "" {
			return fmt.Sprintf("A target flow is required for %s.", algo.Label)
		}
	default:
		extra = ""
	}

	info, err := sess.Run(ctx, algo.Name, extra)
	if err != nil {
		var execErr *interchange.ExecutorError
		if errors.As(err, &execErr) {
			return execErr.Message
		}
		var invErr *executor.InvocationError
		if errors.As(err, &invErr) {
			return fmt.Sprintf("The executor could not be invoked: %v.", invErr.Err)
		}
		if errors.Is(err, interchange.ErrMalformedRecord) {
			return fmt.Sprintf("The executor produced an unreadable result: %v.", err)
		}
		return err.Error()
	}
	return info
}

// missingEndpoints reproduces the three-way endpoint message: one side, the
// other side, or both absent.
func missingEndpoints(sess *session.Session, source, target string) string {
	hasSource := sess.HasVertex(source)
	hasTarget := sess.HasVertex(target)
	kind := sess.Kind()
	switch {
	case !hasSource && !hasTarget:
		return fmt.Sprintf("Vertices %s and %s are not on the %s.", source, target, kind)
	case !hasSource:
		return fmt.Sprintf("Vertex %s is not on the %s.", source, kind)
	case !hasTarget:
		return fmt.Sprintf("Vertex %s is not on the %s.", target, kind)
	}
	return ""
}
