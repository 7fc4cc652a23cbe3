// ABOUTME: Node-link interchange document written for the external executor to consume.
// ABOUTME: Serializes a model into ordered vertex and edge records and writes the per-generation JSON file.
package interchange

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/grafo-labs/grafo/model"
)

// Document is the node-link form of a model: an ordered list of vertex
// records and an ordered list of edge records. The executor reads this file;
// nothing on this side interprets it further.
type Document struct {
	Directed   bool         `json:"directed"`
	Multigraph bool         `json:"multigraph"`
	Kind       string       `json:"kind"`
	Nodes      []NodeRecord `json:"nodes"`
	Links      []LinkRecord `json:"links"`
}

// NodeRecord is one vertex entry. The network-only fields are omitted for the
// other variants.
type NodeRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Type    string `json:"type,omitempty"`
	Flow    *int   `json:"flow,omitempty"`
	MinFlow *int   `json:"min_flow,omitempty"`
	MaxFlow *int   `json:"max_flow,omitempty"`
}

// LinkRecord is one edge entry. Restriction, Flow, and Cost are present only
// for network documents.
type LinkRecord struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Weight      int    `json:"weight"`
	Restriction *int   `json:"restriction,omitempty"`
	Flow        *int   `json:"flow,omitempty"`
	Cost        *int   `json:"cost,omitempty"`
}

// Serialize converts a model into its interchange document.
func Serialize(g *model.Graph) *Document {
	doc := &Document{
		Directed: g.Kind().Directed(),
		Kind:     g.Kind().String(),
		Nodes:    make([]NodeRecord, 0, g.VertexCount()),
		Links:    make([]LinkRecord, 0, g.EdgeCount()),
	}
	for _, v := range g.Vertices() {
		rec := NodeRecord{ID: v.ID}
		switch g.Kind() {
		case model.KindDigraph:
			rec.Name = v.Name
		case model.KindNetwork:
			rec.Type = string(v.Role)
			rec.Flow = v.Flow
			rec.MinFlow = v.MinFlow
			rec.MaxFlow = v.MaxFlow
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, e := range g.Edges() {
		link := LinkRecord{Source: e.From, Target: e.To, Weight: e.Weight}
		if g.Kind() == model.KindNetwork {
			restriction, flow, cost := e.Restriction, e.Flow, e.Cost
			link.Restriction = &restriction
			link.Flow = &flow
			link.Cost = &cost
		}
		doc.Links = append(doc.Links, link)
	}
	return doc
}

// DocumentPath returns the per-generation path the interchange document is
// written to: <dir>/<generation>.json.
func DocumentPath(dir string, generation uint64) string {
	return filepath.Join(dir, strconv.FormatUint(generation, 10)+".json")
}

// ResultPath returns the per-generation path the executor writes its result
// to: <dir>/<generation>-final.txt.
func ResultPath(dir string, generation uint64) string {
	return filepath.Join(dir, strconv.FormatUint(generation, 10)+"-final.txt")
}

// WriteDocument serializes the model and writes it to the generation's
// document path, creating the data directory if needed. It returns the path
// written, which becomes the first positional argument of the executor call.
func WriteDocument(dir string, generation uint64, g *model.Graph) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(Serialize(g), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	path := DocumentPath(dir, generation)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write document %s: %w", path, err)
	}
	return path, nil
}
