// ABOUTME: Per-variant algorithm catalog with each algorithm's extra-argument requirement.
// ABOUTME: Loadable from YAML so deployments can extend the executor's algorithm set without a rebuild.
package executor

import (
	"fmt"
	"os"

	"github.com/grafo-labs/grafo/model"
	"gopkg.in/yaml.v3"
)

// ExtraKind says what the fourth positional argument of a run carries.
type ExtraKind string

const (
	// ExtraNone means the placeholder "0" is passed.
	ExtraNone ExtraKind = ""
	// ExtraStartVertex means the extra is a vertex ID (e.g. Dijkstra's start).
	ExtraStartVertex ExtraKind = "start_vertex"
	// ExtraTargetFlow means the extra is a target flow amount.
	ExtraTargetFlow ExtraKind = "target_flow"
)

// Algorithm is one entry of the catalog.
type Algorithm struct {
	Name  string    `yaml:"name"`
	Label string    `yaml:"label"`
	Extra ExtraKind `yaml:"extra,omitempty"`
}

// Catalog maps a variant name ("graph", "digraph", "network") to the
// algorithms its executor understands.
type Catalog map[string][]Algorithm

// DefaultCatalog returns the algorithms the stock executors ship with.
func DefaultCatalog() Catalog {
	return Catalog{
		"graph": {
			{Name: "fleury", Label: "Fleury"},
			{Name: "idfs", Label: "Iterative DFS"},
			{Name: "rdfs", Label: "Recursive DFS"},
			{Name: "bfs", Label: "BFS"},
			{Name: "kruskal", Label: "Kruskal"},
			{Name: "prim", Label: "Prim"},
		},
		"digraph": {
			{Name: "dijkstra", Label: "Dijkstra", Extra: ExtraStartVertex},
			{Name: "floyd", Label: "Floyd-Warshall"},
		},
		"network": {
			{Name: "ford", Label: "Ford-Fulkerson"},
			{Name: "mincycle", Label: "Minimum cost with cycles", Extra: ExtraTargetFlow},
			{Name: "minpaths", Label: "Minimum cost with paths", Extra: ExtraTargetFlow},
			{Name: "simplex", Label: "Simplex in networks"},
		},
	}
}

// LoadCatalog reads a YAML catalog file. A missing path returns the defaults.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return c, nil
}

// For returns the algorithms available for a variant.
func (c Catalog) For(kind model.Kind) []Algorithm {
	return c[kind.String()]
}

// Find looks up one algorithm by name for a variant.
func (c Catalog) Find(kind model.Kind, name string) (Algorithm, bool) {
	for _, a := range c[kind.String()] {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}
