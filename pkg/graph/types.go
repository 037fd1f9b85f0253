package graph

import (
	"slices"

	"github.com/conestack/webresource/pkg/resource"
)

// =============================================================================
// Graph - Dependency Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for resource dependency
// graphs. Used for tooling output, API responses, and cross-tool
// compatibility.
//
// The format is human-readable and deterministic: the same resource
// tree always serializes to the same bytes.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node describes a single resource in the graph.
type Node struct {
	ID         string `json:"id"`
	Kind       string `json:"kind,omitempty"`       // "script", "link" or "style"
	File       string `json:"file,omitempty"`       // effective file name
	URL        string `json:"url,omitempty"`        // remote resource URL
	Compressed bool   `json:"compressed,omitempty"` // has a compressed variant
	Missing    bool   `json:"missing,omitempty"`    // referenced as dependency but not declared
}

// Edge represents a directed dependency: From depends on To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// =============================================================================
// Resources → Graph Conversion
// =============================================================================

// FromResources converts a flat resource list to its serialization
// format. Nodes are sorted by ID; edges by (From, To). Dependency names
// that no resource in the list declares become placeholder nodes with
// Missing set, so broken graphs still serialize completely.
func FromResources(resources []*resource.Resource) Graph {
	known := make(map[string]bool, len(resources))
	for _, res := range resources {
		known[res.Name()] = true
	}

	out := Graph{
		Nodes: make([]Node, 0, len(resources)),
		Edges: make([]Edge, 0, len(resources)),
	}
	for _, res := range resources {
		out.Nodes = append(out.Nodes, nodeFromResource(res))
		for _, dep := range res.Depends() {
			out.Edges = append(out.Edges, Edge{From: res.Name(), To: dep})
		}
	}

	// Placeholder nodes for undeclared dependency names.
	seen := make(map[string]bool)
	for _, res := range resources {
		for _, dep := range res.Depends() {
			if !known[dep] && !seen[dep] {
				seen[dep] = true
				out.Nodes = append(out.Nodes, Node{ID: dep, Missing: true})
			}
		}
	}

	slices.SortFunc(out.Nodes, func(a, b Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	slices.SortFunc(out.Edges, func(a, b Edge) int {
		if a.From != b.From {
			if a.From < b.From {
				return -1
			}
			return 1
		}
		if a.To < b.To {
			return -1
		}
		if a.To > b.To {
			return 1
		}
		return 0
	})
	return out
}

func nodeFromResource(res *resource.Resource) Node {
	return Node{
		ID:         res.Name(),
		Kind:       res.Kind().String(),
		File:       res.FileName(),
		URL:        res.Remote(),
		Compressed: res.Compressed() != "",
	}
}
