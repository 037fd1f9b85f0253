package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/conestack/webresource/pkg/resource"
)

func script(t *testing.T, name string, depends ...string) *resource.Resource {
	t.Helper()
	r, err := resource.NewScript(resource.Options{
		Name:    name,
		File:    name + ".js",
		Depends: depends,
	})
	if err != nil {
		t.Fatalf("NewScript(%s): %v", name, err)
	}
	return r
}

func TestFromResources(t *testing.T) {
	tests := []struct {
		name      string
		build     func() []*resource.Resource
		wantNodes int
		wantEdges int
		check     func(t *testing.T, g Graph)
	}{
		{
			name:      "Empty",
			build:     func() []*resource.Resource { return nil },
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name: "Simple",
			build: func() []*resource.Resource {
				return []*resource.Resource{script(t, "b", "a"), script(t, "a")}
			},
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g Graph) {
				// Nodes sort by ID regardless of declaration order.
				if g.Nodes[0].ID != "a" || g.Nodes[1].ID != "b" {
					t.Errorf("node order = [%s %s], want [a b]", g.Nodes[0].ID, g.Nodes[1].ID)
				}
				if g.Edges[0].From != "b" || g.Edges[0].To != "a" {
					t.Errorf("edge = %+v, want b→a", g.Edges[0])
				}
				if g.Nodes[0].Kind != "script" || g.Nodes[0].File != "a.js" {
					t.Errorf("node a = %+v, want script kind and a.js file", g.Nodes[0])
				}
			},
		},
		{
			name: "MissingDependency",
			build: func() []*resource.Resource {
				return []*resource.Resource{script(t, "app", "ghost")}
			},
			wantNodes: 2,
			wantEdges: 1,
			check: func(t *testing.T, g Graph) {
				if g.Nodes[1].ID != "ghost" || !g.Nodes[1].Missing {
					t.Errorf("placeholder node = %+v, want ghost with Missing set", g.Nodes[1])
				}
			},
		},
		{
			name: "Diamond",
			build: func() []*resource.Resource {
				return []*resource.Resource{
					script(t, "a", "b", "c"),
					script(t, "b", "d"),
					script(t, "c", "d"),
					script(t, "d"),
				}
			},
			wantNodes: 4,
			wantEdges: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := FromResources(tt.build())
			if len(g.Nodes) != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", len(g.Nodes), tt.wantNodes)
			}
			if len(g.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(g.Edges), tt.wantEdges)
			}
			if tt.check != nil {
				tt.check(t, g)
			}
		})
	}
}

func TestMarshalDeterministic(t *testing.T) {
	resources := []*resource.Resource{script(t, "b", "a"), script(t, "a")}
	first, err := Marshal(resources)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(resources)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Marshal output not deterministic")
	}
}

func TestWriteReadFile(t *testing.T) {
	resources := []*resource.Resource{script(t, "app", "jquery"), script(t, "jquery")}
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteFile(resources, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("written graph file is empty")
	}

	g, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Errorf("round trip = %d nodes %d edges, want 2 nodes 1 edge", len(g.Nodes), len(g.Edges))
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("{not json"))); err == nil {
		t.Error("Read should reject malformed JSON")
	}
}
