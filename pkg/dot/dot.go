// Package dot exports resource dependency graphs in Graphviz DOT format.
//
// The export works on the flattened resource list rather than the
// resolved order, so graphs with conflicts or cycles can still be
// visualized for debugging.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/conestack/webresource/pkg/resource"
)

// Marshal returns a Graphviz DOT digraph of the given resources. Each
// resource becomes a node shaped by its kind; each declared dependency
// becomes an edge from the dependent resource to its dependency.
// Dependency names without a matching resource are rendered as dashed
// placeholder nodes, making missing dependencies visible.
func Marshal(resources []*resource.Resource) string {
	var buf bytes.Buffer
	buf.WriteString("digraph webresource {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n\n")

	known := make(map[string]bool, len(resources))
	for _, res := range resources {
		known[res.Name()] = true
	}

	for _, res := range resources {
		fmt.Fprintf(&buf, "  %q [shape=%s];\n", res.Name(), shape(res.Kind()))
	}
	buf.WriteString("\n")

	missing := make(map[string]bool)
	for _, res := range resources {
		for _, dep := range res.Depends() {
			if !known[dep] && !missing[dep] {
				missing[dep] = true
				fmt.Fprintf(&buf, "  %q [shape=box, style=dashed];\n", dep)
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", res.Name(), dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func shape(k resource.Kind) string {
	switch k {
	case resource.KindScript:
		return "box"
	case resource.KindStyle:
		return "ellipse"
	default:
		return "hexagon"
	}
}

// RenderSVG renders the resources' dependency graph as an SVG image
// using Graphviz.
func RenderSVG(ctx context.Context, resources []*resource.Resource) ([]byte, error) {
	dotSrc := Marshal(resources)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
