package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conestack/webresource/pkg/dot"
	"github.com/conestack/webresource/pkg/graph"
	"github.com/conestack/webresource/pkg/manifest"
	"github.com/conestack/webresource/pkg/resolver"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file path; empty prints to stdout
	format string // "dot", "json" or "svg"
}

// newGraphCmd creates the graph command. It exports the dependency
// graph of a manifest's resources as Graphviz DOT or rendered SVG. The
// export uses the flattened resource list, so graphs with unresolvable
// dependencies can still be inspected.
func newGraphCmd() *cobra.Command {
	opts := graphOpts{format: "dot"}

	cmd := &cobra.Command{
		Use:   "graph [manifest]",
		Short: "Export the dependency graph as DOT, JSON or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "json" && opts.format != "svg" {
				return fmt.Errorf("unsupported format: %s", opts.format)
			}
			return runGraph(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout, DOT only)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), json, svg")

	return cmd
}

func runGraph(cmd *cobra.Command, path string, opts *graphOpts) error {
	group, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", path, err)
	}
	res, err := resolver.New(group)
	if err != nil {
		return err
	}
	flat := res.Flat()

	switch opts.format {
	case "svg":
		if opts.output == "" {
			return fmt.Errorf("svg output requires --output")
		}
		svg, err := dot.RenderSVG(cmd.Context(), flat)
		if err != nil {
			return err
		}
		return os.WriteFile(opts.output, svg, 0644)
	case "json":
		if opts.output == "" {
			return graph.Write(flat, cmd.OutOrStdout())
		}
		return graph.WriteFile(flat, opts.output)
	}

	out := dot.Marshal(flat)
	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	return os.WriteFile(opts.output, []byte(out), 0644)
}
