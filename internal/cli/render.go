package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conestack/webresource/pkg/manifest"
	"github.com/conestack/webresource/pkg/resolver"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	baseURL  string // base URL prepended to resource paths
	output   string // output file path; empty prints to stdout
	graceful bool   // substitute placeholders for failing resources
}

// newRenderCmd creates the render command. It loads a manifest,
// resolves the declared resources in dependency order and prints one
// HTML tag per line.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{baseURL: "https://tld.org"}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Resolve a manifest and print the HTML tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.baseURL, "base-url", "b", opts.baseURL, "base URL for resource links")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.graceful, "graceful", false, "render placeholders for failing resources instead of aborting")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	group, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", path, err)
	}
	res, err := resolver.New(group)
	if err != nil {
		return err
	}

	var rendered string
	if opts.graceful {
		rendered, err = resolver.NewGracefulRenderer(res, opts.baseURL, logger).Render()
	} else {
		rendered, err = resolver.NewRenderer(res, opts.baseURL).Render()
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	} else if err := os.WriteFile(opts.output, []byte(rendered+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	prog.done(fmt.Sprintf("Rendered %d resources", len(res.Flat())))
	return nil
}
