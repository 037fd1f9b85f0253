package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/conestack/webresource/pkg/manifest"
	"github.com/conestack/webresource/pkg/resolver"
	"github.com/conestack/webresource/pkg/resource"
)

// newTreeCmd creates the tree command. It shows the declared group tree
// with include state and dependencies; with --interactive it opens a
// browser over the resolved order instead.
func newTreeCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "tree [manifest]",
		Short: "Show the declared resource tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group, err := manifest.Load(args[0])
			if err != nil {
				return fmt.Errorf("load manifest %s: %w", args[0], err)
			}
			if interactive {
				return runBrowser(group)
			}
			var b strings.Builder
			writeTree(&b, group, "")
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the resolved order interactively")

	return cmd
}

// writeTree renders the subtree rooted at n with box-drawing prefixes.
func writeTree(b *strings.Builder, n resource.Node, prefix string) {
	b.WriteString(nodeLabel(n))
	b.WriteString("\n")
	g, ok := n.(*resource.Group)
	if !ok {
		return
	}
	members := g.Members()
	for i, member := range members {
		connector, childPrefix := "├─ ", prefix+"│  "
		if i == len(members)-1 {
			connector, childPrefix = "└─ ", prefix+"   "
		}
		b.WriteString(prefix + connector)
		writeTree(b, member, childPrefix)
	}
}

func nodeLabel(n resource.Node) string {
	name := n.Name()
	if name == "" {
		name = "(unnamed)"
	}
	switch m := n.(type) {
	case *resource.Group:
		label := styleGroup.Render(name)
		if !m.Included() {
			label = styleExcluded.Render(name) + " " + styleDim.Render("(excluded)")
		}
		return label
	case *resource.Resource:
		label := styleKind.Render("["+m.Kind().String()+"] ") + name
		if !m.Included() {
			label = styleKind.Render("["+m.Kind().String()+"] ") + styleExcluded.Render(name)
		}
		if deps := m.Depends(); len(deps) > 0 {
			label += styleDim.Render(fmt.Sprintf(" → %s", strings.Join(deps, ", ")))
		}
		return label
	}
	return name
}

// runBrowser resolves the tree and opens the interactive resource list.
func runBrowser(group *resource.Group) error {
	res, err := resolver.New(group)
	if err != nil {
		return err
	}
	resources, err := res.Resolve()
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newBrowserModel(resources)).Run()
	return err
}
