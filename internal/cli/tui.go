package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/conestack/webresource/pkg/resource"
)

// =============================================================================
// browserModel - Interactive resolved-order browser
// =============================================================================

// browserModel is the bubbletea model listing resources in resolved
// order. The detail pane shows the selected resource's attributes.
type browserModel struct {
	resources []*resource.Resource
	cursor    int
	height    int
	offset    int
}

func newBrowserModel(resources []*resource.Resource) browserModel {
	return browserModel{resources: resources, height: 15}
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.resources)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Resolved Resources"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.resources) {
		end = len(m.resources)
	}

	for i := m.offset; i < end; i++ {
		res := m.resources[i]
		line := fmt.Sprintf("%3d  %s %s", i+1, styleKind.Render("["+res.Kind().String()+"]"), res.Name())
		if i == m.cursor {
			line = styleSelected.Render("▸") + line[1:]
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.resources) > 0 {
		b.WriteString("\n")
		b.WriteString(m.detail(m.resources[m.cursor]))
	}
	return b.String()
}

// detail renders the attribute pane for the selected resource.
func (m browserModel) detail(res *resource.Resource) string {
	var parts []string
	if deps := res.Depends(); len(deps) > 0 {
		parts = append(parts, "depends: "+strings.Join(deps, ", "))
	}
	switch {
	case res.URLOnly():
		parts = append(parts, "external URL")
	case res.Directory() == "":
		parts = append(parts, "file: "+res.FileName(), styleError.Render("no directory"))
	default:
		parts = append(parts, "file: "+res.FileName())
	}
	if path := res.Path(); path != "" {
		parts = append(parts, "path: "+path)
	}
	return styleDim.Render(strings.Join(parts, "  ·  "))
}
