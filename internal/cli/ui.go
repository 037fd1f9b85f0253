package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleGroup for group names in the tree view.
	styleGroup = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	// styleKind for resource kind badges.
	styleKind = lipgloss.NewStyle().Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleExcluded marks nodes pruned by their include flag.
	styleExcluded = lipgloss.NewStyle().Foreground(colorYellow).Strikethrough(true)

	// styleError for error badges.
	styleError = lipgloss.NewStyle().Foreground(colorRed)

	// styleSelected for the TUI cursor line.
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)
