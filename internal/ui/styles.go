package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the focused cell, keys
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - for the header

	BoxCompact  lipgloss.Style // Rounded box around the full help
	SearchBox   lipgloss.Style // Search input, unfocused
	SearchFocus lipgloss.Style // Search input, focused

	Cell     lipgloss.Style // Grid cell, not focusable by Tab
	Tabbable lipgloss.Style // The roving tab stop while focus is elsewhere
	Focused  lipgloss.Style // The focused cell
	Lead     lipgloss.Style // First cell of a row (location name)

	Hint   lipgloss.Style // Help/hint text (muted color)
	Status lipgloss.Style // Status line (accent color)
	Empty  lipgloss.Style // Empty state text (muted, italic)
	Error  lipgloss.Style // Error text
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	SearchBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	SearchFocus: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Cell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Tabbable: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Underline(true).
		Padding(0, 1),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Reverse(true).
		Bold(true).
		Padding(0, 1),
	Lead: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Padding(0, 1),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
