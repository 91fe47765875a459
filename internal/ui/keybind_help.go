package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"locgrid/internal/grid"
)

// KeyMap implements help.KeyMap from the registry and the grid key config.
type KeyMap struct {
	registry *KeybindRegistry
	grid     grid.Config
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry, grid config and mode.
func NewKeyMap(registry *KeybindRegistry, cfg grid.Config, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, grid: cfg, mode: mode}
}

// ShortHelp returns app bindings, plus grid movement in grid mode.
func (km *KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	if km.mode == ModeGrid {
		out = append(out, GridBindings(km.grid)...)
	}
	if km.registry != nil {
		out = append(out, km.registry.Hints(km.mode)...)
	}
	return out
}

// FullHelp returns grid movement and app bindings as two columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	if km.mode == ModeGrid {
		if g := GridBindings(km.grid); len(g) > 0 {
			cols = append(cols, g)
		}
	}
	if km.registry != nil {
		if h := km.registry.Hints(km.mode); len(h) > 0 {
			cols = append(cols, h)
		}
	}
	return cols
}

// GridBindings describes the configured grid keys, one binding per group.
func GridBindings(cfg grid.Config) []key.Binding {
	var out []key.Binding
	add := func(keys []string, desc string) {
		if len(keys) == 0 {
			return
		}
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		))
	}
	add(sortedKeys(cfg.ColumnDirections), "column")
	add(sortedKeys(cfg.RowDirections), "row")
	add(sortedKeys(cfg.Boundaries), "first/last")
	return out
}

// sortedKeys orders keys by their value, then by name, so "left" precedes "right".
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] < m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// RenderKeybindHelp renders the help bar for a mode. Full renders the
// multi-column view shown after "?".
func RenderKeybindHelp(registry *KeybindRegistry, cfg grid.Config, mode AppMode, full bool, width int) string {
	km := NewKeyMap(registry, cfg, mode)

	helpModel := help.New()
	helpModel.Width = width
	helpModel.ShowAll = full
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = Styles.Hint
	helpModel.Styles.ShortSeparator = Styles.Hint
	helpModel.Styles.FullKey = helpModel.Styles.ShortKey
	helpModel.Styles.FullDesc = Styles.Hint
	helpModel.Styles.FullSeparator = Styles.Hint

	content := helpModel.View(km)
	if content == "" {
		return ""
	}
	if !full {
		return content
	}
	return Styles.BoxCompact.Render(content)
}
