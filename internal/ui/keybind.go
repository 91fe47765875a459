package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps app-level keys to commands.
// Keys use Bubble Tea notation: "q", "esc", "ctrl+c", "shift+tab".
// Keys that are not bound here fall through to the focused widget.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command in all modes.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes. Otherwise the
// key is only consumed, and only hinted, in the listed modes.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command for a key in the given mode, or nil.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// Hints returns the bound keys with descriptions for a mode, sorted by key.
// Bindings without a description are omitted.
func (r *KeybindRegistry) Hints(mode AppMode) []key.Binding {
	keys := make([]string, 0, len(r.bindings))
	for seq, cmd := range r.bindings {
		if cmd == nil || r.descriptions[seq] == "" || !r.appliesToMode(seq, mode) {
			continue
		}
		keys = append(keys, seq)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, r.descriptions[k]),
		))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(seq string, mode AppMode) bool {
	modes, ok := r.modeFilter[seq]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq trims and lowercases modifier prefixes; the key itself keeps
// its case so "G" and "g" stay distinct.
func normalizeSeq(seq string) string {
	seq = strings.TrimSpace(seq)
	if seq == "space" {
		return " "
	}
	for _, mod := range []string{"CTRL+", "ALT+", "SHIFT+"} {
		if strings.HasPrefix(seq, mod) && len(seq) > len(mod) {
			seq = strings.ToLower(mod) + seq[len(mod):]
		}
	}
	return seq
}

// KeyHandler dispatches key presses to the registry for the current mode.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should
// not be passed to the search box or the grid.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}
