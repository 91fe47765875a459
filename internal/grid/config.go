package grid

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrOverlappingKeys is returned when a key is bound in more than one map.
	ErrOverlappingKeys = errors.New("key bound more than once")
	// ErrInvalidCursor is returned for a negative initial cursor.
	ErrInvalidCursor = errors.New("initial cursor must be non-negative")
)

// Cursor is the active grid position. Row indexes the grid's rows; Column
// counts only the cells of that row.
type Cursor struct {
	Row    int
	Column int
}

// Config holds the caller-supplied key bindings and the initial cursor.
type Config struct {
	Initial Cursor

	// ColumnDirections maps a key to a signed column step.
	ColumnDirections map[string]int
	// RowDirections maps a key to a signed row step.
	RowDirections map[string]int
	// Boundaries maps a key to a boundary intent: negative means the first
	// column, zero or positive the last. Ctrl on the key press also jumps to
	// the first or last row.
	Boundaries map[string]int
}

// DefaultConfig binds the arrow keys and home/end, starting at (0, 0).
func DefaultConfig() Config {
	return Config{
		ColumnDirections: map[string]int{"left": -1, "right": 1},
		RowDirections:    map[string]int{"up": -1, "down": 1},
		Boundaries:       map[string]int{"home": -1, "end": 1},
	}
}

// Validate checks that no key appears in two maps and that the initial
// cursor is in range.
func (c Config) Validate() error {
	if c.Initial.Row < 0 || c.Initial.Column < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidCursor, c.Initial.Row, c.Initial.Column)
	}
	groups := []struct {
		name string
		keys map[string]int
	}{
		{"column directions", c.ColumnDirections},
		{"row directions", c.RowDirections},
		{"boundaries", c.Boundaries},
	}
	owner := make(map[string]string)
	for _, g := range groups {
		keys := make([]string, 0, len(g.keys))
		for k := range g.keys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("%w: %q in %s and %s", ErrOverlappingKeys, k, prev, g.name)
			}
			owner[k] = g.name
		}
	}
	return nil
}
