package dom

import "strings"

// KeyEvent is a key press: the key identifier without modifiers, plus the
// modifier flags. Key uses Bubble Tea names ("left", "home", "a").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// ParseKey converts a Bubble Tea key string ("ctrl+home", "shift+tab", "alt+x")
// into a KeyEvent. A lone "+" is the plus key, not a separator.
func ParseKey(s string) KeyEvent {
	var ev KeyEvent
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			ev.Ctrl = true
			s = s[len("ctrl+"):]
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			ev.Alt = true
			s = s[len("alt+"):]
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			ev.Shift = true
			s = s[len("shift+"):]
		default:
			ev.Key = s
			return ev
		}
	}
}

// String renders the event back to Bubble Tea notation.
func (k KeyEvent) String() string {
	var b strings.Builder
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(k.Key)
	return b.String()
}
