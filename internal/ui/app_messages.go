package ui

// FocusNextMsg moves document focus to the next tab stop (Tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves document focus to the previous tab stop (Shift+Tab).
type FocusPrevMsg struct{}

// FocusSearchMsg focuses the search box.
type FocusSearchMsg struct{}

// FocusGridMsg returns focus to the grid's tab stop.
type FocusGridMsg struct{}

// ToggleHelpMsg switches between the short and the full key help.
type ToggleHelpMsg struct{}

// CopyCellMsg copies the focused cell's label to the clipboard.
type CopyCellMsg struct{}
