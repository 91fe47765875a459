// Package textutil fits cell labels into fixed terminal columns.
package textutil

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks a truncated label.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most width columns, ending in Ellipsis when
// anything was cut. Wide runes are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// Fit truncates or right-pads s to exactly width columns, so labels line
// up across grid rows.
func Fit(s string, width int) string {
	s = Truncate(s, width)
	if w := runewidth.StringWidth(s); w < width {
		return runewidth.FillRight(s, width)
	}
	return s
}
