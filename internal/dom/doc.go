// Package dom is a minimal document model for terminal widgets.
//
// It provides the pieces a browser gives a web component for free:
//   - Element: a tree node with attributes, text, an optional target name and event listeners
//   - Document: owns the tree, the active (focused) element and a FIFO event queue
//   - KeyEvent: a key identifier plus modifier flags, parsed from Bubble Tea key strings
//
// All events (subtree connection, focus, key presses) are serialized through the
// document queue. A dispatch requested while another one is running is appended
// to the queue and drained by the outer loop, so listeners never re-enter.
package dom
