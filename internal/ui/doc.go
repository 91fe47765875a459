// Package ui is the Bubble Tea host for the location grid.
//
// The model owns a dom.Document holding a search input and a locations
// container, with a grid.Controller attached to the container. Terminal keys
// are resolved in this order:
//   - KeybindRegistry: app keys (quit, tab order, search, help), filtered by AppMode
//   - the search box, while it has focus
//   - the document, as a keydown event at the focused grid cell
//
// AppMode is not stored; it is derived from which element has focus.
package ui
