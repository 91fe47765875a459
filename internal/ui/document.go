package ui

import (
	"locgrid/internal/dom"
	"locgrid/internal/grid"
	"locgrid/internal/location"
)

// Element IDs of the fixed parts of the document.
const (
	searchID    = "search"
	locationsID = "locations"
)

// buildDocument creates body > [search input, locations grid container].
// The search input is a tab stop; the grid container is not.
func buildDocument() (doc *dom.Document, search, container *dom.Element) {
	doc = dom.New()

	search = doc.CreateElement("input")
	search.ID = searchID
	search.SetAttr(dom.TabIndexAttr, "0")
	doc.Append(doc.Body(), search)

	container = doc.CreateElement("section")
	container.ID = locationsID
	doc.Append(doc.Body(), container)
	return doc, search, container
}

// renderRows replaces the container's rows with one row per location. Rows
// and cells are always fresh elements, so the grid controller initializes
// every cell as it connects.
func renderRows(doc *dom.Document, container *dom.Element, locs []location.Location) {
	doc.Clear(container)
	for _, loc := range locs {
		row := doc.CreateElement("article")
		row.ID = loc.ID
		row.Target = grid.RowTarget
		for _, label := range loc.Cells() {
			cell := doc.CreateElement("span")
			cell.Text = label
			cell.Target = grid.ColumnTarget
			doc.Append(row, cell)
		}
		doc.Append(container, row)
	}
}
