// Package grid implements roving-tabindex focus management for a 2D grid.
//
// A Controller attaches to a container element. Rows are descendants tagged
// with the "row" target, cells are descendants tagged "column"; a cell
// belongs to the first row that contains it. Exactly one cell carries
// tabindex="0" and the rest carry "-1", so sequential navigation enters the
// grid at one cell while the configured keys move focus inside it.
//
// The controller never writes its cursor from a key press. It focuses the
// destination cell and lets the resulting focusin event reconcile the cursor.
package grid

import (
	"strconv"

	"locgrid/internal/dom"
	"locgrid/internal/logging"
)

// Target names and attributes the controller reads and writes.
const (
	RowTarget    = "row"
	ColumnTarget = "column"
	RoleAttr     = "role"
	RoleGrid     = "grid"
)

const subsystem = "grid"

// Controller tracks the cursor of one grid container.
type Controller struct {
	doc     *dom.Document
	element *dom.Element
	cfg     Config
	cursor  Cursor
	offs    []func()
}

// Attach validates cfg, marks el as a grid and starts observing it. Cells
// already inside el are initialized in document order.
func Attach(doc *dom.Document, el *dom.Element, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		doc:     doc,
		element: el,
		cfg:     cfg,
		cursor:  cfg.Initial,
	}
	el.SetAttr(RoleAttr, RoleGrid)

	c.offs = append(c.offs,
		doc.ObserveConnected(el, ColumnTarget, c.ColumnAdded),
		el.On(dom.EventFocusIn, func(ev dom.Event) { c.CaptureFocus(ev.Target) }),
		el.On(dom.EventKeyDown, func(ev dom.Event) {
			c.MoveColumn(ev.Key)
			c.MoveRow(ev.Key)
		}),
	)
	for _, cell := range c.Columns() {
		c.ColumnAdded(cell)
	}
	return c, nil
}

// Detach stops observing the container. Attributes already written stay.
func (c *Controller) Detach() {
	for _, off := range c.offs {
		off()
	}
	c.offs = nil
}

// Element returns the grid container.
func (c *Controller) Element() *dom.Element {
	return c.element
}

// Cursor returns the current cursor.
func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// Rows returns the row targets in document order.
func (c *Controller) Rows() []*dom.Element {
	return c.doc.QueryTargets(c.element, RowTarget)
}

// Columns returns every cell in the grid in document order.
func (c *Controller) Columns() []*dom.Element {
	return c.doc.QueryTargets(c.element, ColumnTarget)
}

// ColumnsInRow returns the cells contained by row, in document order.
func (c *Controller) ColumnsInRow(row *dom.Element) []*dom.Element {
	if row == nil {
		return nil
	}
	var out []*dom.Element
	for _, cell := range c.Columns() {
		if row.Contains(cell) {
			out = append(out, cell)
		}
	}
	return out
}

// Tabbable returns the cell with tabindex "0", or nil.
func (c *Controller) Tabbable() *dom.Element {
	for _, cell := range c.Columns() {
		if v, _ := cell.Attr(dom.TabIndexAttr); v == "0" {
			return cell
		}
	}
	return nil
}

// ColumnAdded initializes a newly connected cell: tabbable if it sits at the
// cursor, otherwise not. Cells that already carry a tabindex are left alone.
func (c *Controller) ColumnAdded(cell *dom.Element) {
	if cell.HasAttr(dom.TabIndexAttr) {
		return
	}
	row, column := c.position(cell)
	setTabIndex(cell, row >= 0 && row == c.cursor.Row && column == c.cursor.Column)
}

// CaptureFocus moves the cursor to the focused cell and makes it the only
// tabbable cell. Focus on anything other than one of this grid's cells is
// ignored.
func (c *Controller) CaptureFocus(target *dom.Element) {
	if target == nil || target.Target != ColumnTarget {
		return
	}
	row, column := c.position(target)
	if row < 0 {
		return
	}
	c.cursor = Cursor{Row: row, Column: column}
	for _, cell := range c.Columns() {
		setTabIndex(cell, cell == target)
	}
	logging.Debug(subsystem, "cursor moved to (%d, %d)", row, column)
}

// MoveColumn handles column steps and boundary keys. Steps clamp to the
// cursor row; boundaries go to its first or last cell, or with Ctrl to the
// first cell of the first row or the last cell of the last row.
func (c *Controller) MoveColumn(ev dom.KeyEvent) {
	if delta, ok := c.cfg.ColumnDirections[ev.Key]; ok {
		columns := c.columnsAt(c.cursor.Row)
		focusAt(columns, clamp(c.cursor.Column+delta, 0, len(columns)-1))
		return
	}
	boundary, ok := c.cfg.Boundaries[ev.Key]
	if !ok {
		return
	}
	// Zero means last, like every non-negative value.
	first := boundary < 0
	row := c.cursor.Row
	if ev.Ctrl {
		row = 0
		if !first {
			row = len(c.Rows()) - 1
		}
	}
	columns := c.columnsAt(row)
	if first {
		focusAt(columns, 0)
	} else {
		focusAt(columns, len(columns)-1)
	}
}

// MoveRow handles row steps. The target row is clamped to the grid; the
// column index is kept as is, so a shorter target row focuses nothing.
func (c *Controller) MoveRow(ev dom.KeyEvent) {
	delta, ok := c.cfg.RowDirections[ev.Key]
	if !ok {
		return
	}
	row := clamp(c.cursor.Row+delta, 0, len(c.Rows())-1)
	columns := c.columnsAt(row)
	if !focusAt(columns, c.cursor.Column) {
		logging.Debug(subsystem, "row %d has no column %d", row, c.cursor.Column)
	}
}

// position returns the index of the first row containing cell and the
// cell's index within that row, or (-1, -1).
func (c *Controller) position(cell *dom.Element) (row, column int) {
	rows := c.Rows()
	for i, r := range rows {
		if !r.Contains(cell) {
			continue
		}
		for j, other := range c.ColumnsInRow(r) {
			if other == cell {
				return i, j
			}
		}
		return i, -1
	}
	return -1, -1
}

func (c *Controller) columnsAt(row int) []*dom.Element {
	rows := c.Rows()
	if row < 0 || row >= len(rows) {
		return nil
	}
	return c.ColumnsInRow(rows[row])
}

func focusAt(columns []*dom.Element, i int) bool {
	if i < 0 || i >= len(columns) {
		return false
	}
	columns[i].Focus()
	return true
}

func setTabIndex(cell *dom.Element, tabbable bool) {
	v := -1
	if tabbable {
		v = 0
	}
	cell.SetAttr(dom.TabIndexAttr, strconv.Itoa(v))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
