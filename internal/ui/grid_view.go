package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"locgrid/internal/dom"
	"locgrid/internal/ui/textutil"
)

const (
	defaultWidth = 80
	minCellWidth = 4
	maxCellWidth = 24
)

// cellState is how a grid cell is drawn.
type cellState int

const (
	cellPlain cellState = iota
	cellTabbable
	cellFocused
)

func (m *AppModel) cellState(cell *dom.Element) cellState {
	if m.Doc.Active() == cell {
		return cellFocused
	}
	if v, _ := cell.Attr(dom.TabIndexAttr); v == "0" {
		return cellTabbable
	}
	return cellPlain
}

func (m *AppModel) render() string {
	width := m.Width
	if width == 0 {
		width = defaultWidth
	}

	var b strings.Builder
	visible := len(m.Grid.Rows())
	title := fmt.Sprintf("Locations (%d of %d)", visible, len(m.Locations))
	b.WriteString(Styles.Title.Render(title) + "\n")

	box := Styles.SearchBox
	if m.Mode() == ModeSearch {
		box = Styles.SearchFocus
	}
	b.WriteString(box.Render(m.Search.View()) + "\n")

	b.WriteString(m.renderGrid(width) + "\n")

	cur := m.Grid.Cursor()
	status := Styles.Status.Render(fmt.Sprintf("%s  row %d, column %d", m.Mode(), cur.Row+1, cur.Column+1))
	switch {
	case m.noticeErr:
		status += "  " + Styles.Error.Render(m.notice)
	case m.notice != "":
		status += "  " + Styles.Hint.Render(m.notice)
	}
	b.WriteString(status + "\n")
	b.WriteString(RenderKeybindHelp(m.KeyHandler.Registry, m.GridConfig, m.Mode(), m.ShowHelp, width))
	return b.String()
}

// renderGrid draws one line per row. Cells are fitted to a common width so
// that columns line up; the first cell (the name) is bold.
func (m *AppModel) renderGrid(width int) string {
	rows := m.Grid.Rows()
	if len(rows) == 0 {
		return Styles.Empty.Render("No locations match.")
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := m.Grid.ColumnsInRow(row)
		if len(cells) == 0 {
			continue
		}
		cellWidth := min(maxCellWidth, max(minCellWidth, width/len(cells)-2))
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			parts = append(parts, renderCell(cell.Text, cellWidth, m.cellState(cell), i == 0))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(lines, "\n")
}

func renderCell(text string, width int, state cellState, lead bool) string {
	label := textutil.Fit(text, width)
	switch state {
	case cellFocused:
		return Styles.Focused.Render(label)
	case cellTabbable:
		return Styles.Tabbable.Render(label)
	}
	if lead {
		return Styles.Lead.Render(label)
	}
	return Styles.Cell.Render(label)
}
