package ui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	oteltrace "go.opentelemetry.io/otel/trace"

	"locgrid/internal/dom"
	"locgrid/internal/grid"
	"locgrid/internal/location"
	"locgrid/internal/logging"
	"locgrid/internal/trace"
)

// Options configures NewAppModel.
type Options struct {
	Locations []location.Location
	Grid      grid.Config
	Tracer    oteltrace.Tracer   // nil = no tracing
	Clipboard func(string) error // nil = system clipboard
}

// AppModel is the root model. It owns the document, the grid controller
// attached to the locations container and the search box.
type AppModel struct {
	Doc        *dom.Document
	Grid       *grid.Controller
	GridConfig grid.Config
	Search     textinput.Model
	KeyHandler *KeyHandler
	Locations  []location.Location
	Tracer     oteltrace.Tracer
	ShowHelp   bool
	Width      int

	searchEl  *dom.Element
	lastQuery string
	clipboard func(string) error
	notice    string
	noticeErr bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncSearchFocus()
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Search.Width = max(10, msg.Width-8)
		return nil
	case FocusNextMsg:
		m.focusSequential(m.Doc.FocusNext)
		return nil
	case FocusPrevMsg:
		m.focusSequential(m.Doc.FocusPrev)
		return nil
	case FocusSearchMsg:
		m.Doc.Focus(m.searchEl)
		return nil
	case FocusGridMsg:
		m.focusGrid()
		return nil
	case ToggleHelpMsg:
		m.ShowHelp = !m.ShowHelp
		return nil
	case CopyCellMsg:
		m.copyCell()
		return nil
	case tea.KeyMsg:
		m.notice, m.noticeErr = "", false
		if m.KeyHandler != nil {
			if consumed, keyCmd := m.KeyHandler.Handle(msg, m.Mode()); consumed {
				return keyCmd
			}
		}
		if m.Mode() == ModeSearch {
			return m.updateSearch(msg)
		}
		m.dispatchGridKey(msg.String())
	}
	return nil
}

// Mode reports ModeSearch while the search box has focus.
func (m *AppModel) Mode() AppMode {
	if m.Doc.Active() == m.searchEl {
		return ModeSearch
	}
	return ModeGrid
}

// Visible returns the locations matching the current search.
func (m *AppModel) Visible() []location.Location {
	return location.Filter(m.Locations, m.lastQuery)
}

func (m *AppModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if q := m.Search.Value(); q != m.lastQuery {
		m.lastQuery = q
		visible := m.Visible()
		renderRows(m.Doc, m.Grid.Element(), visible)
		logging.Debug("ui", "search %q matched %d locations", q, len(visible))
	}
	return cmd
}

// dispatchGridKey sends a key to the grid as a keydown event. When focus is
// outside the grid the key only brings focus back to it.
func (m *AppModel) dispatchGridKey(s string) {
	_, span := m.Tracer.Start(context.Background(), "grid.key",
		oteltrace.WithAttributes(trace.AttrKey.String(s), trace.AttrMode.String(m.Mode().String())))
	defer span.End()

	if active := m.Doc.Active(); active == nil || !m.Grid.Element().Contains(active) {
		m.focusGrid()
	} else {
		m.Doc.DispatchKey(dom.ParseKey(s))
	}
	cur := m.Grid.Cursor()
	span.SetAttributes(trace.AttrCursorRow.Int(cur.Row), trace.AttrCursorColumn.Int(cur.Column))
}

// focusGrid focuses the grid's tab stop. If the search replaced every cell
// and none sits at the cursor, it focuses the first cell instead and lets
// the controller reconcile.
func (m *AppModel) focusGrid() {
	if cell := m.Grid.Tabbable(); cell != nil {
		cell.Focus()
		return
	}
	if cells := m.Grid.Columns(); len(cells) > 0 {
		logging.Debug("ui", "no tab stop in grid, focusing first cell")
		cells[0].Focus()
	}
}

// focusSequential moves along the tab order. Leaving the search box for a
// grid without a tab stop enters the grid through focusGrid.
func (m *AppModel) focusSequential(step func() *dom.Element) {
	if m.Mode() == ModeSearch && m.Grid.Tabbable() == nil && len(m.Grid.Columns()) > 0 {
		m.focusGrid()
		return
	}
	step()
}

// copyCell puts the focused cell's label on the clipboard.
func (m *AppModel) copyCell() {
	active := m.Doc.Active()
	if active == nil || active.Target != grid.ColumnTarget {
		return
	}
	if err := m.clipboard(active.Text); err != nil {
		logging.Error("ui", err, "copy cell %q", active.Text)
		m.notice, m.noticeErr = "Copy failed", true
		return
	}
	m.notice, m.noticeErr = "Copied "+active.Text, false
}

func (m *AppModel) syncSearchFocus() {
	if m.Mode() == ModeSearch {
		if !m.Search.Focused() {
			m.Search.Focus()
		}
		return
	}
	if m.Search.Focused() {
		m.Search.Blur()
	}
}

// NewAppModel creates the root application model and focuses the grid's
// initial tab stop, or the search box when the grid has none.
func NewAppModel(opts Options) (*AppModel, error) {
	doc, searchEl, container := buildDocument()
	ctrl, err := grid.Attach(doc, container, opts.Grid)
	if err != nil {
		return nil, err
	}
	renderRows(doc, container, opts.Locations)

	tracer := opts.Tracer
	if tracer == nil {
		tracer = (*trace.Provider)(nil).Tracer()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "filter by name or tag"
	search.CharLimit = 64
	search.Cursor.SetMode(cursor.CursorStatic)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDescForMode("q", tea.Quit, "quit", []AppMode{ModeGrid})
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "next")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "prev")
	reg.BindWithDescForMode("/", func() tea.Msg { return FocusSearchMsg{} }, "search", []AppMode{ModeGrid})
	reg.BindWithDescForMode("?", func() tea.Msg { return ToggleHelpMsg{} }, "help", []AppMode{ModeGrid})
	reg.BindWithDescForMode("y", func() tea.Msg { return CopyCellMsg{} }, "copy cell", []AppMode{ModeGrid})
	reg.BindWithDescForMode("esc", func() tea.Msg { return FocusGridMsg{} }, "back to grid", []AppMode{ModeSearch})
	reg.BindWithDescForMode("enter", func() tea.Msg { return FocusGridMsg{} }, "", []AppMode{ModeSearch})

	m := &AppModel{
		Doc:        doc,
		Grid:       ctrl,
		GridConfig: opts.Grid,
		Search:     search,
		KeyHandler: NewKeyHandler(reg),
		Locations:  opts.Locations,
		Tracer:     tracer,
		searchEl:   searchEl,
		clipboard:  copyFn,
	}
	if cell := ctrl.Tabbable(); cell != nil {
		cell.Focus()
	} else {
		doc.Focus(searchEl)
	}
	m.syncSearchFocus()
	return m, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
