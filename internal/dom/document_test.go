package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func el(d *Document, tag, target string) *Element {
	e := d.CreateElement(tag)
	e.Target = target
	return e
}

func TestContains(t *testing.T) {
	d := New()
	row := el(d, "div", "row")
	cell := el(d, "span", "column")
	d.Append(d.Body(), row)
	d.Append(row, cell)

	assert.True(t, row.Contains(cell))
	assert.True(t, row.Contains(row), "contains is inclusive")
	assert.False(t, cell.Contains(row))
	assert.True(t, cell.Connected())

	d.Remove(row)
	assert.False(t, cell.Connected())
	assert.True(t, row.Contains(cell), "detached subtree keeps its shape")
}

func TestAppend_NotifiesObserversInDocumentOrder(t *testing.T) {
	d := New()
	grid := el(d, "div", "")
	d.Append(d.Body(), grid)

	var seen []string
	d.ObserveConnected(grid, "column", func(e *Element) {
		seen = append(seen, e.Text)
	})

	row := el(d, "div", "row")
	for _, txt := range []string{"a", "b", "c"} {
		c := el(d, "span", "column")
		c.Text = txt
		d.Append(row, c)
	}
	assert.Empty(t, seen, "detached subtree is not connected yet")

	d.Append(grid, row)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestAppend_ObserverScopedToSubtree(t *testing.T) {
	d := New()
	grid := el(d, "div", "")
	other := el(d, "div", "")
	d.Append(d.Body(), grid)
	d.Append(d.Body(), other)

	count := 0
	off := d.ObserveConnected(grid, "column", func(*Element) { count++ })

	d.Append(other, el(d, "span", "column"))
	assert.Equal(t, 0, count)

	d.Append(grid, el(d, "span", "column"))
	assert.Equal(t, 1, count)

	off()
	d.Append(grid, el(d, "span", "column"))
	assert.Equal(t, 1, count)
}

func TestFocus_DispatchesFocusInWithBubbling(t *testing.T) {
	d := New()
	grid := el(d, "div", "")
	cell := el(d, "span", "column")
	d.Append(d.Body(), grid)
	d.Append(grid, cell)

	var got []Event
	grid.On(EventFocusIn, func(ev Event) { got = append(got, ev) })

	cell.Focus()
	require.Len(t, got, 1)
	assert.Same(t, cell, got[0].Target)
	assert.Same(t, grid, got[0].Current)
	assert.Same(t, cell, d.Active())

	cell.Focus()
	assert.Len(t, got, 1, "focusing the active element is a no-op")
}

func TestFocus_DisconnectedElementIgnored(t *testing.T) {
	d := New()
	cell := el(d, "span", "column")
	cell.Focus()
	assert.Nil(t, d.Active())
}

func TestDispatch_IsSerialized(t *testing.T) {
	d := New()
	grid := el(d, "div", "")
	a := el(d, "span", "column")
	b := el(d, "span", "column")
	d.Append(d.Body(), grid)
	d.Append(grid, a)
	d.Append(grid, b)
	a.Focus()

	var order []string
	inKey := false
	grid.On(EventKeyDown, func(ev Event) {
		inKey = true
		order = append(order, "key:start")
		b.Focus()
		order = append(order, "key:end")
		inKey = false
	})
	grid.On(EventFocusIn, func(ev Event) {
		assert.False(t, inKey, "focus listener must not run inside key listener")
		assert.Same(t, b, ev.Target)
		order = append(order, "focus")
	})

	d.DispatchKey(KeyEvent{Key: "right"})
	assert.Equal(t, []string{"key:start", "key:end", "focus"}, order)
	assert.Same(t, b, d.Active())
}

func TestDispatchKey_TargetsActiveElement(t *testing.T) {
	d := New()
	grid := el(d, "div", "")
	cell := el(d, "span", "column")
	d.Append(d.Body(), grid)
	d.Append(grid, cell)

	var targets []*Element
	d.Body().On(EventKeyDown, func(ev Event) { targets = append(targets, ev.Target) })

	d.DispatchKey(KeyEvent{Key: "x"})
	cell.Focus()
	d.DispatchKey(KeyEvent{Key: "x"})

	require.Len(t, targets, 2)
	assert.Same(t, d.Body(), targets[0])
	assert.Same(t, cell, targets[1])
}

func TestRemove_ClearsActiveInsideSubtree(t *testing.T) {
	d := New()
	row := el(d, "div", "row")
	cell := el(d, "span", "column")
	d.Append(d.Body(), row)
	d.Append(row, cell)
	cell.Focus()

	d.Clear(d.Body())
	assert.Nil(t, d.Active())
	assert.Empty(t, d.Body().Children())
}

func TestListenerOff(t *testing.T) {
	d := New()
	calls := 0
	off := d.Body().On(EventKeyDown, func(Event) { calls++ })
	d.DispatchKey(KeyEvent{Key: "a"})
	off()
	d.DispatchKey(KeyEvent{Key: "a"})
	assert.Equal(t, 1, calls)
}

func TestFocusNext_WalksTabbablesAndWraps(t *testing.T) {
	d := New()
	search := el(d, "input", "")
	search.SetAttr(TabIndexAttr, "0")
	grid := el(d, "div", "")
	a := el(d, "span", "column")
	a.SetAttr(TabIndexAttr, "-1")
	b := el(d, "span", "column")
	b.SetAttr(TabIndexAttr, "0")
	d.Append(d.Body(), search)
	d.Append(d.Body(), grid)
	d.Append(grid, a)
	d.Append(grid, b)

	assert.Equal(t, []*Element{search, b}, d.Tabbables())

	assert.Same(t, search, d.FocusNext())
	assert.Same(t, b, d.FocusNext(), "cells with tabindex -1 are skipped")
	assert.Same(t, search, d.FocusNext(), "wraps to the start")

	assert.Same(t, b, d.FocusPrev())
	assert.Same(t, search, d.FocusPrev())
}

func TestFocusNext_FromUntabbableElement(t *testing.T) {
	d := New()
	a := el(d, "span", "")
	a.SetAttr(TabIndexAttr, "-1")
	b := el(d, "span", "")
	b.SetAttr(TabIndexAttr, "0")
	c := el(d, "span", "")
	c.SetAttr(TabIndexAttr, "0")
	d.Append(d.Body(), b)
	d.Append(d.Body(), a)
	d.Append(d.Body(), c)

	a.Focus()
	assert.Same(t, c, d.FocusNext())
}

func TestFocusNext_NoTabbables(t *testing.T) {
	d := New()
	d.Append(d.Body(), el(d, "span", ""))
	assert.Nil(t, d.FocusNext())
	assert.Nil(t, d.Active())
}

func TestQueryTargets_DocumentOrder(t *testing.T) {
	d := New()
	grid := el(d, "div", "")
	d.Append(d.Body(), grid)
	r1 := el(d, "div", "row")
	r2 := el(d, "div", "row")
	c1 := el(d, "span", "column")
	c2 := el(d, "span", "column")
	c3 := el(d, "span", "column")
	d.Append(grid, r1)
	d.Append(grid, r2)
	d.Append(r2, c3)
	d.Append(r1, c1)
	d.Append(r1, c2)

	assert.Equal(t, []*Element{r1, r2}, d.QueryTargets(grid, "row"))
	assert.Equal(t, []*Element{c1, c2, c3}, d.QueryTargets(grid, "column"))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want KeyEvent
	}{
		{"left", KeyEvent{Key: "left"}},
		{"ctrl+home", KeyEvent{Key: "home", Ctrl: true}},
		{"shift+tab", KeyEvent{Key: "tab", Shift: true}},
		{"alt+ctrl+end", KeyEvent{Key: "end", Ctrl: true, Alt: true}},
		{"+", KeyEvent{Key: "+"}},
		{"ctrl+", KeyEvent{Key: "ctrl+"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKey(tt.in))
		})
	}
	assert.Equal(t, "ctrl+home", ParseKey("ctrl+home").String())
}
