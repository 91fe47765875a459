package dom

// Event types dispatched by a Document.
const (
	EventFocusIn = "focusin"
	EventKeyDown = "keydown"
)

// Event is delivered to listeners. Target is the element the event was
// dispatched at; Current is the element whose listener is running.
type Event struct {
	Type    string
	Target  *Element
	Current *Element
	Key     KeyEvent
}

// Listener handles a dispatched event.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

// Element is a node in a Document tree.
type Element struct {
	Tag    string
	ID     string
	Text   string
	Target string // "row", "column", or empty

	doc       *Document
	parent    *Element
	children  []*Element
	attrs     map[string]string
	listeners map[string][]listenerEntry
	nextID    int
}

// Document returns the owning document.
func (e *Element) Document() *Document {
	return e.doc
}

// Parent returns the parent element, or nil for the root and detached elements.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the element's children.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Attr returns the attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is set.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttr clears an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Connected reports whether the element is attached to its document's root.
func (e *Element) Connected() bool {
	return e.doc != nil && e.doc.root.Contains(e)
}

// Focus asks the owning document to focus the element.
func (e *Element) Focus() {
	if e.doc != nil {
		e.doc.Focus(e)
	}
}

// On registers a listener for an event type and returns a func that removes it.
func (e *Element) On(eventType string, fn Listener) (off func()) {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.nextID++
	id := e.nextID
	e.listeners[eventType] = append(e.listeners[eventType], listenerEntry{id: id, fn: fn})
	return func() {
		entries := e.listeners[eventType]
		for i, l := range entries {
			if l.id == id {
				e.listeners[eventType] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// walk visits e and its descendants in document order.
func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}
