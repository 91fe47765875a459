package dom

// TabIndexAttr is the focusability attribute read by sequential navigation.
const TabIndexAttr = "tabindex"

type observer struct {
	id     int
	scope  *Element
	target string
	fn     func(*Element)
}

// Document owns an element tree, the active element and the event queue.
// It is not safe for concurrent use; confine it to one goroutine.
type Document struct {
	root   *Element
	active *Element

	queue       []func()
	dispatching bool

	observers []observer
	nextObsID int
}

// New creates a document with an empty body element.
func New() *Document {
	d := &Document{}
	d.root = &Element{Tag: "body", doc: d}
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.root
}

// Active returns the focused element, or nil when focus is on the body.
func (d *Document) Active() *Element {
	return d.active
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{Tag: tag, doc: d}
}

// Append attaches child as the last child of parent. A child that already has
// a parent is moved. If the child becomes connected, observers are notified
// for every target element in the subtree, in document order.
func (d *Document) Append(parent, child *Element) {
	if child.parent != nil {
		d.Remove(child)
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	if !child.Connected() {
		return
	}
	var connected []*Element
	child.walk(func(e *Element) {
		if e.Target != "" {
			connected = append(connected, e)
		}
	})
	if len(connected) == 0 {
		return
	}
	d.enqueue(func() {
		for _, e := range connected {
			d.notifyConnected(e)
		}
	})
}

// Remove detaches el from its parent. If the active element was inside the
// removed subtree, focus falls back to the body without an event.
func (d *Document) Remove(el *Element) {
	p := el.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == el {
			p.children = append(p.children[:i:i], p.children[i+1:]...)
			break
		}
	}
	el.parent = nil
	if d.active != nil && el.Contains(d.active) {
		d.active = nil
	}
}

// Clear removes all children of el.
func (d *Document) Clear(el *Element) {
	for len(el.children) > 0 {
		d.Remove(el.children[len(el.children)-1])
	}
}

// Focus makes el the active element and dispatches focusin at it.
// Focusing the active element or a disconnected element does nothing.
func (d *Document) Focus(el *Element) {
	if el == nil || el == d.active || !el.Connected() {
		return
	}
	d.active = el
	d.enqueue(func() {
		d.dispatch(Event{Type: EventFocusIn, Target: el})
	})
}

// Blur returns focus to the body.
func (d *Document) Blur() {
	d.active = nil
}

// DispatchKey dispatches keydown at the active element, or the body.
func (d *Document) DispatchKey(k KeyEvent) {
	d.enqueue(func() {
		target := d.active
		if target == nil {
			target = d.root
		}
		d.dispatch(Event{Type: EventKeyDown, Target: target, Key: k})
	})
}

// ObserveConnected calls fn for every element with the given target that
// becomes connected inside scope. It returns a func that stops observing.
func (d *Document) ObserveConnected(scope *Element, target string, fn func(*Element)) (off func()) {
	d.nextObsID++
	id := d.nextObsID
	d.observers = append(d.observers, observer{id: id, scope: scope, target: target, fn: fn})
	return func() {
		for i, o := range d.observers {
			if o.id == id {
				d.observers = append(d.observers[:i:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

// QueryTargets returns the elements inside scope (excluding scope itself)
// whose Target matches, in document order.
func (d *Document) QueryTargets(scope *Element, target string) []*Element {
	var out []*Element
	for _, c := range scope.children {
		c.walk(func(e *Element) {
			if e.Target == target {
				out = append(out, e)
			}
		})
	}
	return out
}

// FocusNext moves focus to the next element with tabindex "0" in document
// order, wrapping at the end. It returns the newly focused element.
func (d *Document) FocusNext() *Element {
	return d.focusSequential(1)
}

// FocusPrev moves focus to the previous tabbable element, wrapping.
func (d *Document) FocusPrev() *Element {
	return d.focusSequential(-1)
}

// Tabbables returns connected elements with tabindex "0" in document order.
func (d *Document) Tabbables() []*Element {
	var out []*Element
	d.root.walk(func(e *Element) {
		if v, ok := e.attrs[TabIndexAttr]; ok && v == "0" {
			out = append(out, e)
		}
	})
	return out
}

func (d *Document) focusSequential(step int) *Element {
	var order []*Element
	d.root.walk(func(e *Element) {
		order = append(order, e)
	})
	start := 0
	for i, e := range order {
		if e == d.active {
			start = i
			break
		}
	}
	n := len(order)
	for i := 1; i <= n; i++ {
		e := order[((start+step*i)%n+n)%n]
		if v, ok := e.attrs[TabIndexAttr]; ok && v == "0" {
			d.Focus(e)
			return e
		}
	}
	return nil
}

func (d *Document) notifyConnected(e *Element) {
	if !e.Connected() {
		return
	}
	obs := make([]observer, len(d.observers))
	copy(obs, d.observers)
	for _, o := range obs {
		if o.target == e.Target && o.scope != e && o.scope.Contains(e) {
			o.fn(e)
		}
	}
}

// dispatch runs listeners from the target up to the root.
func (d *Document) dispatch(ev Event) {
	for n := ev.Target; n != nil; n = n.parent {
		entries := n.listeners[ev.Type]
		if len(entries) == 0 {
			continue
		}
		ev.Current = n
		for _, l := range append([]listenerEntry(nil), entries...) {
			l.fn(ev)
		}
	}
}

// enqueue appends a task and drains the queue unless a drain is already
// running further up the stack.
func (d *Document) enqueue(task func()) {
	d.queue = append(d.queue, task)
	if d.dispatching {
		return
	}
	d.dispatching = true
	defer func() { d.dispatching = false }()
	for len(d.queue) > 0 {
		next := d.queue[0]
		d.queue = d.queue[1:]
		next()
	}
}
