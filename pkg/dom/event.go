package dom

import "strings"

// Listener handles a dispatched event.
type Listener func(e *Event)

// Event is dispatched to a target node and bubbles to its ancestors.
type Event struct {
	// Type is the lower-cased event name ("click", "input", ...).
	Type string

	// Target is the node the event was dispatched on.
	Target *Node

	// CurrentTarget is the node whose listeners are currently running.
	CurrentTarget *Node

	// Value carries the control value for input, change and submit events.
	Value string

	// Fields carries named form values for submit events.
	Fields map[string]string

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: strings.ToLower(typ)}
}

// PreventDefault marks the event as handled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from reaching further ancestors. The
// remaining listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// AddEventListener registers fn for events of the given type on n.
func (n *Node) AddEventListener(typ string, fn Listener) {
	if fn == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	typ = strings.ToLower(typ)
	n.listeners[typ] = append(n.listeners[typ], fn)
}

// ListenerCount returns the number of listeners registered for typ on n.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[strings.ToLower(typ)])
}

// EventTypes returns the event types n has listeners for.
func (n *Node) EventTypes() []string {
	out := make([]string, 0, len(n.listeners))
	for typ, ls := range n.listeners {
		if len(ls) > 0 {
			out = append(out, typ)
		}
	}
	return out
}

// Dispatch delivers e to n and then to each ancestor in turn. It returns
// false if a listener called PreventDefault.
//
// The ancestor chain is captured before any listener runs, so listeners
// that replace the tree (a re-render) do not redirect the event.
func (n *Node) Dispatch(e *Event) bool {
	e.Target = n
	var path []*Node
	for p := n; p != nil; p = p.parent {
		path = append(path, p)
	}
	for _, node := range path {
		ls := node.listeners[e.Type]
		if len(ls) == 0 {
			continue
		}
		e.CurrentTarget = node
		for _, fn := range append([]Listener(nil), ls...) {
			fn(e)
		}
		if e.stopped {
			break
		}
	}
	e.CurrentTarget = nil
	return !e.defaultPrevented
}
