package dom

import (
	"sort"

	"golang.org/x/net/html"
)

// Event is delivered to listeners
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
	// Value is the text carried by input and change events
	Value string

	stopped bool
}

// StopPropagation keeps the event from reaching further ancestors
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called
func (e *Event) Stopped() bool {
	return e.stopped
}

// Handler handles one event
type Handler func(ev *Event)

// Listener is a handler with subscription options
type Listener struct {
	Handler Handler
	// Once removes the listener after its first call
	Once bool
}

// AsListener converts the values accepted as event attributes
func AsListener(v interface{}) (Listener, bool) {
	switch fn := v.(type) {
	case Listener:
		return fn, fn.Handler != nil
	case *Listener:
		if fn == nil {
			return Listener{}, false
		}
		return *fn, fn.Handler != nil
	case Handler:
		return Listener{Handler: fn}, fn != nil
	case func(*Event):
		return Listener{Handler: fn}, fn != nil
	case func():
		if fn == nil {
			return Listener{}, false
		}
		return Listener{Handler: func(*Event) { fn() }}, true
	default:
		return Listener{}, false
	}
}

type subscription struct {
	id       uint64
	typ      string
	listener Listener
}

// Events maps nodes to their subscriptions
type Events struct {
	byNode map[*html.Node][]subscription
	nextID uint64
}

// NewEvents creates an empty registry
func NewEvents() *Events {
	return &Events{
		byNode: make(map[*html.Node][]subscription),
	}
}

// Add subscribes l to events of type typ on n
func (e *Events) Add(n *html.Node, typ string, l Listener) {
	e.nextID++
	e.byNode[n] = append(e.byNode[n], subscription{id: e.nextID, typ: typ, listener: l})
}

// Count returns the number of subscriptions on n
func (e *Events) Count(n *html.Node) int {
	return len(e.byNode[n])
}

// Len returns the number of nodes with at least one subscription
func (e *Events) Len() int {
	return len(e.byNode)
}

// Types returns the sorted distinct event types subscribed on n
func (e *Events) Types(n *html.Node) []string {
	seen := make(map[string]bool)
	var types []string
	for _, s := range e.byNode[n] {
		if !seen[s.typ] {
			seen[s.typ] = true
			types = append(types, s.typ)
		}
	}
	sort.Strings(types)
	return types
}

// Release drops the subscriptions of root and its descendants. Subtrees whose
// root satisfies keep are left alone. It returns the number of nodes released.
func (e *Events) Release(root *html.Node, keep func(*html.Node) bool) int {
	if root == nil || (keep != nil && keep(root)) {
		return 0
	}

	released := 0
	if _, ok := e.byNode[root]; ok {
		delete(e.byNode, root)
		released++
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		released += e.Release(c, keep)
	}
	return released
}

// Dispatch delivers ev to target and then to each ancestor until a listener
// stops propagation. It returns the number of handlers called.
func (e *Events) Dispatch(target *html.Node, ev *Event) int {
	if ev.Target == nil {
		ev.Target = target
	}

	called := 0
	for n := target; n != nil; n = n.Parent {
		// handlers may re-render, so work on a snapshot
		subs := append([]subscription(nil), e.byNode[n]...)
		if len(subs) == 0 {
			continue
		}

		ev.CurrentTarget = n
		var fired []uint64
		for _, s := range subs {
			if s.typ != ev.Type {
				continue
			}
			s.listener.Handler(ev)
			called++
			if s.listener.Once {
				fired = append(fired, s.id)
			}
		}
		if len(fired) > 0 {
			e.drop(n, fired)
		}

		if ev.stopped {
			break
		}
	}
	return called
}

func (e *Events) drop(n *html.Node, ids []uint64) {
	subs, ok := e.byNode[n]
	if !ok {
		return
	}

	kept := subs[:0]
	for _, s := range subs {
		gone := false
		for _, id := range ids {
			if s.id == id {
				gone = true
				break
			}
		}
		if !gone {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(e.byNode, n)
		return
	}
	e.byNode[n] = kept
}

// Listening returns the nodes under root, in document order, with a
// subscription for typ
func (e *Events) Listening(root *html.Node, typ string) []*html.Node {
	return Find(root, func(n *html.Node) bool {
		for _, s := range e.byNode[n] {
			if s.typ == typ {
				return true
			}
		}
		return false
	})
}
