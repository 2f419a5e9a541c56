package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestAsListener(t *testing.T) {
	calls := 0
	tests := []struct {
		name string
		v    interface{}
		ok   bool
	}{
		{"event_func", func(*Event) { calls++ }, true},
		{"plain_func", func() { calls++ }, true},
		{"handler", Handler(func(*Event) { calls++ }), true},
		{"listener", Listener{Handler: func(*Event) { calls++ }, Once: true}, true},
		{"empty_listener", Listener{}, false},
		{"string", "alert(1)", false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := AsListener(tt.v)
			assert.Equal(t, tt.ok, ok)
			if ok {
				before := calls
				l.Handler(&Event{})
				assert.Equal(t, before+1, calls)
			}
		})
	}
}

func TestDispatchBubbles(t *testing.T) {
	ul, first, _ := tree()
	ev := NewEvents()
	var order []string

	ev.Add(ul, "click", Listener{Handler: func(e *Event) {
		order = append(order, "ul")
		assert.Same(t, first.FirstChild, e.Target)
		assert.Same(t, ul, e.CurrentTarget)
	}})
	ev.Add(first, "click", Listener{Handler: func(*Event) { order = append(order, "li") }})
	ev.Add(first, "input", Listener{Handler: func(*Event) { order = append(order, "input") }})

	n := ev.Dispatch(first.FirstChild, &Event{Type: "click"})
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"li", "ul"}, order)
	assert.Equal(t, []string{"click", "input"}, ev.Types(first))
}

func TestDispatchStopAndOnce(t *testing.T) {
	ul, first, _ := tree()
	ev := NewEvents()
	outer := 0
	inner := 0

	ev.Add(ul, "click", Listener{Handler: func(*Event) { outer++ }})
	ev.Add(first, "click", Listener{Once: true, Handler: func(e *Event) {
		inner++
		e.StopPropagation()
	}})

	ev.Dispatch(first, &Event{Type: "click"})
	ev.Dispatch(first, &Event{Type: "click"})

	assert.Equal(t, 1, inner)
	assert.Equal(t, 1, outer)
	assert.Equal(t, 0, ev.Count(first))
}

func TestReleaseKeepsMarkedSubtrees(t *testing.T) {
	ul, first, second := tree()
	ev := NewEvents()
	noop := Listener{Handler: func(*Event) {}}
	ev.Add(ul, "click", noop)
	ev.Add(first, "click", noop)
	ev.Add(second, "click", noop)

	released := ev.Release(ul, func(n *html.Node) bool { return n == second })

	assert.Equal(t, 2, released)
	assert.Equal(t, 0, ev.Count(ul))
	assert.Equal(t, 1, ev.Count(second))
	assert.Equal(t, 1, ev.Len())
	assert.Equal(t, []*html.Node{second}, ev.Listening(ul, "click"))
}

func TestDispatchSurvivesRelease(t *testing.T) {
	ul, first, _ := tree()
	ev := NewEvents()
	ev.Add(first, "click", Listener{Once: true, Handler: func(*Event) { ev.Release(ul, nil) }})

	assert.Equal(t, 1, ev.Dispatch(first, &Event{Type: "click"}))
	assert.Equal(t, 0, ev.Len())
}
