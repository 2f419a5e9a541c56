// Package counter is the smallest interactive view: a count and three
// buttons.
package counter

import (
	"fmt"

	"github.com/arthur-debert/grugui/pkg/apps/ui"
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/cssval"
)

// Counter holds the count
type Counter struct {
	Count int
}

// New creates a counter at zero
func New() *Counter {
	return &Counter{}
}

func (c *Counter) Name() string { return "counter" }

func (c *Counter) Description() string { return "A count with decrement, reset and increment buttons" }

// Render draws the counter
func (c *Counter) Render(html backend.HTML, css backend.CSS) error {
	b := ui.New(html, css)

	b.El("main", attrs.Of("id", "app", "class", "counter"), func() {
		b.El("div", nil, func() {
			b.El("span", attrs.Of("id", "count"), func() {
				b.Text(fmt.Sprintf("Count: %d", c.Count))
			})
		})

		for _, btn := range []struct {
			label string
			id    string
			op    func()
		}{
			{"-", "dec", func() { c.Count-- }},
			{"reset", "reset", func() { c.Count = 0 }},
			{"+", "inc", func() { c.Count++ }},
		} {
			b.El("button", attrs.Attrs{attrs.Str("id", btn.id), attrs.On("click", btn.op)}, func() {
				b.Text(btn.label)
			})
		}
	})

	accent := cssval.MustHex("#3366CC")
	b.Rule(".counter",
		ui.P("font-family", "sans-serif"),
		ui.P("padding", cssval.Rem(1)),
	)
	b.Rule(".counter button",
		ui.P("margin-right", cssval.Px(4)),
		ui.P("background-color", accent),
		ui.P("border-color", accent.Mul(0.5)),
	)

	return b.Err()
}
