// Package todo is a list editor: a draft input, items that toggle on click
// and a header that is built once and cached.
package todo

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/grugui/pkg/apps/ui"
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/cssval"
	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/google/uuid"
)

// HeaderKey is the static cache key of the list header
const HeaderKey = "todo-header"

// Item is one entry
type Item struct {
	ID   string
	Text string
	Done bool
}

// List is the application state
type List struct {
	Items []Item
	Draft string

	newID func() string
}

// New creates an empty list with random ids
func New() *List {
	return NewWithIDs(uuid.NewString)
}

// NewWithIDs creates an empty list taking ids from gen
func NewWithIDs(gen func() string) *List {
	return &List{newID: gen}
}

func (l *List) Name() string { return "todo" }

func (l *List) Description() string { return "A todo list with a cached static header" }

// Add appends an item, ignoring blank text
func (l *List) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	l.Items = append(l.Items, Item{ID: l.newID(), Text: text})
	return true
}

// Submit adds the draft and clears it
func (l *List) Submit() {
	if l.Add(l.Draft) {
		l.Draft = ""
	}
}

// Toggle flips the done flag of an item
func (l *List) Toggle(id string) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items[i].Done = !l.Items[i].Done
			return
		}
	}
}

// Remove deletes an item
func (l *List) Remove(id string) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return
		}
	}
}

// Remaining counts the items not done
func (l *List) Remaining() int {
	n := 0
	for _, it := range l.Items {
		if !it.Done {
			n++
		}
	}
	return n
}

// Render draws the list
func (l *List) Render(html backend.HTML, css backend.CSS) error {
	b := ui.New(html, css)

	b.El("main", attrs.Of("id", "app", "class", "todo"), func() {
		b.El("header", attrs.Attrs{attrs.Static(), attrs.StaticKey(HeaderKey)}, func() {
			b.El("h1", nil, func() { b.Text("TODOs") })
			b.El("p", nil, func() { b.Text("Click an item to toggle it.") })
		})

		b.El("div", attrs.Of("class", "new"), func() {
			b.Void("input", attrs.Attrs{
				attrs.Str("id", "draft"),
				attrs.Str("type", "text"),
				attrs.Str("placeholder", "What needs doing?"),
				attrs.Str("value", l.Draft),
				attrs.On("input", func(ev *dom.Event) { l.Draft = ev.Value }),
			})
			b.El("button", attrs.Attrs{attrs.Str("id", "add"), attrs.On("click", l.Submit)}, func() {
				b.Text("Add")
			})
		})

		b.El("ul", attrs.Of("id", "items"), func() {
			for _, it := range l.Items {
				class := "item"
				if it.Done {
					class += " done"
				}
				b.El("li", attrs.Of("id", "item-"+it.ID, "class", class), func() {
					b.El("span", attrs.Attrs{attrs.Str("class", "text"), attrs.On("click", func() { l.Toggle(it.ID) })}, func() {
						b.Text(it.Text)
					})
					b.El("button", attrs.Attrs{attrs.Str("class", "remove"), attrs.On("click", func() { l.Remove(it.ID) })}, func() {
						b.Text("x")
					})
				})
			}
		})

		b.El("p", attrs.Of("id", "summary"), func() {
			b.Text(fmt.Sprintf("%d of %d left", l.Remaining(), len(l.Items)))
		})
	})

	b.Rule(".todo", ui.P("max-width", cssval.Px(480)))
	b.Rule(".todo .done .text",
		ui.P("text-decoration", "line-through"),
		ui.P("color", cssval.MustHex("#000").Mix(cssval.MustHex("#FFF"), 0.5)),
	)
	return b.Err()
}
