package attrs

import (
	"strings"

	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/arthur-debert/grugui/pkg/errors"
)

// Kind classifies a processed attribute
type Kind int

const (
	// Valued renders as name="value"
	Valued Kind = iota
	// Boolean renders as a bare name
	Boolean
)

// Item is an attribute ready to be emitted
type Item struct {
	Kind  Kind
	Name  string
	Value string
}

// Subscription is an event attribute
type Subscription struct {
	Event    string
	Listener dom.Listener
}

// Result is the outcome of Process
type Result struct {
	Items  []Item
	Events []Subscription
	Static bool
	Key    string
}

// Process validates attributes and sorts them by kind, keeping their order
func Process(as Attrs) (Result, error) {
	var r Result

	for _, a := range as {
		switch {
		case a.Name == StaticName:
			on, ok := a.Value.(bool)
			if !ok && a.Value != nil {
				return Result{}, invalid(a, "must be a bool")
			}
			r.Static = on

		case a.Name == StaticKeyName:
			key, ok := a.Value.(string)
			if !ok {
				return Result{}, invalid(a, "must be a string")
			}
			r.Key = key

		case len(a.Name) > len(EventPrefix) && strings.HasPrefix(a.Name, EventPrefix):
			l, ok := dom.AsListener(a.Value)
			if !ok {
				return Result{}, errors.Newf(errors.ErrInvalidListener,
					"attribute '%s' expects a func(*dom.Event), func(), dom.Handler or dom.Listener, got %T",
					a.Name, a.Value).
					WithDetail("attribute", a.Name)
			}
			r.Events = append(r.Events, Subscription{
				Event:    strings.ToLower(a.Name[len(EventPrefix):]),
				Listener: l,
			})

		case IsBoolean(a.Name):
			switch v := a.Value.(type) {
			case nil:
			case bool:
				if v {
					r.Items = append(r.Items, Item{Kind: Boolean, Name: a.Name})
				}
			default:
				return Result{}, invalid(a, "is a boolean attribute and must be true, false or nil")
			}

		default:
			if a.Name == "" {
				return Result{}, errors.New(errors.ErrInvalidAttribute, "attribute name cannot be empty")
			}
			v, ok := a.Value.(string)
			if !ok {
				return Result{}, invalid(a, "must be a string")
			}
			r.Items = append(r.Items, Item{Kind: Valued, Name: a.Name, Value: v})
		}
	}

	if r.Key != "" && !r.Static {
		r.Key = ""
	}
	return r, nil
}

func invalid(a Attr, why string) error {
	return errors.Newf(errors.ErrInvalidAttribute, "attribute '%s' %s, got %T", a.Name, why, a.Value).
		WithDetail("attribute", a.Name)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeText replaces the five markup-significant characters with character
// references
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
