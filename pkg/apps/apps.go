// Package apps lists the demo applications. Every application renders
// through the backend-agnostic statement sets, so one view serves both the
// server-side string render and the live tree.
package apps

import (
	"github.com/arthur-debert/grugui/pkg/apps/counter"
	"github.com/arthur-debert/grugui/pkg/apps/tictactoe"
	"github.com/arthur-debert/grugui/pkg/apps/todo"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/registry"
)

// App is a stateful view
type App interface {
	Name() string
	Description() string
	// Render issues the whole view. Event handlers mutate the app; the host
	// renders again afterwards.
	Render(html backend.HTML, css backend.CSS) error
}

// Factory creates an app in its initial state
type Factory func() App

// Catalog maps names to app factories
type Catalog struct {
	reg *registry.Registry[Factory]
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{reg: registry.New[Factory]()}
}

// Default returns a catalog with the bundled apps
func Default() *Catalog {
	c := NewCatalog()
	registry.MustRegister(c.reg, "counter", func() App { return counter.New() })
	registry.MustRegister(c.reg, "tictactoe", func() App { return tictactoe.New() })
	registry.MustRegister(c.reg, "todo", func() App { return todo.New() })
	return c
}

// Register adds a factory
func (c *Catalog) Register(name string, f Factory) error {
	return c.reg.Register(name, f)
}

// Names returns the sorted app names
func (c *Catalog) Names() []string {
	return c.reg.List()
}

// Lookup creates a fresh instance of the named app
func (c *Catalog) Lookup(name string) (App, error) {
	f, err := c.reg.Get(name)
	if err == nil {
		return f(), nil
	}

	nf := errors.Newf(errors.ErrNotFound, "unknown app '%s'", name).
		WithDetail("name", name).
		WithDetail("available", c.Names())
	if guess, ok := c.reg.Suggest(name); ok {
		nf.Message += "; did you mean '" + guess + "'?"
		nf = nf.WithDetail("suggestion", guess)
	}
	return nil, nf
}

// Describe returns name → description for every app
func (c *Catalog) Describe() map[string]string {
	out := make(map[string]string, c.reg.Count())
	for _, name := range c.Names() {
		if app, err := c.Lookup(name); err == nil {
			out[name] = app.Description()
		}
	}
	return out
}
