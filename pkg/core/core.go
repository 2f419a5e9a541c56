// Package core wires the statement registry to fresh backend instances.
package core

import (
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/backend/cssgen"
	"github.com/arthur-debert/grugui/pkg/backend/domgen"
	"github.com/arthur-debert/grugui/pkg/backend/strgen"
	"github.com/arthur-debert/grugui/pkg/registry"
	"github.com/arthur-debert/grugui/pkg/session"
	"github.com/arthur-debert/grugui/pkg/statement"
)

// Engine owns one registry and one instance of each backend. It runs one
// session at a time.
type Engine struct {
	reg *registry.Statements
	str *strgen.Backend
	dom *domgen.Backend
	css *cssgen.Backend
}

// New creates an engine with the markup set registered per context and the
// style set registered globally
func New() (*Engine, error) {
	e := &Engine{
		reg: registry.NewStatements(),
		str: strgen.New(),
		dom: domgen.New(),
		css: cssgen.New(),
	}

	if err := e.reg.Register(statement.StrGen, backend.HTMLSet, e.str); err != nil {
		return nil, err
	}
	if err := e.reg.Register(statement.DomGen, backend.HTMLSet, e.dom); err != nil {
		return nil, err
	}
	if err := e.reg.RegisterGlobal(backend.CSSSet, e.css); err != nil {
		return nil, err
	}
	return e, nil
}

// Registry exposes the registry so callers can add their own sets
func (e *Engine) Registry() *registry.Statements {
	return e.reg
}

// Str returns the string backend
func (e *Engine) Str() *strgen.Backend {
	return e.str
}

// Dom returns the live tree backend
func (e *Engine) Dom() *domgen.Backend {
	return e.dom
}

// CSS returns the style backend
func (e *Engine) CSS() *cssgen.Backend {
	return e.css
}

// Begin starts a session in ctx
func (e *Engine) Begin(ctx statement.Context) (*session.Session, error) {
	return session.BeginExec(e.reg, ctx)
}

// Sets are the statement sets handed to a render function
type Sets struct {
	Session *session.Session
	HTML    backend.HTML
	CSS     backend.CSS
}

// Render runs fn inside a complete session in ctx
func (e *Engine) Render(ctx statement.Context, fn func(s Sets) error) error {
	sess, err := e.Begin(ctx)
	if err != nil {
		return err
	}

	html, err := session.Get[backend.HTML](sess, backend.HTMLSet)
	if err != nil {
		return err
	}
	css, err := session.Get[backend.CSS](sess, backend.CSSSet)
	if err != nil {
		return err
	}

	if err := fn(Sets{Session: sess, HTML: html, CSS: css}); err != nil {
		return err
	}
	return sess.Close()
}
