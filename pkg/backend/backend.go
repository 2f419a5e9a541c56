// Package backend defines the statement sets application code renders
// through. Each context registers its own implementation under the same
// name, so application code written against these interfaces renders to
// every target.
package backend

import (
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/statement"
	"golang.org/x/net/html"
)

const (
	// HTMLSet is the registry name of the markup statement set
	HTMLSet = "html"
	// CSSSet is the registry name of the style statement set
	CSSSet = "css"
)

// HTML builds markup
type HTML interface {
	statement.Set

	// BeginEl opens an element. It must be closed with End.
	BeginEl(tag string, as attrs.Attrs) error
	// El opens an element, runs body and closes it
	El(tag string, as attrs.Attrs, body func() error) error
	// End closes the innermost open compound of the session
	End() error

	// TrustedText adds text, escaped
	TrustedText(v interface{}) error
	// UntrustedText adds text that must never be interpreted as markup
	UntrustedText(v interface{}) error
	// UnsafeInnerHTML adds raw markup as is
	UnsafeInnerHTML(raw string) error

	// GetStr returns the markup built so far. String contexts only.
	GetStr() (string, error)
	// GetDomNode returns the root of the live tree. DOM contexts only.
	GetDomNode() (*html.Node, error)
}

// CSS builds style sheets
type CSS interface {
	statement.Set

	// BeginRule opens a rule for the selectors. It must be closed with End.
	BeginRule(selectors ...string) error
	// Rule opens a rule, runs body and closes it
	Rule(selectors []string, body func() error) error
	// Property adds a declaration to the open rule
	Property(name string, value interface{}) error
	// End closes the innermost open compound of the session
	End() error

	// GetStr returns the style sheet built so far
	GetStr() (string, error)
}

// WrongContext reports a query that the active context cannot answer
func WrongContext(op string, ctx statement.Context) error {
	return errors.Newf(errors.ErrWrongContext, "%s is not available in the %s context", op, ctx).
		WithDetail("operation", op).
		WithDetail("context", ctx.String())
}
