// Package ui is a thin layer over the markup and style statement sets for
// application code. A Builder keeps the first error it sees and turns every
// later call into a no-op, so views read top to bottom without an error
// check per element.
package ui

import (
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
)

// Decl is one style declaration
type Decl struct {
	Name  string
	Value interface{}
}

// P builds a declaration
func P(name string, value interface{}) Decl {
	return Decl{Name: name, Value: value}
}

// Builder drives one render
type Builder struct {
	html backend.HTML
	css  backend.CSS
	err  error
}

// New creates a builder over the session's sets. css may be nil for views
// without styles.
func New(html backend.HTML, css backend.CSS) *Builder {
	return &Builder{html: html, css: css}
}

// Err returns the first error recorded
func (b *Builder) Err() error {
	return b.err
}

// El renders an element around body
func (b *Builder) El(tag string, as attrs.Attrs, body func()) {
	if b.err != nil {
		return
	}
	b.fail(b.html.El(tag, as, func() error {
		if body != nil {
			body()
		}
		return b.err
	}))
}

// Void renders an element without content
func (b *Builder) Void(tag string, as attrs.Attrs) {
	b.El(tag, as, nil)
}

// Text renders escaped text
func (b *Builder) Text(v interface{}) {
	if b.err != nil {
		return
	}
	b.fail(b.html.TrustedText(v))
}

// Raw renders markup as is
func (b *Builder) Raw(markup string) {
	if b.err != nil {
		return
	}
	b.fail(b.html.UnsafeInnerHTML(markup))
}

// Rule renders a style rule. It does nothing without a css set.
func (b *Builder) Rule(selectors string, decls ...Decl) {
	if b.err != nil || b.css == nil {
		return
	}
	b.fail(b.css.Rule([]string{selectors}, func() error {
		for _, d := range decls {
			if err := b.css.Property(d.Name, d.Value); err != nil {
				return err
			}
		}
		return nil
	}))
}

func (b *Builder) fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}
