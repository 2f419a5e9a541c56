// Package strgen renders markup into a string, for server-side rendering and
// static export.
package strgen

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/scope"
	"github.com/arthur-debert/grugui/pkg/statement"
	"golang.org/x/net/html"
)

// Doctype is the HTML5 document type declaration
const Doctype = "<!DOCTYPE html>"

// Backend accumulates markup fragments for one session at a time
type Backend struct {
	statement.Base
	frags []string
}

var _ backend.HTML = (*Backend)(nil)

// New creates an empty string backend
func New() *Backend {
	return &Backend{}
}

// Reset implements statement.Resetter
func (b *Backend) Reset() {
	b.frags = b.frags[:0]
}

// BeginEl implements backend.HTML. Event attributes have no textual form and
// are dropped.
func (b *Backend) BeginEl(tag string, as attrs.Attrs) error {
	if err := b.Ready(); err != nil {
		return err
	}
	r, err := attrs.Process(as)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	for _, it := range r.Items {
		sb.WriteString(" ")
		sb.WriteString(it.Name)
		if it.Kind == attrs.Valued {
			sb.WriteString(`="`)
			sb.WriteString(it.Value)
			sb.WriteString(`"`)
		}
	}
	sb.WriteString(">")
	b.frags = append(b.frags, sb.String())

	if attrs.IsVoid(tag) {
		return b.OnCompoundEnd(scope.Action{Kind: scope.KindNoOp})
	}
	return b.OnCompoundEnd(scope.Action{Kind: scope.KindCloseTag, Tag: tag})
}

// El implements backend.HTML
func (b *Backend) El(tag string, as attrs.Attrs, body func() error) error {
	if err := b.BeginEl(tag, as); err != nil {
		return err
	}
	return b.Enclose(body)
}

// CloseCompound implements scope.Closer
func (b *Backend) CloseCompound(a scope.Action) error {
	if a.Kind != scope.KindCloseTag {
		return errors.Newf(errors.ErrInternal, "string backend cannot close %s action", a.Kind)
	}
	b.frags = append(b.frags, "</"+a.Tag+">")
	return nil
}

// TrustedText implements backend.HTML
func (b *Backend) TrustedText(v interface{}) error {
	b.frags = append(b.frags, attrs.EscapeText(fmt.Sprint(v)))
	return nil
}

// UntrustedText implements backend.HTML
func (b *Backend) UntrustedText(v interface{}) error {
	return b.TrustedText(v)
}

// UnsafeInnerHTML implements backend.HTML
func (b *Backend) UnsafeInnerHTML(raw string) error {
	b.frags = append(b.frags, raw)
	return nil
}

// Doctype adds the document type declaration
func (b *Backend) Doctype() {
	b.frags = append(b.frags, Doctype)
}

// GetStr implements backend.HTML. It does not clear the buffer.
func (b *Backend) GetStr() (string, error) {
	return strings.Join(b.frags, ""), nil
}

// GetDomNode implements backend.HTML
func (b *Backend) GetDomNode() (*html.Node, error) {
	return nil, backend.WrongContext("GetDomNode", statement.StrGen)
}
