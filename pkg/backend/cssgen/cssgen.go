// Package cssgen renders style rules into a string. It is registered
// globally: style sheets have a textual form in every context.
package cssgen

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/scope"
	"github.com/arthur-debert/grugui/pkg/statement"
)

// Backend accumulates style sheet fragments
type Backend struct {
	statement.Base
	frags []string
}

var _ backend.CSS = (*Backend)(nil)

// New creates an empty CSS backend
func New() *Backend {
	return &Backend{}
}

// Reset implements statement.Resetter
func (b *Backend) Reset() {
	b.frags = b.frags[:0]
}

// BeginRule implements backend.CSS
func (b *Backend) BeginRule(selectors ...string) error {
	if err := b.Ready(); err != nil {
		return err
	}
	if len(selectors) == 0 {
		return errors.New(errors.ErrInvalidInput, "a rule needs at least one selector")
	}

	b.frags = append(b.frags, strings.Join(selectors, " "), " {\n")
	return b.OnCompoundEnd(scope.Action{Kind: scope.KindPopRule})
}

// Rule implements backend.CSS
func (b *Backend) Rule(selectors []string, body func() error) error {
	if err := b.BeginRule(selectors...); err != nil {
		return err
	}
	return b.Enclose(body)
}

// Property implements backend.CSS. Values are formatted with fmt.Sprint.
func (b *Backend) Property(name string, value interface{}) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "property name cannot be empty")
	}
	b.frags = append(b.frags, "    ", name, ": ", fmt.Sprint(value), ";\n")
	return nil
}

// CloseCompound implements scope.Closer
func (b *Backend) CloseCompound(a scope.Action) error {
	if a.Kind != scope.KindPopRule {
		return errors.Newf(errors.ErrInternal, "css backend cannot close %s action", a.Kind)
	}
	b.frags = append(b.frags, "}")
	return nil
}

// GetStr implements backend.CSS
func (b *Backend) GetStr() (string, error) {
	return strings.Join(b.frags, ""), nil
}
