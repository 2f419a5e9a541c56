package statement

import (
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/scope"
)

// Base holds the binding for sets that embed it
type Base struct {
	binding *Binding
}

// Bind implements Set
func (b *Base) Bind(binding *Binding) {
	b.binding = binding
}

// Bound reports whether the set has been attached to a session
func (b *Base) Bound() bool {
	return b.binding != nil
}

// Ready fails when the set has not been attached to a session
func (b *Base) Ready() error {
	if b.binding == nil {
		return errNotBound()
	}
	return nil
}

// End closes the innermost open compound of the session
func (b *Base) End() error {
	if b.binding == nil {
		return errNotBound()
	}
	return b.binding.End()
}

// OnCompoundEnd registers a close-action on the shared stack
func (b *Base) OnCompoundEnd(a scope.Action) error {
	if b.binding == nil {
		return errNotBound()
	}
	b.binding.OnCompoundEnd(a)
	return nil
}

// Depth returns the number of open compounds, zero when unbound
func (b *Base) Depth() int {
	if b.binding == nil {
		return 0
	}
	return b.binding.Depth()
}

// Enclose runs body inside the compound that was just opened and closes it.
// The body must leave the stack exactly as it found it.
func (b *Base) Enclose(body func() error) error {
	if b.binding == nil {
		return errNotBound()
	}

	depth := b.binding.Depth()
	if body != nil {
		if err := body(); err != nil {
			return err
		}
	}
	if got := b.binding.Depth(); got != depth {
		return errors.Newf(errors.ErrUnbalancedScope,
			"compound body changed the nesting depth by %d", got-depth).
			WithDetail("want", depth).
			WithDetail("got", got)
	}
	return b.binding.End()
}

func errNotBound() error {
	return errors.New(errors.ErrNotBound,
		"statement set used outside of a session")
}
