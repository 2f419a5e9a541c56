package statement

import (
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/scope"
)

// Context names a rendering target. Sets registered under Global are
// available in every context.
type Context string

const (
	// Global makes a set available in every context
	Global Context = ""
	// StrGen renders serialized text documents
	StrGen Context = "strGen"
	// DomGen renders into a live tree updated in place
	DomGen Context = "domGen"
)

// String returns the string representation of the context
func (c Context) String() string {
	if c == Global {
		return "global"
	}
	return string(c)
}

// ParseContext parses a context name as accepted on the command line
func ParseContext(s string) (Context, error) {
	switch s {
	case "", "global":
		return Global, nil
	case "strGen", "str", "string":
		return StrGen, nil
	case "domGen", "dom":
		return DomGen, nil
	default:
		return Global, errors.Newf(errors.ErrInvalidInput, "unknown context: %s", s).
			WithDetail("context", s)
	}
}

// Set is a bundle of operations sharing a session's scope stack
type Set interface {
	scope.Closer

	// Bind injects the per-session binding before the session's first call
	Bind(b *Binding)
}

// Resetter is implemented by sets holding session-local buffers or cursors
type Resetter interface {
	// Reset clears session-local state at session start
	Reset()
}

// Binding connects one set to a session's scope stack
type Binding struct {
	name  string
	stack *scope.Stack
	owner scope.Closer
}

// NewBinding creates a binding that stamps owner on every action it registers
func NewBinding(name string, stack *scope.Stack, owner scope.Closer) *Binding {
	return &Binding{
		name:  name,
		stack: stack,
		owner: owner,
	}
}

// Name returns the name the set was registered under
func (b *Binding) Name() string {
	return b.name
}

// End closes the innermost open compound of the session
func (b *Binding) End() error {
	return b.stack.End()
}

// OnCompoundEnd registers the close-action of a compound that just opened
func (b *Binding) OnCompoundEnd(a scope.Action) {
	if a.Owner == nil {
		a.Owner = b.owner
	}
	b.stack.Push(a)
}

// Depth returns the number of open compounds on the shared stack
func (b *Binding) Depth() int {
	return b.stack.Depth()
}
