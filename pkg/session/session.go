package session

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/registry"
	"github.com/arthur-debert/grugui/pkg/scope"
	"github.com/arthur-debert/grugui/pkg/statement"
)

// Session is the handle of one execution
type Session struct {
	ctx   statement.Context
	stack *scope.Stack
	sets  map[string]statement.Set
	names []string
	open  bool
}

// BeginExec starts a session in ctx and binds every applicable set to it
func BeginExec(reg *registry.Statements, ctx statement.Context) (*Session, error) {
	if reg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "statement registry is nil")
	}

	s := &Session{
		ctx:   ctx,
		stack: scope.NewStack(),
		sets:  reg.Applicable(ctx),
		names: reg.Names(ctx),
		open:  true,
	}
	s.stack.Push(scope.Action{Kind: scope.KindSession, Owner: s})

	for _, name := range s.names {
		set := s.sets[name]
		set.Bind(statement.NewBinding(name, s.stack, set))
		if r, ok := set.(statement.Resetter); ok {
			r.Reset()
		}
	}

	return s, nil
}

// Context returns the context the session was started in
func (s *Session) Context() statement.Context {
	return s.ctx
}

// Names returns the sorted names of the bound sets
func (s *Session) Names() []string {
	return append([]string(nil), s.names...)
}

// Depth returns the number of open compounds, the session scope included
func (s *Session) Depth() int {
	return s.stack.Depth()
}

// Done reports whether the session scope has been closed
func (s *Session) Done() bool {
	return !s.open
}

// Set returns the set bound under name
func (s *Session) Set(name string) (statement.Set, error) {
	set, ok := s.sets[name]
	if !ok {
		err := errors.Newf(errors.ErrUnknownStatementSet,
			"no statement set named '%s' in context %s", name, s.ctx).
			WithDetail("name", name).
			WithDetail("context", s.ctx.String())
		if guess, found := registry.Closest(name, s.names); found {
			err = err.WithDetail("suggestion", guess)
			err.Message += fmt.Sprintf(" (did you mean '%s'?)", guess)
		}
		return nil, err
	}
	return set, nil
}

// End closes the innermost open compound. Once only the session scope is
// left, End closes the session.
func (s *Session) End() error {
	return s.stack.End()
}

// Close finishes the session. It fails if compounds are still open and is a
// no-op on a closed session.
func (s *Session) Close() error {
	if !s.open {
		return nil
	}
	if d := s.stack.Depth(); d > 1 {
		return errors.Newf(errors.ErrUnbalancedScope,
			"session closed with %d open compound(s)", d-1).
			WithDetail("depth", d-1)
	}
	return s.stack.End()
}

// CloseCompound implements scope.Closer for the session scope
func (s *Session) CloseCompound(a scope.Action) error {
	if a.Kind != scope.KindSession {
		return errors.Newf(errors.ErrInternal, "session cannot close %s action", a.Kind)
	}
	s.open = false
	return nil
}

// Get resolves name to a set of type T
func Get[T any](s *Session, name string) (T, error) {
	var zero T

	set, err := s.Set(name)
	if err != nil {
		return zero, err
	}

	typed, ok := set.(T)
	if !ok {
		return zero, errors.Newf(errors.ErrWrongContext,
			"statement set '%s' in context %s is a %T, not a %s", name, s.ctx, set, typeName[T]()).
			WithDetail("name", name).
			WithDetail("context", s.ctx.String())
	}
	return typed, nil
}

// MustGet is Get that panics on error
func MustGet[T any](s *Session, name string) T {
	typed, err := Get[T](s, name)
	if err != nil {
		panic(fmt.Sprintf("failed to get statement set %s: %v", name, err))
	}
	return typed
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
