package registry

import (
	"sort"
	"sync"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/statement"
)

// Option configures a statement set registration
type Option func(*registerOptions)

type registerOptions struct {
	replacePrev bool
}

// ReplacePrev lets a registration overwrite a set of the same name and scope
func ReplacePrev() Option {
	return func(o *registerOptions) {
		o.replacePrev = true
	}
}

// Statements maps (context, name) to statement sets.
//
// It is owned by whoever builds the engine and handed to every session; there
// is no process-wide instance.
type Statements struct {
	mu     sync.RWMutex
	scopes map[statement.Context]*Registry[statement.Set]
}

// NewStatements creates an empty statement registry
func NewStatements() *Statements {
	return &Statements{
		scopes: make(map[statement.Context]*Registry[statement.Set]),
	}
}

// Register adds a set under name in ctx. statement.Global makes it visible
// in every context.
func (s *Statements) Register(ctx statement.Context, name string, set statement.Set, opts ...Option) error {
	if set == nil {
		return errors.Newf(errors.ErrInvalidInput, "statement set '%s' is nil", name)
	}

	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}

	reg := s.scope(ctx, true)
	if o.replacePrev {
		return reg.Set(name, set)
	}

	err := reg.Register(name, set)
	if errors.IsErrorCode(err, errors.ErrAlreadyExists) {
		return errors.Wrapf(err, errors.ErrDuplicateStatementSet,
			"statement set '%s' is already registered in context %s", name, ctx).
			WithDetail("name", name).
			WithDetail("context", ctx.String())
	}
	return err
}

// RegisterGlobal adds a set visible in every context
func (s *Statements) RegisterGlobal(name string, set statement.Set, opts ...Option) error {
	return s.Register(statement.Global, name, set, opts...)
}

// Lookup resolves name as a session in ctx would see it
func (s *Statements) Lookup(ctx statement.Context, name string) (statement.Set, bool) {
	if ctx != statement.Global {
		if reg := s.scope(ctx, false); reg != nil {
			if set, err := reg.Get(name); err == nil {
				return set, true
			}
		}
	}
	if reg := s.scope(statement.Global, false); reg != nil {
		if set, err := reg.Get(name); err == nil {
			return set, true
		}
	}
	return nil, false
}

// Applicable returns every set visible in ctx. A context-scoped set shadows a
// global one of the same name.
func (s *Statements) Applicable(ctx statement.Context) map[string]statement.Set {
	sets := make(map[string]statement.Set)
	s.collect(statement.Global, sets)
	if ctx != statement.Global {
		s.collect(ctx, sets)
	}
	return sets
}

// Names returns the sorted names visible in ctx
func (s *Statements) Names(ctx statement.Context) []string {
	sets := s.Applicable(ctx)
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contexts lists the non-global contexts that have registrations
func (s *Statements) Contexts() []statement.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctxs := make([]statement.Context, 0, len(s.scopes))
	for ctx := range s.scopes {
		if ctx != statement.Global {
			ctxs = append(ctxs, ctx)
		}
	}
	sort.Slice(ctxs, func(i, j int) bool { return ctxs[i] < ctxs[j] })
	return ctxs
}

func (s *Statements) collect(ctx statement.Context, into map[string]statement.Set) {
	reg := s.scope(ctx, false)
	if reg == nil {
		return
	}
	for _, name := range reg.List() {
		if set, err := reg.Get(name); err == nil {
			into[name] = set
		}
	}
}

func (s *Statements) scope(ctx statement.Context, create bool) *Registry[statement.Set] {
	s.mu.RLock()
	reg, ok := s.scopes[ctx]
	s.mu.RUnlock()
	if ok || !create {
		return reg
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if reg, ok = s.scopes[ctx]; !ok {
		reg = New[statement.Set]()
		s.scopes[ctx] = reg
	}
	return reg
}
