package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/arthur-debert/grugui/pkg/errors"
)

// maxSuggestDistance bounds how different a suggestion may be
const maxSuggestDistance = 3

// Registry is a thread-safe store of items by name. The zero value is not
// usable; create one with New.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty registry
func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Register adds item, failing if name is taken
func (r *Registry[T]) Register(name string, item T) error {
	return r.put(name, item, false)
}

// Set adds item, overwriting whatever name held
func (r *Registry[T]) Set(name string, item T) error {
	return r.put(name, item, true)
}

func (r *Registry[T]) put(name string, item T, overwrite bool) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.items[name]; taken && !overwrite {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name).
			WithDetail("name", name)
	}
	r.items[name] = item
	return nil
}

// Get returns the item under name
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	item, ok := r.items[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}
	return item, nil
}

// Has reports whether name is registered
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[name]
	return ok
}

// Remove deletes name
func (r *Registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; !ok {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}
	delete(r.items, name)
	return nil
}

// Clear deletes every item
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	r.items = make(map[string]T)
	r.mu.Unlock()
}

// List returns the registered names, sorted
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Suggest returns the registered name closest to name
func (r *Registry[T]) Suggest(name string) (string, bool) {
	return Closest(name, r.List())
}

// Closest returns the candidate with the smallest edit distance to name.
// Ties go to the candidate listed first.
func Closest(name string, candidates []string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// MustRegister registers item and panics on failure. Meant for wiring
// fixed catalogs, where a clash is a programming error.
func MustRegister[T any](reg *Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet returns the item under name and panics if it is missing
func MustGet[T any](reg *Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
