package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := New[widget]()

	require.NoError(t, reg.Register("button", widget{name: "button"}))

	got, err := reg.Get("button")
	require.NoError(t, err)
	assert.Equal(t, "button", got.name)
	assert.True(t, reg.Has("button"))
	assert.Equal(t, 1, reg.Count())
}

func TestRegistryErrors(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Register("one", 1))

	tests := []struct {
		name string
		fn   func() error
		code errors.ErrorCode
	}{
		{"empty_name", func() error { return reg.Register("", 1) }, errors.ErrInvalidInput},
		{"empty_name_set", func() error { return reg.Set("", 1) }, errors.ErrInvalidInput},
		{"duplicate", func() error { return reg.Register("one", 2) }, errors.ErrAlreadyExists},
		{"missing_get", func() error { _, err := reg.Get("two"); return err }, errors.ErrNotFound},
		{"missing_remove", func() error { return reg.Remove("two") }, errors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestRegistrySetOverwrites(t *testing.T) {
	reg := New[int]()
	require.NoError(t, reg.Set("n", 1))
	require.NoError(t, reg.Set("n", 2))

	assert.Equal(t, 2, MustGet(reg, "n"))
	assert.Equal(t, 1, reg.Count())
}

func TestRegistryListIsSorted(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"todo", "counter", "tictactoe"} {
		MustRegister(reg, name, i)
	}

	assert.Equal(t, []string{"counter", "tictactoe", "todo"}, reg.List())

	require.NoError(t, reg.Remove("todo"))
	assert.Equal(t, []string{"counter", "tictactoe"}, reg.List())

	reg.Clear()
	assert.Empty(t, reg.List())
	assert.Equal(t, 0, reg.Count())
}

func TestRegistrySuggest(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "counter", 0)
	MustRegister(reg, "todo", 0)

	got, ok := reg.Suggest("conter")
	assert.True(t, ok)
	assert.Equal(t, "counter", got)

	_, ok = reg.Suggest("spreadsheet")
	assert.False(t, ok)
}

func TestMustHelpersPanic(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "a", 1)

	assert.Panics(t, func() { MustRegister(reg, "a", 2) })
	assert.Panics(t, func() { MustGet(reg, "b") })
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("item-%d", i)
			_ = reg.Register(name, i)
			_, _ = reg.Get(name)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, reg.Count())
}

func BenchmarkRegistryGet(b *testing.B) {
	reg := New[int]()
	for i := 0; i < 100; i++ {
		MustRegister(reg, fmt.Sprintf("item-%d", i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reg.Get("item-50")
	}
}
