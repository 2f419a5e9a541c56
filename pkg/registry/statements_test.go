package registry

import (
	"testing"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/scope"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSet struct {
	statement.Base
	id string
}

func (f *fakeSet) CloseCompound(scope.Action) error { return nil }

func TestStatementsScoping(t *testing.T) {
	reg := NewStatements()
	css := &fakeSet{id: "css"}
	htmlStr := &fakeSet{id: "html-str"}
	htmlDom := &fakeSet{id: "html-dom"}

	require.NoError(t, reg.RegisterGlobal("css", css))
	require.NoError(t, reg.Register(statement.StrGen, "html", htmlStr))
	require.NoError(t, reg.Register(statement.DomGen, "html", htmlDom))

	t.Run("global_visible_everywhere", func(t *testing.T) {
		for _, ctx := range []statement.Context{statement.Global, statement.StrGen, statement.DomGen} {
			got, ok := reg.Lookup(ctx, "css")
			require.True(t, ok, ctx.String())
			assert.Same(t, css, got)
		}
	})

	t.Run("context_scoped_only_in_its_context", func(t *testing.T) {
		got, ok := reg.Lookup(statement.StrGen, "html")
		require.True(t, ok)
		assert.Same(t, htmlStr, got)

		got, ok = reg.Lookup(statement.DomGen, "html")
		require.True(t, ok)
		assert.Same(t, htmlDom, got)

		_, ok = reg.Lookup(statement.Global, "html")
		assert.False(t, ok)
	})

	t.Run("applicable", func(t *testing.T) {
		assert.Equal(t, []string{"css", "html"}, reg.Names(statement.StrGen))
		assert.Equal(t, []string{"css"}, reg.Names(statement.Global))
		assert.Equal(t, []statement.Context{statement.DomGen, statement.StrGen}, reg.Contexts())
	})
}

func TestStatementsShadowing(t *testing.T) {
	reg := NewStatements()
	global := &fakeSet{id: "global"}
	scoped := &fakeSet{id: "scoped"}

	require.NoError(t, reg.RegisterGlobal("html", global))
	require.NoError(t, reg.Register(statement.DomGen, "html", scoped))

	sets := reg.Applicable(statement.DomGen)
	assert.Same(t, scoped, sets["html"])

	sets = reg.Applicable(statement.StrGen)
	assert.Same(t, global, sets["html"])
}

func TestStatementsDuplicate(t *testing.T) {
	reg := NewStatements()
	first := &fakeSet{id: "first"}
	second := &fakeSet{id: "second"}
	require.NoError(t, reg.Register(statement.StrGen, "html", first))

	err := reg.Register(statement.StrGen, "html", second)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateStatementSet))
	assert.True(t, errors.IsUsageError(err))

	got, _ := reg.Lookup(statement.StrGen, "html")
	assert.Same(t, first, got)

	require.NoError(t, reg.Register(statement.StrGen, "html", second, ReplacePrev()))
	got, _ = reg.Lookup(statement.StrGen, "html")
	assert.Same(t, second, got)

	// same name in a different scope is not a duplicate
	require.NoError(t, reg.RegisterGlobal("html", first))
}

func TestStatementsRejectsNil(t *testing.T) {
	reg := NewStatements()
	err := reg.RegisterGlobal("css", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
