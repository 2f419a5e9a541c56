package session

import (
	"testing"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/registry"
	"github.com/arthur-debert/grugui/pkg/scope"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logSet records every compound it opens and closes
type logSet struct {
	statement.Base
	log    *[]string
	resets int
}

func (l *logSet) Reset() {
	l.resets++
}

func (l *logSet) Open(name string) error {
	*l.log = append(*l.log, "open "+name)
	return l.OnCompoundEnd(scope.Action{Kind: scope.KindCustom, Data: name})
}

func (l *logSet) CloseCompound(a scope.Action) error {
	*l.log = append(*l.log, "close "+a.Data.(string))
	return nil
}

// other is a set type no test asks for
type other struct {
	statement.Base
}

func (o *other) CloseCompound(scope.Action) error { return nil }

func newRegistry(t *testing.T, log *[]string) (*registry.Statements, *logSet, *logSet) {
	t.Helper()
	reg := registry.NewStatements()
	a := &logSet{log: log}
	b := &logSet{log: log}
	require.NoError(t, reg.RegisterGlobal("alpha", a))
	require.NoError(t, reg.Register(statement.StrGen, "beta", b))
	require.NoError(t, reg.Register(statement.DomGen, "other", &other{}))
	return reg, a, b
}

func TestBeginExecBindsAndResets(t *testing.T) {
	var log []string
	reg, a, b := newRegistry(t, &log)

	sess, err := BeginExec(reg, statement.StrGen)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, sess.Names())
	assert.Equal(t, statement.StrGen, sess.Context())
	assert.Equal(t, 1, sess.Depth())
	assert.False(t, sess.Done())
	assert.True(t, a.Bound())
	assert.True(t, b.Bound())
	assert.Equal(t, 1, a.resets)
	assert.Equal(t, 1, b.resets)

	_, err = BeginExec(reg, statement.StrGen)
	require.NoError(t, err)
	assert.Equal(t, 2, a.resets)
}

func TestSharedStackAcrossSets(t *testing.T) {
	var log []string
	reg, _, _ := newRegistry(t, &log)

	sess, err := BeginExec(reg, statement.StrGen)
	require.NoError(t, err)
	a := MustGet[*logSet](sess, "alpha")
	b := MustGet[*logSet](sess, "beta")

	require.NoError(t, a.Open("outer"))
	require.NoError(t, b.Open("inner"))
	assert.Equal(t, 3, sess.Depth())

	// any set's End closes the innermost compound, whoever opened it
	require.NoError(t, a.End())
	require.NoError(t, b.End())
	require.NoError(t, sess.End())

	assert.Equal(t, []string{"open outer", "open inner", "close inner", "close outer"}, log)
	assert.True(t, sess.Done())
	assert.Equal(t, 0, sess.Depth())

	err = sess.End()
	require.Error(t, err)
	assert.True(t, errors.IsUnbalancedScope(err))
}

func TestGetErrors(t *testing.T) {
	var log []string
	reg, _, _ := newRegistry(t, &log)

	t.Run("unknown_with_suggestion", func(t *testing.T) {
		sess, err := BeginExec(reg, statement.StrGen)
		require.NoError(t, err)

		_, err = Get[*logSet](sess, "alhpa")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStatementSet))
		assert.Equal(t, "alpha", errors.GetErrorDetails(err)["suggestion"])
		assert.Contains(t, err.Error(), "did you mean 'alpha'")
	})

	t.Run("context_scoped_set_missing_elsewhere", func(t *testing.T) {
		sess, err := BeginExec(reg, statement.DomGen)
		require.NoError(t, err)

		_, err = Get[*logSet](sess, "beta")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStatementSet))
	})

	t.Run("wrong_type", func(t *testing.T) {
		sess, err := BeginExec(reg, statement.DomGen)
		require.NoError(t, err)

		_, err = Get[*logSet](sess, "other")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWrongContext))
		assert.True(t, errors.IsUsageError(err))
	})

	t.Run("must_get_panics", func(t *testing.T) {
		sess, err := BeginExec(reg, statement.Global)
		require.NoError(t, err)
		assert.Panics(t, func() { MustGet[*logSet](sess, "beta") })
	})
}

func TestClose(t *testing.T) {
	var log []string
	reg, _, _ := newRegistry(t, &log)

	t.Run("balanced", func(t *testing.T) {
		sess, err := BeginExec(reg, statement.StrGen)
		require.NoError(t, err)

		require.NoError(t, sess.Close())
		assert.True(t, sess.Done())
		require.NoError(t, sess.Close())
	})

	t.Run("open_compound", func(t *testing.T) {
		sess, err := BeginExec(reg, statement.StrGen)
		require.NoError(t, err)
		a := MustGet[*logSet](sess, "alpha")
		require.NoError(t, a.Open("dangling"))

		err = sess.Close()
		require.Error(t, err)
		assert.True(t, errors.IsUnbalancedScope(err))
		assert.False(t, sess.Done())

		require.NoError(t, a.End())
		require.NoError(t, sess.Close())
	})
}

func TestBeginExecNilRegistry(t *testing.T) {
	_, err := BeginExec(nil, statement.Global)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
