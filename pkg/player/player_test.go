package player

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/apps/counter"
	"github.com/arthur-debert/grugui/pkg/apps/todo"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(t *testing.T, script string, showTree bool, app apps.App) (*Player, *bytes.Buffer) {
	t.Helper()
	eng, err := core.New()
	require.NoError(t, err)
	var out bytes.Buffer
	return New(eng, app, Options{
		Out:      &out,
		Prompter: NewLinePrompter(strings.NewReader(script), &out),
		ShowTree: showTree,
	}), &out
}

func TestActions(t *testing.T) {
	p, _ := newPlayer(t, "", false, counter.New())
	require.NoError(t, p.Render())

	var labels, paths []string
	for _, a := range p.Actions() {
		labels = append(labels, p.Label(a))
		paths = append(paths, a.Path)
		assert.False(t, a.NeedsValue)
	}
	assert.Equal(t, []string{`click button#dec "-"`, `click button#reset "reset"`, `click button#inc "+"`}, labels)
	assert.Equal(t, []string{"1", "2", "3"}, paths)
}

func TestRunCounter(t *testing.T) {
	c := counter.New()
	p, out := newPlayer(t, "3\n3\n1\nq\n", true, c)

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 1, c.Count)
	assert.Equal(t, 3, p.Turns())
	assert.Equal(t, "Count: 1", dom.TextContent(dom.ByID(p.Root(), "count")))
	assert.Contains(t, out.String(), "main#app.counter")
	assert.Contains(t, out.String(), "on:click")
	assert.Contains(t, out.String(), "q) quit")
}

func TestRunTodoWithInput(t *testing.T) {
	l := todo.New()
	p, out := newPlayer(t, "1\nmilk\n2\n3\nq\n", false, l)

	require.NoError(t, p.Run(context.Background()))

	require.Len(t, l.Items, 1)
	assert.Equal(t, "milk", l.Items[0].Text)
	assert.True(t, l.Items[0].Done)
	assert.Equal(t, "0 of 1 left", dom.TextContent(dom.ByID(p.Root(), "summary")))
	assert.Contains(t, out.String(), `input input#draft: `)
}

func TestRunInvalidChoiceAsksAgain(t *testing.T) {
	c := counter.New()
	p, out := newPlayer(t, "9\nabc\n3\n", false, c)

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 1, c.Count, "end of input quits after the valid choice")
	assert.Contains(t, out.String(), `invalid choice "9"`)
	assert.Contains(t, out.String(), `invalid choice "abc"`)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	c := counter.New()
	p, _ := newPlayer(t, "3\n3\n", false, c)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Equal(t, 0, c.Count)
	assert.NotNil(t, p.Root(), "the first render still happens")
}

func TestTree(t *testing.T) {
	p, _ := newPlayer(t, "", false, counter.New())
	require.NoError(t, p.Render())

	tree, err := p.Tree()
	require.NoError(t, err)
	for _, want := range []string{"counter", "main#app.counter", "span#count", `"Count: 0"`, "button#inc on:click"} {
		assert.Contains(t, tree, want)
	}
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "a b", shorten("  a \n b "))
	long := strings.Repeat("x", 40)
	got := []rune(shorten(long))
	assert.Len(t, got, maxLabelText)
	assert.Equal(t, '…', got[len(got)-1])
}
