package tictactoe

import (
	"testing"

	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveGame(t *testing.T) {
	eng, err := core.New()
	require.NoError(t, err)
	g := New()

	render := func() {
		require.NoError(t, eng.Render(statement.DomGen, func(s core.Sets) error {
			return g.Render(s.HTML, s.CSS)
		}))
	}
	click := func(id string) {
		root, _ := eng.Dom().GetDomNode()
		n := dom.ByID(root, id)
		require.NotNil(t, n, id)
		eng.Dom().Dispatch(n, &dom.Event{Type: "click"})
		render()
	}
	status := func() string {
		root, _ := eng.Dom().GetDomNode()
		return dom.TextContent(dom.ByID(root, "status"))
	}

	render()
	click("start-O")
	click("start")
	assert.Equal(t, "O's move", status())

	for _, id := range []string{"cell-0-0", "cell-1-0", "cell-0-1", "cell-1-1", "cell-0-2"} {
		click(id)
	}
	assert.Equal(t, "O wins!", status())

	click("new-game")
	root, _ := eng.Dom().GetDomNode()
	assert.NotNil(t, dom.ByID(root, "start"))
}

func TestStartScreenMarkup(t *testing.T) {
	eng, err := core.New()
	require.NoError(t, err)
	g := New()

	require.NoError(t, eng.Render(statement.StrGen, func(s core.Sets) error {
		return g.Render(s.HTML, s.CSS)
	}))
	html, _ := eng.Str().GetStr()
	assert.Contains(t, html, `<input type="radio" name="start" id="start-X" checked><label for="start-X">X</label>`)
	assert.Contains(t, html, `<input type="radio" name="ai" id="ai-None" checked>`)
	assert.NotContains(t, html, "</input>")

	css, _ := eng.CSS().GetStr()
	assert.Contains(t, css, "width: 2em;")
	assert.Contains(t, css, "margin-top: 0.5em;")
}

func TestBoardMarkup(t *testing.T) {
	eng, err := core.New()
	require.NoError(t, err)
	g := New()
	g.Start()
	g.Play(0, 0)

	require.NoError(t, eng.Render(statement.StrGen, func(s core.Sets) error {
		return g.Render(s.HTML, s.CSS)
	}))
	html, _ := eng.Str().GetStr()
	assert.Contains(t, html, `<button class="cell" id="cell-0-0"><code>X</code></button>`)
	assert.Contains(t, html, `<button class="cell" id="cell-0-1"><code>&nbsp;</code></button>`)
	assert.Contains(t, html, `<div class="status" id="status">O&#x27;s move</div>`)
}
