package counter

import (
	"testing"

	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, eng *core.Engine, c *Counter, ctx statement.Context) {
	t.Helper()
	require.NoError(t, eng.Render(ctx, func(s core.Sets) error {
		return c.Render(s.HTML, s.CSS)
	}))
}

func TestServerSideMarkup(t *testing.T) {
	eng, err := core.New()
	require.NoError(t, err)
	c := New()
	c.Count = 3

	render(t, eng, c, statement.StrGen)

	html, _ := eng.Str().GetStr()
	assert.Equal(t, `<main id="app" class="counter"><div><span id="count">Count: 3</span></div>`+
		`<button id="dec">-</button><button id="reset">reset</button><button id="inc">+</button></main>`, html)

	css, _ := eng.CSS().GetStr()
	assert.Contains(t, css, "background-color: #36C;")
	assert.Contains(t, css, "border-color: #1A3366;")
	assert.Contains(t, css, "padding: 1rem;")
}

func TestClicksUpdateTheLiveTree(t *testing.T) {
	eng, err := core.New()
	require.NoError(t, err)
	c := New()

	click := func(id string) {
		root, err := eng.Dom().GetDomNode()
		require.NoError(t, err)
		btn := dom.ByID(root, id)
		require.NotNil(t, btn, id)
		eng.Dom().Dispatch(btn, &dom.Event{Type: "click"})
		render(t, eng, c, statement.DomGen)
	}

	render(t, eng, c, statement.DomGen)
	click("inc")
	click("inc")
	click("dec")

	root, _ := eng.Dom().GetDomNode()
	assert.Equal(t, "Count: 1", dom.TextContent(dom.ByID(root, "count")))

	click("reset")
	root, _ = eng.Dom().GetDomNode()
	assert.Equal(t, "Count: 0", dom.TextContent(dom.ByID(root, "count")))
	assert.Equal(t, 3, eng.Dom().Events().Len())
}
