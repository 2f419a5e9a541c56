package ui

import (
	"testing"

	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderStr(t *testing.T, view func(b *Builder)) (string, string, error) {
	t.Helper()
	eng, err := core.New()
	require.NoError(t, err)

	err = eng.Render(statement.StrGen, func(s core.Sets) error {
		b := New(s.HTML, s.CSS)
		view(b)
		return b.Err()
	})
	html, _ := eng.Str().GetStr()
	css, _ := eng.CSS().GetStr()
	return html, css, err
}

func TestBuilder(t *testing.T) {
	html, css, err := renderStr(t, func(b *Builder) {
		b.El("div", attrs.Of("class", "card"), func() {
			b.Void("hr", nil)
			b.Text("a<b")
			b.Raw("<i>x</i>")
		})
		b.Rule(".card", P("padding", "1rem"), P("margin", 0))
	})

	require.NoError(t, err)
	assert.Equal(t, `<div class="card"><hr>a&lt;b<i>x</i></div>`, html)
	assert.Equal(t, ".card {\n    padding: 1rem;\n    margin: 0;\n}", css)
}

func TestBuilderStopsAtFirstError(t *testing.T) {
	html, _, err := renderStr(t, func(b *Builder) {
		b.El("div", nil, func() {
			b.Void("input", attrs.Of("checked", "yes"))
			b.Text("never")
		})
	})

	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAttribute))
	assert.NotContains(t, html, "never")
}

func TestRuleWithoutCSS(t *testing.T) {
	var h backend.HTML
	b := New(h, nil)
	b.Rule("p", P("color", "red"))
	assert.NoError(t, b.Err())
}
