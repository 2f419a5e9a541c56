package strgen

import (
	"testing"

	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/registry"
	"github.com/arthur-debert/grugui/pkg/session"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func begin(t *testing.T, b *Backend) *session.Session {
	t.Helper()
	reg := registry.NewStatements()
	require.NoError(t, reg.Register(statement.StrGen, "html", b))
	sess, err := session.BeginExec(reg, statement.StrGen)
	require.NoError(t, err)
	return sess
}

func render(t *testing.T, fn func(b *Backend)) string {
	t.Helper()
	b := New()
	sess := begin(t, b)
	fn(b)
	require.NoError(t, sess.Close())
	out, err := b.GetStr()
	require.NoError(t, err)
	return out
}

func TestEscapedText(t *testing.T) {
	out := render(t, func(b *Backend) {
		require.NoError(t, b.BeginEl("div", nil))
		require.NoError(t, b.TrustedText("A&B"))
		require.NoError(t, b.End())
	})
	assert.Equal(t, "<div>A&amp;B</div>", out)
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		as   attrs.Attrs
		want string
	}{
		{"radio_checked", "input", attrs.Of("type", "radio", "checked", true), `<input type="radio" checked>`},
		{"false_bool_omitted", "input", attrs.Of("disabled", false), `<input>`},
		{"verbatim_value", "a", attrs.Of("href", `/x?a=1&b="2"`), `<a href="/x?a=1&b="2""></a>`},
		{"events_ignored", "button", attrs.Attrs{attrs.On("click", func() {}), attrs.Str("class", "btn")}, `<button class="btn"></button>`},
		{"static_markers_consumed", "ul", attrs.Attrs{attrs.Static(), attrs.StaticKey("list")}, `<ul></ul>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, func(b *Backend) {
				require.NoError(t, b.BeginEl(tt.tag, tt.as))
				require.NoError(t, b.End())
			})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestVoidElementsNeverClose(t *testing.T) {
	out := render(t, func(b *Backend) {
		require.NoError(t, b.El("p", nil, func() error {
			return b.El("br", nil, func() error {
				return b.El("span", nil, func() error { return b.TrustedText("x") })
			})
		}))
	})
	assert.Equal(t, "<p><br><span>x</span></p>", out)
	assert.NotContains(t, out, "</br>")
}

func TestNestingAndRawMarkup(t *testing.T) {
	out := render(t, func(b *Backend) {
		b.Doctype()
		require.NoError(t, b.El("ul", attrs.Of("id", "list"), func() error {
			for _, item := range []string{"a", "<b>"} {
				if err := b.El("li", nil, func() error { return b.UntrustedText(item) }); err != nil {
					return err
				}
			}
			return b.UnsafeInnerHTML("<li><em>raw</em></li>")
		}))
	})
	assert.Equal(t, `<!DOCTYPE html><ul id="list"><li>a</li><li>&lt;b&gt;</li><li><em>raw</em></li></ul>`, out)
}

func TestGetStrIsIdempotentAndResetClears(t *testing.T) {
	b := New()
	sess := begin(t, b)
	require.NoError(t, b.TrustedText(42))

	first, _ := b.GetStr()
	second, _ := b.GetStr()
	assert.Equal(t, "42", first)
	assert.Equal(t, first, second)
	require.NoError(t, sess.Close())

	begin(t, b)
	out, _ := b.GetStr()
	assert.Empty(t, out)
}

func TestErrors(t *testing.T) {
	t.Run("too_many_ends", func(t *testing.T) {
		b := New()
		sess := begin(t, b)
		require.NoError(t, b.BeginEl("div", nil))
		require.NoError(t, b.End())
		require.NoError(t, b.End()) // closes the session
		assert.True(t, sess.Done())

		err := b.End()
		assert.True(t, errors.IsUnbalancedScope(err))
	})

	t.Run("unbalanced_body", func(t *testing.T) {
		b := New()
		begin(t, b)
		err := b.El("div", nil, func() error { return b.BeginEl("span", nil) })
		assert.True(t, errors.IsUnbalancedScope(err))
	})

	t.Run("dom_query", func(t *testing.T) {
		_, err := New().GetDomNode()
		assert.True(t, errors.IsErrorCode(err, errors.ErrWrongContext))
	})

	t.Run("bad_attribute", func(t *testing.T) {
		b := New()
		begin(t, b)
		err := b.BeginEl("input", attrs.Of("checked", "yes"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidAttribute))
	})

	t.Run("unbound", func(t *testing.T) {
		err := New().BeginEl("div", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotBound))
	})
}
