package page

import (
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/statement"
)

// Entry is one line of the index page
type Entry struct {
	Name        string
	Description string
	Href        string
}

// Index renders a document listing entries
func Index(eng *core.Engine, entries []Entry, opts Options) (Document, error) {
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	if opts.Title == "" {
		opts.Title = "grugui"
	}

	err := eng.Render(statement.StrGen, func(s core.Sets) error {
		h := s.HTML
		eng.Str().Doctype()
		return h.El("html", attrs.Of("lang", opts.Lang), func() error {
			if err := h.El("head", nil, func() error {
				if err := h.El("meta", attrs.Of("charset", "utf-8"), nil); err != nil {
					return err
				}
				return h.El("title", nil, func() error {
					return h.UntrustedText(opts.Title)
				})
			}); err != nil {
				return err
			}
			return h.El("body", nil, func() error {
				if err := h.El("h1", nil, func() error {
					return h.UntrustedText(opts.Title)
				}); err != nil {
					return err
				}
				return h.El("ul", attrs.Of("id", "apps"), func() error {
					for _, e := range entries {
						if err := entry(h, e); err != nil {
							return err
						}
					}
					return nil
				})
			})
		})
	})
	if err != nil {
		return Document{}, errors.Wrap(err, errors.ErrRender, "failed to render index")
	}

	out, err := eng.Str().GetStr()
	if err != nil {
		return Document{}, err
	}
	return Document{Name: "index", Title: opts.Title, HTML: out}, nil
}

func entry(h backend.HTML, e Entry) error {
	return h.El("li", nil, func() error {
		if err := h.El("a", attrs.Of("href", e.Href), func() error {
			return h.UntrustedText(e.Name)
		}); err != nil {
			return err
		}
		if e.Description == "" {
			return nil
		}
		if err := h.TrustedText(" "); err != nil {
			return err
		}
		return h.UntrustedText(e.Description)
	})
}
