// Package page assembles complete HTML documents from an app's view using
// the string backends.
package page

import (
	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/logging"
	"github.com/arthur-debert/grugui/pkg/statement"
)

// Options control the document shell
type Options struct {
	Lang  string
	Title string
	// StylesheetHref links an external stylesheet instead of inlining the
	// app's CSS in a <style> element.
	StylesheetHref string
}

// Document is a rendered page
type Document struct {
	Name  string
	Title string
	// Body is the app markup alone
	Body string
	// HTML is the full document
	HTML string
	CSS  string
}

// Render renders app into a full document. The view runs first so the
// collected CSS can be placed in the head.
func Render(eng *core.Engine, app apps.App, opts Options) (Document, error) {
	logger := logging.GetLogger("page")
	done := logging.LogOperationStart(logger, "render "+app.Name())
	defer done()

	if opts.Lang == "" {
		opts.Lang = "en"
	}
	if opts.Title == "" {
		opts.Title = app.Name()
	}
	doc := Document{Name: app.Name(), Title: opts.Title}

	err := eng.Render(statement.StrGen, func(s core.Sets) error {
		if err := app.Render(s.HTML, s.CSS); err != nil {
			return err
		}
		body, err := s.HTML.GetStr()
		if err != nil {
			return err
		}
		css, err := s.CSS.GetStr()
		if err != nil {
			return err
		}
		doc.Body, doc.CSS = body, css
		return nil
	})
	if err != nil {
		return Document{}, errors.Wrapf(err, errors.ErrRender, "failed to render app '%s'", app.Name()).
			WithDetail("app", app.Name())
	}

	err = eng.Render(statement.StrGen, func(s core.Sets) error {
		eng.Str().Doctype()
		return s.HTML.El("html", attrs.Of("lang", opts.Lang), func() error {
			if err := s.HTML.El("head", nil, func() error {
				return head(s, doc, opts)
			}); err != nil {
				return err
			}
			return s.HTML.El("body", nil, func() error {
				return s.HTML.UnsafeInnerHTML(doc.Body)
			})
		})
	})
	if err != nil {
		return Document{}, errors.Wrap(err, errors.ErrRender, "failed to assemble document").
			WithDetail("app", app.Name())
	}

	out, err := eng.Str().GetStr()
	if err != nil {
		return Document{}, err
	}
	doc.HTML = out

	logger.Debug().
		Str("app", doc.Name).
		Int("bytes", len(doc.HTML)).
		Int("cssBytes", len(doc.CSS)).
		Msg("Rendered page")
	return doc, nil
}

func head(s core.Sets, doc Document, opts Options) error {
	h := s.HTML
	if err := h.El("meta", attrs.Of("charset", "utf-8"), nil); err != nil {
		return err
	}
	if err := h.El("title", nil, func() error {
		return h.UntrustedText(doc.Title)
	}); err != nil {
		return err
	}
	if opts.StylesheetHref != "" {
		return h.El("link", attrs.Of("rel", "stylesheet", "href", opts.StylesheetHref), nil)
	}
	if doc.CSS == "" {
		return nil
	}
	return h.El("style", nil, func() error {
		return h.UnsafeInnerHTML(doc.CSS)
	})
}
