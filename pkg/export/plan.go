package export

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/page"
)

// IndexFile is the name of the generated app list
const IndexFile = "index.html"

// File is one planned output file, relative to the export root
type File struct {
	Path    string
	Content []byte
}

// Build renders the index and every app in the catalog into files. Each
// app page links its stylesheet instead of inlining it.
func Build(eng *core.Engine, cat *apps.Catalog, opts page.Options) ([]File, error) {
	names := cat.Names()
	descs := cat.Describe()

	entries := make([]page.Entry, 0, len(names))
	docs := make([]page.Document, 0, len(names))
	for _, name := range names {
		app, err := cat.Lookup(name)
		if err != nil {
			return nil, err
		}
		appOpts := opts
		appOpts.Title = titleFor(opts.Title, name)
		appOpts.StylesheetHref = name + ".css"
		doc, err := page.Render(eng, app, appOpts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		entries = append(entries, page.Entry{Name: name, Description: descs[name], Href: name + ".html"})
	}

	index, err := page.Index(eng, entries, opts)
	if err != nil {
		return nil, err
	}
	return Plan(index, docs), nil
}

// Plan lays out the index and documents as files
func Plan(index page.Document, docs []page.Document) []File {
	files := []File{{Path: IndexFile, Content: []byte(index.HTML)}}
	for _, d := range docs {
		files = append(files, File{Path: d.Name + ".html", Content: []byte(d.HTML)})
		if d.CSS != "" {
			files = append(files, File{Path: d.Name + ".css", Content: []byte(d.CSS)})
		}
	}
	return files
}

func titleFor(base, name string) string {
	if base == "" {
		return name
	}
	return base + " | " + name
}

// validatePath rejects paths that would escape the export root
func validatePath(rel string) error {
	if rel == "" {
		return errors.New(errors.ErrInvalidInput, "export file requires a path")
	}
	if filepath.IsAbs(rel) {
		return errors.Newf(errors.ErrInvalidInput, "export path must be relative: %s", rel).
			WithDetail("path", rel)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.Newf(errors.ErrInvalidInput, "export path escapes the output directory: %s", rel).
			WithDetail("path", rel)
	}
	return nil
}
