package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// Renderer formats a topic for the terminal. ext is the topic file
// extension, dot included.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics untouched
type PlainRenderer struct{}

// Render implements Renderer
func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other files, and
// any content glamour rejects, print as is.
type GlamourRenderer struct {
	// Style is a glamour style name or path; "" or "auto" detects one
	Style string
	// Width wraps at that many columns when positive
	Width int

	once sync.Once
	term *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer for style
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{Style: style}
}

// Render implements Renderer
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" && ext != ".markdown" {
		return content
	}

	r.once.Do(r.build)
	if r.term == nil {
		return content
	}
	out, err := r.term.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (r *GlamourRenderer) build() {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return
	}
	r.term = term
}
