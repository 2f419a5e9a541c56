package style

import (
	_ "embed"
	"os"
	"regexp"
	"sort"

	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Sheet maps semantic names to lipgloss styles
type Sheet struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
	plain    bool
}

// Parse builds a sheet from YAML data
func Parse(data []byte) (*Sheet, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles data")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	s := newSheet()
	for name, def := range cfg.Styles {
		s.styles[name] = buildStyle(def, colors)
		s.patterns[name] = regexp.MustCompile(`\[` + regexp.QuoteMeta(name) + `\](.*?)\[/` + regexp.QuoteMeta(name) + `\]`)
	}
	return s, nil
}

// Load builds a sheet from a YAML file
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles file %s", path)
	}
	return Parse(data)
}

// Default returns the embedded sheet for format. It never fails: a broken
// embedded file degrades to unstyled output.
func Default(f Format) *Sheet {
	s, err := Parse(embeddedStyles)
	if err != nil {
		s = newSheet()
	}
	s.plain = f == FormatText
	return s
}

// Plain returns a sheet that never styles
func Plain() *Sheet {
	return Default(FormatText)
}

// IsPlain reports whether styling is disabled
func (s *Sheet) IsPlain() bool {
	return s.plain
}

// Names returns the sorted style names
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get safely retrieves a style
func (s *Sheet) Get(name string) lipgloss.Style {
	if st, ok := s.styles[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Apply renders text with the named style
func (s *Sheet) Apply(name, text string) string {
	if s.plain {
		return text
	}
	return s.Get(name).Render(text)
}

// Render processes [Name]...[/Name] markup, nested tags included. Unknown or
// mismatched tags are left alone.
func (s *Sheet) Render(text string) string {
	names := s.Names()
	for {
		prev := text
		for _, name := range names {
			pattern := s.patterns[name]
			text = pattern.ReplaceAllStringFunc(text, func(match string) string {
				return s.Apply(name, pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == prev {
			return text
		}
	}
}

func newSheet() *Sheet {
	return &Sheet{
		styles:   make(map[string]lipgloss.Style),
		patterns: make(map[string]*regexp.Regexp),
	}
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}
	return style
}
