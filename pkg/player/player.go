package player

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/grugui/pkg/apps"
	"github.com/arthur-debert/grugui/pkg/core"
	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/logging"
	"github.com/arthur-debert/grugui/pkg/statement"
	"github.com/arthur-debert/grugui/pkg/style"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

const maxLabelText = 24

// valueEvents ask for a value before dispatch
var valueEvents = map[string]bool{"input": true, "change": true}

// Action is one event the user can fire
type Action struct {
	Event string
	Node  *html.Node
	// Path locates Node from the root, as "0/2/1"
	Path string
	// NeedsValue is set for input and change events
	NeedsValue bool
}

// Options configure a player
type Options struct {
	Out      io.Writer
	Prompter Prompter
	Sheet    *style.Sheet
	ShowTree bool
}

// Player drives one app instance
type Player struct {
	eng    *core.Engine
	app    apps.App
	opts   Options
	logger zerolog.Logger
	turns  int
}

// New creates a player. Missing options default to a plain sheet and a
// line prompter on no input.
func New(eng *core.Engine, app apps.App, opts Options) *Player {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Sheet == nil {
		opts.Sheet = style.Plain()
	}
	if opts.Prompter == nil {
		opts.Prompter = NewLinePrompter(strings.NewReader(""), opts.Out)
	}
	return &Player{
		eng:    eng,
		app:    app,
		opts:   opts,
		logger: logging.GetLogger("player"),
	}
}

// Render runs the app in the live tree context
func (p *Player) Render() error {
	err := p.eng.Render(statement.DomGen, func(s core.Sets) error {
		return p.app.Render(s.HTML, s.CSS)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrRender, "failed to render app '%s'", p.app.Name())
	}
	return nil
}

// Root returns the live tree
func (p *Player) Root() *html.Node {
	root, _ := p.eng.Dom().GetDomNode()
	return root
}

// Turns returns the number of events dispatched
func (p *Player) Turns() int {
	return p.turns
}

// Actions lists every subscribed event in document order
func (p *Player) Actions() []Action {
	root := p.Root()
	if root == nil {
		return nil
	}
	events := p.eng.Dom().Events()

	var out []Action
	for _, n := range dom.Find(root, func(n *html.Node) bool { return events.Count(n) > 0 }) {
		path, _ := dom.Path(root, n)
		for _, typ := range events.Types(n) {
			out = append(out, Action{
				Event:      typ,
				Node:       n,
				Path:       dom.PathString(path),
				NeedsValue: valueEvents[typ],
			})
		}
	}
	return out
}

// Do dispatches a and renders again
func (p *Player) Do(a Action, value string) error {
	called := p.eng.Dom().Dispatch(a.Node, &dom.Event{Type: a.Event, Value: value})
	p.turns++
	p.logger.Debug().
		Str("event", a.Event).
		Str("path", a.Path).
		Int("handlers", called).
		Msg("Dispatched event")
	return p.Render()
}

// Run renders the app and loops until the user quits, input ends or ctx
// is cancelled
func (p *Player) Run(ctx context.Context) error {
	if err := p.Render(); err != nil {
		return err
	}
	sheet := p.opts.Sheet

	for ctx.Err() == nil {
		if p.opts.ShowTree {
			tree, err := p.Tree()
			if err != nil {
				return err
			}
			fmt.Fprintln(p.opts.Out, tree)
		}

		actions := p.Actions()
		if len(actions) == 0 {
			fmt.Fprintln(p.opts.Out, sheet.Render("[Muted]nothing to interact with[/Muted]"))
			return nil
		}

		labels := make([]string, len(actions))
		for i, a := range actions {
			labels[i] = p.Label(a)
		}
		idx, ok, err := p.opts.Prompter.Choose(sheet.Apply("Title", p.app.Name()), labels)
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		a := actions[idx]
		var value string
		if a.NeedsValue {
			if value, err = p.opts.Prompter.Text(labels[idx]); err != nil {
				return err
			}
		}
		if err := p.Do(a, value); err != nil {
			return err
		}
	}

	p.logger.Info().Str("app", p.app.Name()).Int("turns", p.turns).Msg("Player finished")
	return nil
}

// Label describes an action as `click button#inc "+"`
func (p *Player) Label(a Action) string {
	sheet := p.opts.Sheet
	label := sheet.Apply("Attr", a.Event) + " " + sheet.Apply("Tag", describe(a.Node))
	if text := shorten(dom.TextContent(a.Node)); text != "" {
		label += " " + fmt.Sprintf("%q", text)
	}
	return label
}

// Tree renders the live tree with pterm
func (p *Player) Tree() (string, error) {
	root := p.Root()
	if root == nil {
		return "", nil
	}
	out, err := pterm.DefaultTree.WithRoot(pterm.TreeNode{
		Text:     p.app.Name(),
		Children: []pterm.TreeNode{p.treeNode(root)},
	}).Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to render tree")
	}
	return out, nil
}

func (p *Player) treeNode(n *html.Node) pterm.TreeNode {
	sheet := p.opts.Sheet
	if n.Type == html.TextNode {
		return pterm.TreeNode{Text: sheet.Apply("Muted", fmt.Sprintf("%q", n.Data))}
	}

	text := sheet.Apply("Tag", describe(n))
	if types := p.eng.Dom().Events().Types(n); len(types) > 0 {
		text += " " + sheet.Apply("Attr", "on:"+strings.Join(types, ","))
	}
	tn := pterm.TreeNode{Text: text}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		tn.Children = append(tn.Children, p.treeNode(c))
	}
	return tn
}

// describe renders tag#id.class
func describe(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString(n.Data)
	if id, ok := dom.GetAttr(n, "id"); ok && id != "" {
		sb.WriteString("#" + id)
	}
	if class, ok := dom.GetAttr(n, "class"); ok {
		for _, c := range strings.Fields(class) {
			sb.WriteString("." + c)
		}
	}
	return sb.String()
}

func shorten(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxLabelText {
		return string(r[:maxLabelText-1]) + "…"
	}
	return s
}
