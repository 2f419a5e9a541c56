package domgen

import (
	"fmt"

	"github.com/arthur-debert/grugui/pkg/attrs"
	"github.com/arthur-debert/grugui/pkg/backend"
	"github.com/arthur-debert/grugui/pkg/dom"
	"github.com/arthur-debert/grugui/pkg/errors"
	"github.com/arthur-debert/grugui/pkg/scope"
	"github.com/arthur-debert/grugui/pkg/statement"
	"golang.org/x/net/html"
)

// cacheKey separates caller keys from the positional keys of keyless
// static elements
type cacheKey struct {
	name     string
	implicit bool
}

func (k cacheKey) String() string {
	if k.implicit {
		return fmt.Sprintf("#%s", k.name)
	}
	return k.name
}

type cacheEntry struct {
	node *html.Node
	// span is the number of implicit keys consumed while building node
	span int
}

// frame is carried by the close-action of every element
type frame struct {
	node   *html.Node
	parent *html.Node
	// ignored elements were opened inside a reused static subtree
	ignored bool
	// reused elements are cached static subtrees placed again
	reused bool
	// fresh static elements record their span when they close
	keyed      bool
	key        cacheKey
	keysBefore int
}

// Backend builds and updates a live tree
type Backend struct {
	statement.Base

	events *dom.Events
	cache  map[cacheKey]*cacheEntry
	cached map[*html.Node]cacheKey
	anchor *html.Node
	// keys placed by the current session
	placed map[cacheKey]bool

	root    *html.Node
	current *html.Node
	parent  *html.Node
	depth   int
	keys    int
	skip    int
}

var _ backend.HTML = (*Backend)(nil)

// New creates a backend with an empty tree
func New() *Backend {
	return &Backend{
		events: dom.NewEvents(),
		cache:  make(map[cacheKey]*cacheEntry),
		cached: make(map[*html.Node]cacheKey),
		placed: make(map[cacheKey]bool),
	}
}

// Mount makes n the node the next render replaces. n usually sits in a
// container the caller owns.
func (b *Backend) Mount(n *html.Node) {
	b.anchor = n
}

// Reset implements statement.Resetter
func (b *Backend) Reset() {
	b.root = nil
	b.current = b.anchor
	b.parent = nil
	if b.anchor != nil {
		b.parent = b.anchor.Parent
	}
	b.depth = 0
	b.keys = 0
	b.skip = 0
	b.placed = make(map[cacheKey]bool)
}

// Events returns the listener registry of the tree
func (b *Backend) Events() *dom.Events {
	return b.events
}

// Dispatch delivers ev to target and its ancestors
func (b *Backend) Dispatch(target *html.Node, ev *dom.Event) int {
	return b.events.Dispatch(target, ev)
}

// CacheLen returns the number of cached static subtrees
func (b *Backend) CacheLen() int {
	return len(b.cache)
}

// ForgetStatic drops the cached static subtree with an explicit key so the
// next render rebuilds it
func (b *Backend) ForgetStatic(key string) {
	k := cacheKey{name: key}
	e, ok := b.cache[k]
	if !ok {
		return
	}
	delete(b.cached, e.node)
	delete(b.cache, k)
	if !within(b.root, e.node) {
		b.events.Release(e.node, b.isCached)
	}
}

// ClearStatic drops every cached static subtree. Listeners of subtrees no
// longer in the tree are released.
func (b *Backend) ClearStatic() {
	entries := b.cache
	b.cache = make(map[cacheKey]*cacheEntry)
	b.cached = make(map[*html.Node]cacheKey)
	for _, e := range entries {
		if !within(b.root, e.node) {
			b.events.Release(e.node, b.isCached)
		}
	}
}

// BeginEl implements backend.HTML
func (b *Backend) BeginEl(tag string, as attrs.Attrs) error {
	if err := b.Ready(); err != nil {
		return err
	}
	if b.skip > 0 {
		return b.OnCompoundEnd(scope.Action{Kind: scope.KindCloseTag, Tag: tag, Data: &frame{ignored: true}})
	}

	r, err := attrs.Process(as)
	if err != nil {
		return err
	}

	f := &frame{parent: b.parent}
	if r.Static {
		key := cacheKey{name: r.Key}
		if key.name == "" {
			key = cacheKey{name: fmt.Sprint(b.keys), implicit: true}
			b.keys++
		}
		if b.placed[key] {
			return errors.Newf(errors.ErrInvalidAttribute,
				"static key '%s' is used twice in one render", key).
				WithDetail("key", key.String()).
				WithDetail("tag", tag)
		}

		if e, ok := b.cache[key]; ok {
			if err := b.place(e.node); err != nil {
				return err
			}
			b.markPlaced(key, e.node)
			b.keys += e.span
			b.skip++
			f.node = e.node
			f.reused = true
			return b.open(tag, f)
		}

		f.keyed = true
		f.key = key
		f.keysBefore = b.keys
	}

	n := dom.NewElement(tag)
	for _, it := range r.Items {
		if it.Kind == attrs.Boolean {
			dom.SetAttr(n, it.Name, "")
			continue
		}
		dom.SetAttr(n, it.Name, it.Value)
	}
	if err := b.place(n); err != nil {
		return err
	}
	for _, s := range r.Events {
		b.events.Add(n, s.Event, s.Listener)
	}
	if f.keyed {
		b.cache[f.key] = &cacheEntry{node: n}
		b.cached[n] = f.key
		b.placed[f.key] = true
	}
	f.node = n
	return b.open(tag, f)
}

func (b *Backend) open(tag string, f *frame) error {
	b.depth++
	b.parent = f.node
	b.current = nil
	return b.OnCompoundEnd(scope.Action{Kind: scope.KindCloseTag, Tag: tag, Data: f})
}

// El implements backend.HTML. The body is not run inside a reused static
// subtree.
func (b *Backend) El(tag string, as attrs.Attrs, body func() error) error {
	if err := b.BeginEl(tag, as); err != nil {
		return err
	}
	if b.skip > 0 {
		return b.Enclose(nil)
	}
	return b.Enclose(body)
}

// CloseCompound implements scope.Closer
func (b *Backend) CloseCompound(a scope.Action) error {
	f, ok := a.Data.(*frame)
	if a.Kind != scope.KindCloseTag || !ok {
		return errors.Newf(errors.ErrInternal, "dom backend cannot close %s action", a.Kind)
	}
	if f.ignored {
		return nil
	}

	if f.reused {
		b.skip--
	}
	if f.keyed {
		if e, ok := b.cache[f.key]; ok && e.node == f.node {
			e.span = b.keys - f.keysBefore
		}
	}

	b.depth--
	b.current = f.node.NextSibling
	b.parent = f.parent
	return nil
}

// TrustedText implements backend.HTML
func (b *Backend) TrustedText(v interface{}) error {
	if b.skip > 0 {
		return nil
	}
	n := dom.NewText(fmt.Sprint(v))
	if err := b.place(n); err != nil {
		return err
	}
	b.current = n.NextSibling
	return nil
}

// UntrustedText implements backend.HTML. Text nodes are never parsed as
// markup.
func (b *Backend) UntrustedText(v interface{}) error {
	return b.TrustedText(v)
}

// UnsafeInnerHTML implements backend.HTML. The markup is parsed in the
// context of the open element and inserted at the cursor.
func (b *Backend) UnsafeInnerHTML(raw string) error {
	if b.skip > 0 {
		return nil
	}
	if b.depth == 0 || b.parent == nil {
		return errors.New(errors.ErrDetachedNode, "raw markup needs an open element").
			WithDetail("markup", raw)
	}

	nodes, err := dom.ParseFragment(b.parent, raw)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if b.current != nil {
			b.parent.InsertBefore(n, b.current)
			continue
		}
		b.parent.AppendChild(n)
	}
	return nil
}

// GetStr implements backend.HTML
func (b *Backend) GetStr() (string, error) {
	return "", backend.WrongContext("GetStr", statement.DomGen)
}

// GetDomNode implements backend.HTML. It returns the root placed by the
// current (or last) session.
func (b *Backend) GetDomNode() (*html.Node, error) {
	return b.root, nil
}

// place puts n at the cursor
func (b *Backend) place(n *html.Node) error {
	if b.depth == 0 && b.root != nil {
		return errors.Newf(errors.ErrDetachedNode,
			"a session renders a single root, got a second top-level <%s>", describe(n)).
			WithDetail("node", describe(n))
	}

	switch {
	case b.current == n:
	case b.current == nil:
		dom.Detach(n)
		if b.parent != nil {
			b.parent.AppendChild(n)
		}
	default:
		old := b.current
		if old.Parent != nil {
			if err := dom.Replace(old, n); err != nil {
				return err
			}
		} else {
			dom.Detach(n)
		}
		b.events.Release(old, b.isCached)
	}

	if b.depth == 0 {
		b.root = n
		b.anchor = n
	}
	return nil
}

// markPlaced records key and every cached subtree nested in n as placed
func (b *Backend) markPlaced(key cacheKey, n *html.Node) {
	b.placed[key] = true
	for node, k := range b.cached {
		if node != n && within(n, node) {
			b.placed[k] = true
		}
	}
}

func (b *Backend) isCached(n *html.Node) bool {
	_, ok := b.cached[n]
	return ok
}

func within(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

func describe(n *html.Node) string {
	if n.Type == html.TextNode {
		return "#text"
	}
	return n.Data
}
