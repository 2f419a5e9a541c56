package dom

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/grugui/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element node
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText creates a detached text node
func NewText(text string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: text,
	}
}

// SetAttr sets key on n, replacing an existing value
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// GetAttr returns the value of key on n
func GetAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent concatenates the text of n and its descendants
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return sb.String()
}

// Find returns every node under root, root included, satisfying match, in
// document order
func Find(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return found
}

// ByID returns the first element under root with the given id
func ByID(root *html.Node, id string) *html.Node {
	found := Find(root, func(n *html.Node) bool {
		v, ok := GetAttr(n, "id")
		return n.Type == html.ElementNode && ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Path returns the child indexes leading from root to n
func Path(root, n *html.Node) ([]int, bool) {
	var path []int
	for cur := n; cur != root; cur = cur.Parent {
		if cur == nil {
			return nil, false
		}
		i := 0
		for s := cur.PrevSibling; s != nil; s = s.PrevSibling {
			i++
		}
		path = append(path, i)
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, true
}

// Resolve follows a path produced by Path
func Resolve(root *html.Node, path []int) *html.Node {
	n := root
	for _, i := range path {
		if n == nil {
			return nil
		}
		c := n.FirstChild
		for ; c != nil && i > 0; i-- {
			c = c.NextSibling
		}
		n = c
	}
	return n
}

// PathString formats a path as "0/2/1"
func PathString(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "/")
}

// Render serializes n and its descendants
func Render(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to serialize node")
	}
	return sb.String(), nil
}

// Replace puts repl at the position of old. repl is detached first.
func Replace(old, repl *html.Node) error {
	if old == repl {
		return nil
	}
	if old.Parent == nil {
		return errors.New(errors.ErrDetachedNode, "cannot replace a node without a parent")
	}
	Detach(repl)
	parent := old.Parent
	parent.InsertBefore(repl, old)
	parent.RemoveChild(old)
	return nil
}

// Detach removes n from its parent, if any
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ParseFragment parses raw markup as the content of context. The returned
// nodes are detached.
func ParseFragment(context *html.Node, raw string) ([]*html.Node, error) {
	if context == nil || context.Type != html.ElementNode {
		context = NewElement("body")
	}
	if context.DataAtom != atom.Lookup([]byte(context.Data)) {
		// nodes built outside NewElement may carry a stale atom
		context = &html.Node{Type: html.ElementNode, Data: context.Data, DataAtom: atom.Lookup([]byte(context.Data))}
	}

	nodes, err := html.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to parse markup fragment")
	}
	return nodes, nil
}
