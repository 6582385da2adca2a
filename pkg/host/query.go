package host

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vango-dev/niber/internal/errors"
)

// ErrNotFound is returned by At when a path does not lead to a node.
var ErrNotFound error = errors.New("E041")

// Predicate selects nodes.
type Predicate func(*Node) bool

// ByTag matches elements with the given tag.
func ByTag(tag string) Predicate {
	return func(n *Node) bool {
		return n.Type == ElementNode && n.Tag == tag
	}
}

// ByAttr matches elements whose attribute key has the given value.
func ByAttr(key string, value any) Predicate {
	return func(n *Node) bool {
		v, ok := n.Attrs[key]
		return ok && reflect.DeepEqual(v, value)
	}
}

// ByText matches nodes whose text content equals text.
func ByText(text string) Predicate {
	return func(n *Node) bool {
		return n.TextContent() == text
	}
}

// Find returns the first node under n (excluding n) matching pred, in
// document order.
func (n *Node) Find(pred Predicate) *Node {
	for _, c := range n.Children {
		if pred(c) {
			return c
		}
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node under n (excluding n) matching pred, in
// document order.
func (n *Node) FindAll(pred Predicate) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if pred(c) {
			out = append(out, c)
		}
		out = append(out, c.FindAll(pred)...)
	}
	return out
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// At returns the node reached by following child indexes from n.
func (n *Node) At(path []int) (*Node, error) {
	cur := n
	for depth, i := range path {
		if i < 0 || i >= len(cur.Children) {
			return nil, errors.New("E041").WithDetail(fmt.Sprintf(
				"Path %v: index %d at depth %d is out of range (%d children).",
				path, i, depth, len(cur.Children)))
		}
		cur = cur.Children[i]
	}
	return cur, nil
}
