package host

import (
	"sort"
	"strings"
)

// NodeType identifies the kind of a platform node.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
	FragmentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case FragmentNode:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Event is delivered to listeners by Dispatch.
type Event struct {
	Type   string // "click", "input", ...
	Target *Node
	Data   any
}

// Listener handles an event.
type Listener func(Event)

// Node is an in-memory platform node: an element, a text node, or a
// fragment whose children are spliced into its parent on append.
type Node struct {
	Type     NodeType
	Tag      string
	Attrs    map[string]any
	Text     string
	Children []*Node
	Parent   *Node

	listeners map[string][]Listener
}

// NewElement creates an element node.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag, Attrs: make(map[string]any)}
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// NewFragment creates a fragment node.
func NewFragment() *Node {
	return &Node{Type: FragmentNode}
}

// AppendChild appends child to n. Appending a fragment moves the fragment's
// children instead, leaving the fragment empty.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	if child.Type == FragmentNode {
		moved := child.Children
		child.Children = nil
		for _, c := range moved {
			n.AppendChild(c)
		}
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// Clear detaches all children of n.
func (n *Node) Clear() {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
}

// Attr returns the value of an attribute.
func (n *Node) Attr(key string) (any, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(key string, value any) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	n.Attrs[key] = value
}

// AddEventListener registers fn for events of the given type.
func (n *Node) AddEventListener(eventType string, fn Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	eventType = strings.ToLower(eventType)
	n.listeners[eventType] = append(n.listeners[eventType], fn)
}

// Events returns the sorted event types n listens to.
func (n *Node) Events() []string {
	events := make([]string, 0, len(n.listeners))
	for e := range n.listeners {
		events = append(events, e)
	}
	sort.Strings(events)
	return events
}

// Dispatch delivers an event of the given type to n and then to each
// ancestor, in order. The propagation path is fixed before any listener
// runs, so listeners may replace the tree. Dispatch reports whether a
// listener ran.
func (n *Node) Dispatch(eventType string, data any) bool {
	eventType = strings.ToLower(eventType)
	ev := Event{Type: eventType, Target: n, Data: data}

	var path []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}

	handled := false
	for _, node := range path {
		listeners := append([]Listener(nil), node.listeners[eventType]...)
		for _, fn := range listeners {
			fn(ev)
			handled = true
		}
	}
	return handled
}
