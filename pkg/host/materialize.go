package host

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/vdom"
)

// CreateNode creates the platform node for a single instance, with its
// properties and ref applied but without children. It returns nil for
// component instances, which have no node of their own, and for kinds the
// platform does not know.
func CreateNode(inst *niber.Instance) *Node {
	return createNode(slog.Default(), inst)
}

func createNode(logger *slog.Logger, inst *niber.Instance) *Node {
	switch niber.TagOf(inst) {
	case niber.Text:
		return NewText(inst.Text())
	case niber.Fragment:
		return NewFragment()
	case niber.HostComponent:
		node := NewElement(inst.Tag)
		applyProperties(logger, node, inst.Props)
		ApplyRef(node, inst.Ref)
		return node
	default:
		return nil
	}
}

// ApplyProperties copies props onto node. Props named on<event> holding a
// func(), func(Event), func(any) or Listener become event listeners; other
// function values under on<event> are dropped with a debug log. "nodeValue"
// sets the text; everything else becomes an attribute.
func ApplyProperties(node *Node, props vdom.Props) {
	applyProperties(slog.Default(), node, props)
}

func applyProperties(logger *slog.Logger, node *Node, props vdom.Props) {
	for key, value := range props {
		if key == vdom.ChildrenProp {
			continue
		}
		if key == vdom.TextProp {
			if s, ok := value.(string); ok {
				node.Text = s
			}
			continue
		}
		if vdom.IsEventProp(key) {
			if fn := toListener(value); fn != nil {
				node.AddEventListener(strings.ToLower(key[2:]), fn)
				continue
			}
			if value != nil && reflect.TypeOf(value).Kind() == reflect.Func {
				logger.Debug("unsupported event handler",
					"tag", node.Tag, "prop", key, "type", fmt.Sprintf("%T", value))
				continue
			}
		}
		node.SetAttr(key, value)
	}
}

func toListener(value any) Listener {
	switch fn := value.(type) {
	case func():
		return func(Event) { fn() }
	case func(Event):
		return fn
	case func(any):
		return func(e Event) { fn(e.Data) }
	case Listener:
		return fn
	default:
		return nil
	}
}

// ApplyRef hands node to ref: a func(*Node) or func(any) is called, a
// *vdom.Ref has its Current set. Anything else is ignored.
func ApplyRef(node *Node, ref any) {
	switch r := ref.(type) {
	case nil:
	case func(*Node):
		r(node)
	case func(any):
		r(node)
	case *vdom.Ref:
		r.Current = node
	}
}

// Commit clears container and materializes the tree rooted at root into it.
// A nil root leaves the container empty.
func Commit(root *niber.Instance, container *Node) error {
	return commit(slog.Default(), root, container)
}

func commit(logger *slog.Logger, root *niber.Instance, container *Node) error {
	if container == nil {
		return errors.New("E041").WithDetail("The container node is nil.")
	}

	fragment := NewFragment()
	if root != nil {
		materialize(logger, root, fragment)
	}

	container.Clear()
	container.AppendChild(fragment)
	return nil
}

// materialize appends the platform nodes for inst to parent. Component
// instances contribute their children directly.
func materialize(logger *slog.Logger, inst *niber.Instance, parent *Node) {
	if inst.IsComponent() {
		for _, child := range inst.Children {
			materialize(logger, child, parent)
		}
		return
	}

	node := createNode(logger, inst)
	if node == nil {
		logger.Debug("skipping instance", "instance", inst.ID, "error", errors.New("E040").FormatCompact())
		return
	}
	for _, child := range inst.Children {
		materialize(logger, child, node)
	}
	parent.AppendChild(node)
}
