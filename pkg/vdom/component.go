package vdom

// Context is the render context handed to a component function.
//
// The runtime implements it and hooks take it as their first argument, so a
// component's state is always tied to the instance being rendered rather than
// to ambient global state. A Context is only valid while the invocation that
// received it is running.
type Context interface {
	// Rendering reports whether the invocation that received this context
	// is still in progress.
	Rendering() bool
}

// RenderFunc renders a component for the given props.
type RenderFunc func(ctx Context, props Props) *VNode

// Component is a named component function.
//
// Components are compared by pointer: two nodes have the same component type
// only when they reference the same *Component. Define components once, at
// package level, rather than inside render functions.
type Component struct {
	name   string
	render RenderFunc
}

// Define creates a component from a render function.
//
//	var Counter = vdom.Define("Counter", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
//	    count, set := niber.UseState(ctx, 0)
//	    return vdom.Div(vdom.Textf("%d", count), vdom.Button(vdom.OnClick(func() {
//	        set.Update(func(n int) int { return n + 1 })
//	    })))
//	})
func Define(name string, render RenderFunc) *Component {
	return &Component{name: name, render: render}
}

// Name returns the component's display name.
func (c *Component) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Render calls the component function.
func (c *Component) Render(ctx Context, props Props) *VNode {
	if c == nil || c.render == nil {
		return nil
	}
	return c.render(ctx, props)
}

// C creates a node that calls comp. Arguments follow the element factories:
// Attr values become props, Key sets the key, nodes become the "children"
// prop so components can place them.
//
//	vdom.C(TodoItem, vdom.Key(item.ID), vdom.Prop("title", item.Title))
func C(comp *Component, args ...any) *VNode {
	node := createElement("", args)
	node.Kind = KindComponent
	node.Comp = comp
	if len(node.Children) > 0 {
		node.Props[ChildrenProp] = node.Children
		node.Children = nil
	}
	return node
}

// ChildrenProp is the prop under which C passes nested nodes to a component.
const ChildrenProp = "children"

// Prop sets an arbitrary prop. Use it for component props.
func Prop(key string, value any) Attr {
	return attr(key, value)
}

// ChildrenOf returns the nodes passed to a component via C.
func ChildrenOf(props Props) []*VNode {
	children, _ := props[ChildrenProp].([]*VNode)
	return children
}
