package main

import (
	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/vdom"
)

// builtins are the components tree files can reference by name.
var builtins = map[string]*vdom.Component{
	"counter": counter,
	"toggle":  toggle,
}

// counter shows a number with increment and decrement buttons.
// Props: label (string), start (number).
var counter = vdom.Define("Counter", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
	count, set := niber.UseState(ctx, intProp(p, "start"))
	return vdom.Div(vdom.Class("counter"),
		vdom.If(stringProp(p, "label") != "", vdom.Span(vdom.Class("label"), stringProp(p, "label"))),
		vdom.Span(vdom.Class("value"), vdom.Textf("%d", count)),
		vdom.Button(vdom.Class("inc"), vdom.OnClick(func() {
			set.Update(func(n int) int { return n + 1 })
		}), "+"),
		vdom.Button(vdom.Class("dec"), vdom.OnClick(func() {
			set.Update(func(n int) int { return n - 1 })
		}), "-"),
	)
})

// toggle is a button that shows its children while pressed.
// Props: label (string).
var toggle = vdom.Define("Toggle", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
	on, set := niber.UseState(ctx, false)
	return vdom.Div(vdom.Class("toggle"),
		vdom.Button(
			vdom.AriaPressed(on),
			vdom.OnClick(func() { set.Update(func(b bool) bool { return !b }) }),
			stringProp(p, "label"),
		),
		vdom.If(on, vdom.Div(vdom.Class("content"), vdom.ChildrenOf(p))),
	)
})

func stringProp(p vdom.Props, key string) string {
	s, _ := p[key].(string)
	return s
}

// intProp reads a number decoded from JSON (float64) or YAML (int).
func intProp(p vdom.Props, key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
