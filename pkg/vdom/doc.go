// Package vdom describes UI trees as plain values.
//
// A VNode says what should exist at one position of the UI: an element with
// a tag, a text node, a fragment that groups children without a wrapper, or
// a call to a component. The niber runtime turns VNodes into instances and
// reconciles fresh VNode trees against the existing instances on every
// render.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    Button(OnClick(handler), Text("Save")),
//	)
//
// # Components
//
// A Component wraps a render function. Components are identified by pointer,
// so define them once:
//
//	var Greeting = vdom.Define("Greeting", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
//	    return vdom.P(vdom.Textf("Hello, %v", p["name"]))
//	})
//
//	vdom.C(Greeting, vdom.Prop("name", "Ada"), vdom.Key("ada"))
//
// # Keys
//
// Key marks a child for identity-based matching among its siblings. An
// explicit empty key is still a key; HasKey records whether one was set.
package vdom
