package host

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mount(t *testing.T, desc *vdom.VNode) (*niber.Runtime, *Container) {
	t.Helper()
	c := NewContainer(WithLogger(quietLogger()))
	rt := niber.New(niber.WithLogger(quietLogger()))
	if err := rt.Render(desc, c); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return rt, c
}

// outline is a comparable view of a node tree.
type outline struct {
	Type     string
	Tag      string
	Text     string
	Children []outline
}

func outlineOf(n *Node) outline {
	o := outline{Type: n.Type.String(), Tag: n.Tag, Text: n.Text}
	for _, c := range n.Children {
		o.Children = append(o.Children, outlineOf(c))
	}
	return o
}

var counter = vdom.Define("Counter", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
	count, set := niber.UseState(ctx, 0)
	return vdom.Div(
		vdom.Span(vdom.Textf("%d", count)),
		vdom.Button(vdom.OnClick(func() {
			set.Update(func(n int) int { return n + 1 })
		}), "+"),
	)
})

func TestCounterClick(t *testing.T) {
	_, c := mount(t, vdom.C(counter))

	span := c.Root().Find(ByTag("span"))
	if got := span.TextContent(); got != "0" {
		t.Fatalf("initial text = %q, want 0", got)
	}

	if !c.Root().Find(ByTag("button")).Dispatch("click", nil) {
		t.Fatal("click was not handled")
	}

	if got := c.Root().Find(ByTag("span")).TextContent(); got != "1" {
		t.Errorf("text after click = %q, want 1", got)
	}
}

func TestCommitComponentsAndFragments(t *testing.T) {
	wrapper := vdom.Define("Wrapper", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
		return vdom.Fragment(vdom.Li("a"), vdom.Li("b"))
	})

	_, c := mount(t, vdom.Ul(vdom.C(wrapper), vdom.Li("c")))

	want := outline{Type: "Element", Tag: "root", Children: []outline{
		{Type: "Element", Tag: "ul", Children: []outline{
			{Type: "Element", Tag: "li", Children: []outline{{Type: "Text", Text: "a"}}},
			{Type: "Element", Tag: "li", Children: []outline{{Type: "Text", Text: "b"}}},
			{Type: "Element", Tag: "li", Children: []outline{{Type: "Text", Text: "c"}}},
		}},
	}}
	if diff := cmp.Diff(want, outlineOf(c.Root())); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}

	ul := c.Root().Children[0]
	for _, li := range ul.Children {
		if li.Parent != ul {
			t.Error("spliced children should be parented to the ul")
		}
	}
}

func TestCommitReplacesContent(t *testing.T) {
	rt, c := mount(t, vdom.P("one"))
	old := c.Root().Children[0]

	if err := rt.Render(vdom.P("two"), c); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if len(c.Root().Children) != 1 || c.Root().TextContent() != "two" {
		t.Errorf("content = %q", c.Root().TextContent())
	}
	if old.Parent != nil {
		t.Error("previous content should be detached")
	}

	if err := rt.Unmount(); err != nil {
		t.Fatalf("Unmount() error = %v", err)
	}
	if len(c.Root().Children) != 0 {
		t.Error("Unmount should clear the container")
	}
}

func TestCommitNilContainer(t *testing.T) {
	if err := Commit(nil, nil); err == nil {
		t.Error("Commit with a nil container should fail")
	}
}

func TestUnknownKindIsSkipped(t *testing.T) {
	desc := vdom.Div(
		&vdom.VNode{Kind: vdom.KindElement},
		&vdom.VNode{Kind: vdom.VKind(42), Children: []*vdom.VNode{vdom.Text("hidden")}},
		vdom.Span("shown"),
	)

	_, c := mount(t, desc)

	div := c.Root().Children[0]
	if len(div.Children) != 1 || div.TextContent() != "shown" {
		t.Errorf("div children = %v, want only the span", outlineOf(div))
	}
}

func TestApplyProperties(t *testing.T) {
	clicks := 0
	var got Event
	node := NewElement("input")

	ApplyProperties(node, vdom.Props{
		"id":       "name",
		"onclick":  func() { clicks++ },
		"onInput":  func(e Event) { got = e },
		"onlabel":  "not a handler",
		"children": []*vdom.VNode{vdom.Text("x")},
	})

	if node.Attrs["id"] != "name" {
		t.Errorf("id = %v", node.Attrs["id"])
	}
	if node.Attrs["onlabel"] != "not a handler" {
		t.Error("non-func on* props should become attributes")
	}
	if _, ok := node.Attrs["children"]; ok {
		t.Error("children should not become an attribute")
	}
	if diff := cmp.Diff([]string{"click", "input"}, node.Events()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}

	node.Dispatch("click", nil)
	node.Dispatch("input", "ada")
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if got.Type != "input" || got.Data != "ada" || got.Target != node {
		t.Errorf("input event = %+v", got)
	}
}

func TestUnsupportedHandlerIsLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var typed any
	c := NewContainer(WithLogger(logger))
	rt := niber.New(niber.WithLogger(quietLogger()))
	err := rt.Render(vdom.Div(
		vdom.Input(vdom.OnInput(func(s string) {})),
		vdom.Textarea(vdom.OnInput(func(v any) { typed = v })),
	), c)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	input := c.Root().Find(ByTag("input"))
	if _, ok := input.Attrs["oninput"]; ok {
		t.Error("unsupported handler should not become an attribute")
	}
	if len(input.Events()) != 0 {
		t.Errorf("input events = %v, want none", input.Events())
	}
	out := logs.String()
	if !strings.Contains(out, "unsupported event handler") || !strings.Contains(out, "prop=oninput") {
		t.Errorf("expected a debug log for the handler, got:\n%s", out)
	}

	c.Root().Find(ByTag("textarea")).Dispatch("input", "hello")
	if typed != "hello" {
		t.Errorf("func(any) handler received %v, want hello", typed)
	}
}

func TestTextNodeValue(t *testing.T) {
	node := NewText("")
	ApplyProperties(node, vdom.Props{vdom.TextProp: "hello"})
	if node.Text != "hello" {
		t.Errorf("Text = %q, want hello", node.Text)
	}
}

func TestApplyRef(t *testing.T) {
	ref := vdom.NewRef()
	var called *Node

	_, c := mount(t, vdom.Div(
		vdom.Input(vdom.WithRef(ref)),
		vdom.Button(vdom.WithRef(func(n *Node) { called = n })),
	))

	if ref.Current != c.Root().Find(ByTag("input")) {
		t.Errorf("ref.Current = %v, want the input node", ref.Current)
	}
	if called != c.Root().Find(ByTag("button")) {
		t.Errorf("callback ref received %v, want the button node", called)
	}

	ApplyRef(NewElement("x"), 42) // ignored
}

func TestDispatchBubbles(t *testing.T) {
	var order []string
	outer := NewElement("div")
	inner := NewElement("button")
	outer.AddEventListener("click", func(e Event) {
		if e.Target != inner {
			t.Error("target should be the dispatching node")
		}
		order = append(order, "outer")
	})
	inner.AddEventListener("CLICK", func(Event) { order = append(order, "inner") })
	outer.AppendChild(inner)

	if !inner.Dispatch("Click", nil) {
		t.Fatal("Dispatch() = false, want true")
	}
	if diff := cmp.Diff([]string{"inner", "outer"}, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if NewElement("p").Dispatch("click", nil) {
		t.Error("Dispatch without listeners should report false")
	}
}

func TestQueries(t *testing.T) {
	_, c := mount(t, vdom.Ul(
		vdom.Li(vdom.Class("a"), "one"),
		vdom.Li(vdom.Class("b"), "two"),
		vdom.Li(vdom.Class("a"), "three"),
	))
	root := c.Root()

	if got := len(root.FindAll(ByTag("li"))); got != 3 {
		t.Errorf("FindAll(li) = %d, want 3", got)
	}
	if got := len(root.FindAll(ByAttr("class", "a"))); got != 2 {
		t.Errorf("FindAll(class=a) = %d, want 2", got)
	}
	if n := root.Find(ByText("two")); n == nil || n.Tag != "li" {
		t.Errorf("Find(text=two) = %v, want li", n)
	}
	if root.Find(ByTag("table")) != nil {
		t.Error("Find(table) should be nil")
	}
	if got := root.TextContent(); got != "onetwothree" {
		t.Errorf("TextContent() = %q", got)
	}
}

func TestAt(t *testing.T) {
	_, c := mount(t, vdom.Ul(vdom.Li("a"), vdom.Li("b")))

	n, err := c.Root().At([]int{0, 1})
	if err != nil {
		t.Fatalf("At() error = %v", err)
	}
	if n.TextContent() != "b" {
		t.Errorf("At([0 1]) = %q, want b", n.TextContent())
	}

	if _, err := c.Root().At([]int{0, 5}); err == nil {
		t.Error("At() out of range should fail")
	} else if !stderrors.Is(err, ErrNotFound) {
		t.Errorf("At() error = %v, want E041", err)
	}
}
