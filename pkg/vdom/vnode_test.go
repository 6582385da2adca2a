package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", Text("hello"), false},
		{"element without handlers", &VNode{Kind: KindElement, Tag: "div", Props: Props{"class": "test"}}, false},
		{"element with onclick", &VNode{Kind: KindElement, Tag: "button", Props: Props{"onclick": func() {}}}, true},
		{"prop named on", &VNode{Kind: KindElement, Tag: "div", Props: Props{"on": true}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPropsClone(t *testing.T) {
	orig := Props{"a": 1}
	clone := orig.Clone()
	clone["a"] = 2
	if orig["a"] != 1 {
		t.Errorf("Clone shares storage: orig[a] = %v", orig["a"])
	}

	var nilProps Props
	if got := nilProps.Clone(); got == nil || len(got) != 0 {
		t.Errorf("nil Clone() = %v, want empty map", got)
	}
}

func TestComponent(t *testing.T) {
	greet := Define("Greet", func(ctx Context, p Props) *VNode {
		return Textf("hi %v", p["name"])
	})

	if greet.Name() != "Greet" {
		t.Errorf("Name() = %q, want Greet", greet.Name())
	}

	out := greet.Render(nil, Props{"name": "ada"})
	if TextOf(out) != "hi ada" {
		t.Errorf("Render() text = %q, want %q", TextOf(out), "hi ada")
	}

	var missing *Component
	if missing.Render(nil, nil) != nil {
		t.Error("nil component should render nothing")
	}
	if missing.Name() != "" {
		t.Error("nil component should have no name")
	}
}

func TestC(t *testing.T) {
	item := Define("Item", func(ctx Context, p Props) *VNode { return nil })
	child := Span("x")

	node := C(item, Key(7), Prop("title", "seven"), child)

	if node.Kind != KindComponent {
		t.Errorf("Kind = %v, want Component", node.Kind)
	}
	if node.Comp != item {
		t.Error("Comp should be the defined component")
	}
	if !node.HasKey || node.Key != "7" {
		t.Errorf("Key = %q (HasKey %v), want \"7\"", node.Key, node.HasKey)
	}
	if node.Props["title"] != "seven" {
		t.Errorf("title prop = %v", node.Props["title"])
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key should not be stored as a prop")
	}
	if len(node.Children) != 0 {
		t.Errorf("component node Children = %d, want 0", len(node.Children))
	}
	if got := ChildrenOf(node.Props); len(got) != 1 || got[0] != child {
		t.Errorf("ChildrenOf() = %v, want [child]", got)
	}
}

func TestWithRef(t *testing.T) {
	ref := NewRef()
	node := Input(WithRef(ref))
	if node.Ref != ref {
		t.Errorf("Ref = %v, want %v", node.Ref, ref)
	}
}
