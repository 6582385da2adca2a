package vdom

import "testing"

func TestText(t *testing.T) {
	node := Textf("%d items", 3)
	if node.Kind != KindText {
		t.Errorf("Kind = %v, want Text", node.Kind)
	}
	if node.Props[TextProp] != "3 items" {
		t.Errorf("nodeValue = %v, want %q", node.Props[TextProp], "3 items")
	}
	if node.Text != "3 items" {
		t.Errorf("Text = %q, want mirrored content", node.Text)
	}
}

func TestTextOf(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"nil", nil, ""},
		{"prop wins", &VNode{Kind: KindText, Props: Props{TextProp: "a"}, Text: "b"}, "a"},
		{"text fallback", &VNode{Kind: KindText, Text: "b"}, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextOf(tt.node); got != tt.want {
				t.Errorf("TextOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	node := Fragment("a", nil, Span(), []*VNode{Em()})
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want Fragment", node.Kind)
	}
	if node.Tag != "" {
		t.Errorf("Tag = %q, want empty", node.Tag)
	}
	if len(node.Children) != 3 {
		t.Errorf("Children len = %d, want 3", len(node.Children))
	}
}

func TestConditionals(t *testing.T) {
	a, b := Span(), Em()

	if If(true, a) != a || If(false, a) != nil {
		t.Error("If returned the wrong node")
	}
	if IfElse(true, a, b) != a || IfElse(false, a, b) != b {
		t.Error("IfElse returned the wrong node")
	}

	called := false
	When(false, func() *VNode { called = true; return a })
	if called {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *VNode { return a }) != a {
		t.Error("When(true) should return fn()")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "", "c"}
	nodes := Range(items, func(s string, i int) *VNode {
		if s == "" {
			return nil
		}
		return Li(Key(s), s)
	})

	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].Key != "c" {
		t.Errorf("nodes[1].Key = %q, want c", nodes[1].Key)
	}
}
