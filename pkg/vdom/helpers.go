package vdom

import "fmt"

// Text creates a text node. The content lives in the "nodeValue" prop and is
// mirrored in Text.
func Text(content string) *VNode {
	return &VNode{
		Kind:  KindText,
		Props: Props{TextProp: content},
		Text:  content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// TextOf returns the content of a text node, preferring the "nodeValue" prop.
func TextOf(v *VNode) string {
	if v == nil {
		return ""
	}
	if s, ok := v.Props[TextProp].(string); ok {
		return s
	}
	return v.Text
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := createElement("", children)
	node.Kind = KindFragment
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}
