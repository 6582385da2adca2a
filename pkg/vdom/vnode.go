package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Component function call
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// TextProp is the prop holding the content of a text node.
const TextProp = "nodeValue"

// VNode describes what should exist at one position of the UI.
//
// A VNode is a value: the runtime reads it but never modifies it, and every
// render produces a fresh tree. Kind together with Tag (elements) or Comp
// (components) is the node's type for reconciliation purposes.
type VNode struct {
	Kind     VKind      // Node type
	Tag      string     // Element tag name (e.g., "div")
	Comp     *Component // For KindComponent
	Props    Props      // Attributes, event handlers, component props
	Children []*VNode   // Child nodes; nil entries are skipped
	Key      string     // Reconciliation key
	HasKey   bool       // Key was set explicitly ("" is a valid key)
	Ref      any        // Platform node handle receiver
	Text     string     // For KindText
}

// Props holds attributes, event handlers and component props.
type Props map[string]any

// Clone returns a shallow copy of the props. A nil map clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if IsEventProp(key) {
			return true
		}
	}
	return false
}

// IsEventProp reports whether a prop key names an event handler ("onclick").
func IsEventProp(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// Ref is a mutable holder filled with the platform node once it exists.
type Ref struct {
	Current any
}

// NewRef creates an empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// refAttr carries a ref through the element factory arguments.
type refAttr struct {
	ref any
}

// WithRef attaches a ref to an element. ref is either a *Ref or a callback
// that receives the platform node.
func WithRef(ref any) any {
	return refAttr{ref: ref}
}
