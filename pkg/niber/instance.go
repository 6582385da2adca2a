package niber

import (
	"fmt"

	"github.com/vango-dev/niber/pkg/vdom"
)

// Instance is the persistent counterpart of a VNode. The runtime keeps a tree
// of instances across renders; component instances additionally carry their
// hook state.
//
// Instances are owned by the runtime. Callers may read them (for inspection
// and by the platform layer) but must not modify them.
type Instance struct {
	// ID identifies the instance within its runtime ("i1", "i2", ...).
	// It plays no part in matching.
	ID string

	Kind vdom.VKind
	Tag  string
	Comp *vdom.Component

	// Props is a copy of the description's props.
	Props vdom.Props

	// Children are exclusively owned by this instance.
	Children []*Instance

	Key    string
	HasKey bool
	Ref    any

	// hooks holds the memoized state of a component instance. It is nil for
	// every other kind and is handed over verbatim when the instance is
	// replaced by a matching one.
	hooks     *hookStore
	hookIndex int
}

// hookStore is the ordered list of hook cells of one component occurrence.
// owner tracks the instance currently representing the occurrence, so that
// setters created during an earlier render still update the live instance.
type hookStore struct {
	cells []any
	owner *Instance
}

func (rt *Runtime) newInstance(v *vdom.VNode) *Instance {
	rt.nextID++
	inst := &Instance{
		ID:     fmt.Sprintf("i%d", rt.nextID),
		Kind:   v.Kind,
		Tag:    v.Tag,
		Comp:   v.Comp,
		Props:  v.Props.Clone(),
		Key:    v.Key,
		HasKey: v.HasKey,
		Ref:    v.Ref,
	}
	if inst.IsComponent() {
		inst.hooks = &hookStore{owner: inst}
	}
	return inst
}

// adoptHooks hands the hook store of prev over to inst.
func (inst *Instance) adoptHooks(prev *Instance, shared bool) {
	if prev.hooks == nil {
		return
	}
	if shared {
		// prev's store belongs to another occurrence in this pass.
		inst.hooks = &hookStore{cells: append([]any(nil), prev.hooks.cells...), owner: inst}
		return
	}
	inst.hooks = prev.hooks
	inst.hooks.owner = inst
}

// IsComponent reports whether the instance was created from a component node.
func (inst *Instance) IsComponent() bool {
	return inst.Kind == vdom.KindComponent
}

// Name returns the component name, or the tag for elements.
func (inst *Instance) Name() string {
	if inst.IsComponent() {
		return inst.Comp.Name()
	}
	return inst.Tag
}

// State returns a copy of the hook cells.
func (inst *Instance) State() []any {
	if inst.hooks == nil {
		return nil
	}
	return append([]any(nil), inst.hooks.cells...)
}

// Text returns the content of a text instance.
func (inst *Instance) Text() string {
	s, _ := inst.Props[vdom.TextProp].(string)
	return s
}

// Walk calls fn for inst and every descendant in depth-first order.
// Returning false from fn skips the instance's children.
func (inst *Instance) Walk(fn func(*Instance) bool) {
	if inst == nil || !fn(inst) {
		return
	}
	for _, child := range inst.Children {
		child.Walk(fn)
	}
}

// Count returns the number of instances in the subtree rooted at inst.
func (inst *Instance) Count() int {
	n := 0
	inst.Walk(func(*Instance) bool {
		n++
		return true
	})
	return n
}
