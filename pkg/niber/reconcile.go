package niber

import (
	"github.com/vango-dev/niber/pkg/metrics"
	"github.com/vango-dev/niber/pkg/vdom"
)

// diff reconciles a previous list of sibling instances against the next list
// of descriptions and returns the new sibling list.
//
// For each non-nil description at filtered position i the candidate is the
// previous instance with the same key, falling back to the previous instance
// at position i. A candidate of the same component type hands its hook state
// to the new instance; a candidate paired more than once hands the original
// store to its key match and copies to the others; a candidate of the same host type has its children
// reconciled; anything else is mounted from scratch. Previous instances that
// are never paired are dropped.
func (rt *Runtime) diff(prev []*Instance, next []*vdom.VNode) []*Instance {
	byKey := make(map[string]*Instance, len(prev))
	for _, p := range prev {
		if p.HasKey {
			byKey[p.Key] = p
		}
	}

	nodes := compact(next)

	// Instances some description will pair with by key.
	keyed := make(map[*Instance]bool, len(byKey))
	for _, v := range nodes {
		if p := byKey[v.Key]; v.HasKey && p != nil {
			keyed[p] = true
		}
	}

	out := make([]*Instance, 0, len(nodes))
	claimed := make(map[*Instance]bool, len(nodes))

	for i, v := range nodes {
		var candidate *Instance
		byPosition := false
		if v.HasKey {
			candidate = byKey[v.Key]
		}
		if candidate == nil && i < len(prev) {
			candidate = prev[i]
			byPosition = true
		}

		shared := claimed[candidate] || (byPosition && keyed[candidate])
		out = append(out, rt.reconcile(candidate, v, shared))
		if candidate != nil && !shared {
			claimed[candidate] = true
		}
	}
	return out
}

// reconcile produces the instance for v given its matching candidate.
func (rt *Runtime) reconcile(candidate *Instance, v *vdom.VNode, shared bool) *Instance {
	switch {
	case candidate != nil && sameComponentType(candidate, v):
		inst := rt.newInstance(v)
		inst.adoptHooks(candidate, shared)
		rt.metrics.RecordReconcile(metrics.OutcomeReuseComponent)
		out := rt.invoke(inst)
		inst.Children = rt.diff(candidate.Children, []*vdom.VNode{out})
		return inst

	case candidate != nil && sameHostType(candidate, v):
		inst := rt.newInstance(v)
		rt.metrics.RecordReconcile(metrics.OutcomeReuseHost)
		inst.Children = rt.diff(candidate.Children, v.Children)
		return inst

	default:
		return rt.mount(v)
	}
}

// compact returns next without nil entries.
func compact(next []*vdom.VNode) []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(next))
	for _, v := range next {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

func isComponentType(v *vdom.VNode) bool {
	return v.Kind == vdom.KindComponent
}

// sameComponentType reports whether inst and v call the same component.
func sameComponentType(inst *Instance, v *vdom.VNode) bool {
	return inst.IsComponent() && isComponentType(v) && inst.Comp == v.Comp
}

// sameHostType reports whether inst and v are non-component nodes of the
// same kind and tag.
func sameHostType(inst *Instance, v *vdom.VNode) bool {
	return !inst.IsComponent() && !isComponentType(v) &&
		inst.Kind == v.Kind && inst.Tag == v.Tag
}
