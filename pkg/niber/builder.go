package niber

import (
	"github.com/vango-dev/niber/pkg/metrics"
	"github.com/vango-dev/niber/pkg/vdom"
)

// build mounts each child description under parent. Nil entries are the
// result of conditional rendering; they are skipped and building continues
// with the next sibling.
func (rt *Runtime) build(parent *Instance, children []*vdom.VNode) {
	for i, child := range children {
		if child == nil {
			rt.logger.Debug("skipping empty child", "parent", parent.ID, "index", i)
			continue
		}
		parent.Children = append(parent.Children, rt.mount(child))
	}
}

// mount creates a fresh instance for v and builds its subtree.
func (rt *Runtime) mount(v *vdom.VNode) *Instance {
	inst := rt.newInstance(v)
	rt.metrics.RecordReconcile(metrics.OutcomeMount)
	rt.populate(inst, v)
	return inst
}

// populate builds the children of a newly created instance. A component's
// only child is the node its function returned.
func (rt *Runtime) populate(inst *Instance, v *vdom.VNode) {
	if inst.IsComponent() {
		out := rt.invoke(inst)
		rt.build(inst, []*vdom.VNode{out})
		return
	}
	rt.build(inst, v.Children)
}

// mountRoot builds a tree for v and installs it as the root. The root is
// installed before any component function runs.
func (rt *Runtime) mountRoot(v *vdom.VNode) {
	inst := rt.newInstance(v)
	rt.root = inst
	rt.logger.Debug("mounting root", "root", inst.ID, "kind", inst.Kind.String(), "name", inst.Name())
	rt.populate(inst, v)
}
