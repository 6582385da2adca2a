package niber

import "github.com/vango-dev/niber/pkg/vdom"

// Ctx is the render context handed to a component function. It binds hook
// calls to the instance being rendered.
//
// A Ctx is valid only while the invocation that received it runs; hooks
// called with a stale Ctx fail with a configuration error.
type Ctx struct {
	rt   *Runtime
	inst *Instance
	done bool
}

var _ vdom.Context = (*Ctx)(nil)

// Rendering reports whether the invocation that received c is in progress.
func (c *Ctx) Rendering() bool {
	return c != nil && !c.done && c.rt != nil && c.rt.current == c.inst
}

// Instance returns the instance being rendered.
func (c *Ctx) Instance() *Instance {
	return c.inst
}

// Runtime returns the runtime performing the render.
func (c *Ctx) Runtime() *Runtime {
	return c.rt
}

// invoke calls inst's component function with its stored props. The hook
// cursor is reset first and the runtime's current instance is restored on
// return, including when the component panics.
func (rt *Runtime) invoke(inst *Instance) *vdom.VNode {
	inst.hookIndex = 0
	ctx := &Ctx{rt: rt, inst: inst}

	prev := rt.current
	rt.current = inst
	defer func() {
		ctx.done = true
		rt.current = prev
	}()

	rt.metrics.RecordRender(inst.Comp.Name())
	return inst.Comp.Render(ctx, inst.Props)
}

// Current returns the instance whose component function is running, or nil.
func (rt *Runtime) Current() *Instance {
	return rt.current
}
