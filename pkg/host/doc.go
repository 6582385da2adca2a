// Package host materializes niber instance trees into in-memory platform
// nodes.
//
// It plays the part a browser DOM plays for a web renderer: Commit clears a
// container and rebuilds its content from the instance tree, event props
// become listeners that Dispatch invokes, and refs receive the created
// nodes.
//
//	c := host.NewContainer()
//	rt := niber.New()
//	_ = rt.Render(vdom.C(Counter), c)
//	c.Root().Find(host.ByTag("button")).Dispatch("click", nil)
package host
