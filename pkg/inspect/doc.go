// Package inspect serves a debug view of a running niber runtime.
//
// Routes:
//
//	GET  /tree      instance tree snapshot as JSON
//	GET  /html      committed host tree as an HTML page that reloads on commit
//	POST /dispatch  fire an event on a host node: {"path": [0, 1], "event": "click"}
//	GET  /metrics   Prometheus metrics
//	GET  /ws        websocket stream of commit notifications
//
// Usage:
//
//	rt := niber.New()
//	c := host.NewContainer()
//	rt.Render(vdom.C(App), c)
//
//	srv := inspect.New(inspect.Config{Runtime: rt, Container: c})
//	srv.Run(ctx, "localhost:7070")
package inspect
