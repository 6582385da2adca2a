package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/niber/pkg/host"
	"github.com/vango-dev/niber/pkg/metrics"
	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/render"
	"github.com/vango-dev/niber/pkg/vdom"
)

// Harness is a mounted tree with a host container and a renderer.
type Harness struct {
	t         testing.TB
	Runtime   *niber.Runtime
	Container *host.Container
	Registry  *prometheus.Registry
	renderer  *render.Renderer
}

type options struct {
	logger  *slog.Logger
	render  render.Config
	runtime []niber.Option
}

// Option configures Mount.
type Option func(*options)

// WithLogger routes runtime and container logs to logger. By default they
// are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRenderConfig sets the renderer used by HTML and the Expect helpers.
func WithRenderConfig(config render.Config) Option {
	return func(o *options) {
		o.render = config
	}
}

// WithRuntimeOptions passes extra options to niber.New.
func WithRuntimeOptions(opts ...niber.Option) Option {
	return func(o *options) {
		o.runtime = append(o.runtime, opts...)
	}
}

// Mount renders node into a fresh runtime and container. Metrics go to a
// private registry. The tree is unmounted when the test ends.
//
// Example:
//
//	h := vtest.Mount(t, vdom.C(Counter))
//	h.Click(host.ByTag("button"))
//	h.ExpectText("1")
func Mount(t testing.TB, node *vdom.VNode, opts ...Option) *Harness {
	t.Helper()

	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	registry := prometheus.NewRegistry()
	runtimeOpts := append([]niber.Option{
		niber.WithLogger(o.logger),
		niber.WithMetrics(metrics.New(metrics.WithRegistry(registry))),
	}, o.runtime...)

	h := &Harness{
		t:         t,
		Runtime:   niber.New(runtimeOpts...),
		Container: host.NewContainer(host.WithLogger(o.logger)),
		Registry:  registry,
		renderer:  render.NewRenderer(o.render),
	}
	if err := h.Runtime.Render(node, h.Container); err != nil {
		t.Fatalf("vtest: mount failed: %v", err)
	}
	t.Cleanup(func() {
		unmount(t, h.Runtime)
	})
	return h
}

func unmount(t testing.TB, rt interface{ Unmount() error }) {
	t.Helper()
	if err := rt.Unmount(); err != nil {
		t.Errorf("vtest: unmount failed: %v", err)
	}
}

// Root returns the container node.
func (h *Harness) Root() *host.Node {
	return h.Container.Root()
}

// Rerender renders node against the mounted tree.
func (h *Harness) Rerender(node *vdom.VNode) {
	h.t.Helper()
	if err := h.Runtime.Render(node, h.Container); err != nil {
		h.t.Fatalf("vtest: render failed: %v", err)
	}
}

// Find returns the first node matching pred or fails the test.
func (h *Harness) Find(pred host.Predicate) *host.Node {
	h.t.Helper()
	node := h.Root().Find(pred)
	if node == nil {
		h.t.Fatalf("vtest: no matching node in:\n%s", truncate(h.HTML(), 500))
	}
	return node
}

// Dispatch fires eventType on the first node matching pred.
func (h *Harness) Dispatch(pred host.Predicate, eventType string, data any) {
	h.t.Helper()
	node := h.Find(pred)
	if !node.Dispatch(eventType, data) {
		h.t.Errorf("vtest: no %s listener on <%s> or its ancestors", eventType, node.Tag)
	}
}

// Click dispatches a click on the first node matching pred.
func (h *Harness) Click(pred host.Predicate) {
	h.t.Helper()
	h.Dispatch(pred, "click", nil)
}

// Text returns the text content of the committed tree.
func (h *Harness) Text() string {
	return h.Root().TextContent()
}

// HTML renders the committed tree.
func (h *Harness) HTML() string {
	html, err := h.renderer.RenderContainer(h.Container)
	if err != nil {
		h.t.Fatalf("vtest: render to html: %v", err)
	}
	return html
}

// ExpectText asserts the tree's text content.
func (h *Harness) ExpectText(want string) {
	h.t.Helper()
	if got := h.Text(); got != want {
		h.t.Errorf("text = %q, want %q", got, want)
	}
}

// ExpectContains asserts that the rendered HTML contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	expectContains(h.t, h.HTML(), expected)
}

// RenderToString mounts node in a throwaway runtime and returns its HTML.
// Errors produce an empty string.
//
// Example:
//
//	html := vtest.RenderToString(vdom.C(Greeting, vdom.Prop("name", "Ada")))
func RenderToString(node *vdom.VNode) string {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	rt := niber.New(
		niber.WithLogger(quiet),
		niber.WithMetrics(metrics.New(metrics.WithRegistry(prometheus.NewRegistry()))),
	)
	c := host.NewContainer(host.WithLogger(quiet))
	if err := rt.Render(node, c); err != nil {
		return ""
	}
	html, err := render.NewRenderer(render.Config{}).RenderContainer(c)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, vdom.C(Dashboard), "Welcome")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	expectContains(t, RenderToString(node), expected)
}

func expectContains(t testing.TB, html, expected string) {
	t.Helper()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, vdom.C(Button), "class", "btn-primary")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
