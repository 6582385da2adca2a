package render

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/niber/pkg/host"
	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/vdom"
)

// commitTree renders desc into a fresh container.
func commitTree(t *testing.T, desc *vdom.VNode) *host.Container {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := host.NewContainer(host.WithLogger(logger))
	if err := niber.New(niber.WithLogger(logger)).Render(desc, c); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return c
}

func renderHTML(t *testing.T, config Config, desc *vdom.VNode) string {
	t.Helper()
	html, err := NewRenderer(config).RenderContainer(commitTree(t, desc))
	if err != nil {
		t.Fatalf("RenderContainer() error = %v", err)
	}
	return html
}

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(Config{})

	html, err := renderer.RenderToString(host.NewText("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"; html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderElement(t *testing.T) {
	html := renderHTML(t, Config{}, vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	))

	want := `<div class="container"><h1>Title</h1><p>Content</p></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name string
		desc *vdom.VNode
		want string
	}{
		{
			name: "sorted attributes",
			desc: vdom.Div(vdom.ID("b"), vdom.Class("a"), vdom.Data("x", "1")),
			want: `<div class="a" data-x="1" id="b"></div>`,
		},
		{
			name: "void element",
			desc: vdom.Input(vdom.Type("text"), vdom.Value("hi")),
			want: `<input type="text" value="hi">`,
		},
		{
			name: "boolean attributes",
			desc: vdom.Input(vdom.Disabled(), vdom.AttrIf(false, vdom.Checked())),
			want: `<input disabled>`,
		},
		{
			name: "false boolean attribute",
			desc: vdom.Element("input", vdom.Prop("required", false)),
			want: `<input>`,
		},
		{
			name: "escaped attribute",
			desc: vdom.A(vdom.Href("/?a=1&b=\"2\"")),
			want: `<a href="/?a=1&amp;b=&quot;2&quot;"></a>`,
		},
		{
			name: "renamed attributes",
			desc: vdom.Label(vdom.Prop("htmlFor", "name"), vdom.Prop("className", "l")),
			want: `<label class="l" for="name"></label>`,
		},
		{
			name: "numeric attribute",
			desc: vdom.Div(vdom.TabIndex(2)),
			want: `<div tabindex="2"></div>`,
		},
		{
			name: "handlers are not attributes",
			desc: vdom.Button(vdom.OnClick(func() {}), "go"),
			want: `<button>go</button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderHTML(t, Config{}, tt.desc); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEventMarkers(t *testing.T) {
	html := renderHTML(t, Config{EventMarkers: true},
		vdom.Button(vdom.OnClick(func() {}), vdom.OnInput(func() {})))

	want := `<button data-on-click="true" data-on-input="true"></button>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderComponentsAndFragments(t *testing.T) {
	pair := vdom.Define("Pair", func(ctx vdom.Context, p vdom.Props) *vdom.VNode {
		return vdom.Fragment(vdom.Li("a"), vdom.Li("b"))
	})

	html := renderHTML(t, Config{}, vdom.Ul(vdom.C(pair)))

	if want := `<ul><li>a</li><li>b</li></ul>`; html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderPretty(t *testing.T) {
	html := renderHTML(t, Config{Pretty: true}, vdom.Div(
		vdom.Span("0"),
		vdom.Ul(vdom.Li("x")),
		vdom.Text("tail"),
	))

	want := strings.Join([]string{
		"<div>",
		"  <span>0</span>",
		"  <ul>",
		"    <li>x</li>",
		"  </ul>",
		"  tail",
		"</div>",
		"",
	}, "\n")
	if html != want {
		t.Errorf("got:\n%s\nwant:\n%s", html, want)
	}
}

func TestRenderCustomIndent(t *testing.T) {
	html := renderHTML(t, Config{Pretty: true, Indent: "\t"}, vdom.Div(vdom.Span("x")))
	if !strings.Contains(html, "\n\t<span>x</span>\n") {
		t.Errorf("got %q, want tab indentation", html)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	err := NewRenderer(Config{}).RenderToWriter(failingWriter{}, host.NewElement("div"))
	if err == nil || err.Error() != "closed" {
		t.Errorf("RenderToWriter() error = %v, want closed", err)
	}
}

func TestRenderUnknownNodeType(t *testing.T) {
	_, err := NewRenderer(Config{}).RenderToString(&host.Node{Type: host.NodeType(9)})
	if err == nil {
		t.Error("unknown node types should fail")
	}
}

func TestRenderPage(t *testing.T) {
	c := commitTree(t, vdom.P("hi"))

	var buf bytes.Buffer
	err := NewRenderer(Config{}).RenderPage(&buf, c, PageData{
		Title:   "A & B",
		Styles:  []string{"p{color:red}"},
		LiveURL: "ws://localhost/ws",
	})
	if err != nil {
		t.Fatalf("RenderPage() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>\n",
		`<html lang="en">`,
		"<title>A &amp; B</title>",
		"<style>p{color:red}</style>",
		"<body>\n<p>hi</p>\n",
		`new WebSocket("ws://localhost/ws")`,
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
}

func TestEscape(t *testing.T) {
	if got := escapeAttr("a\nb\tc"); got != "a&#10;b&#9;c" {
		t.Errorf("escapeAttr() = %q", got)
	}
	if got := escapeHTML("plain"); got != "plain" {
		t.Errorf("escapeHTML() = %q", got)
	}
}
