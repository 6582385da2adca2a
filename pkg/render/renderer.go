package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/vango-dev/niber/pkg/host"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables indented output. Inline elements stay on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// EventMarkers adds data-on-<event>="true" for every listener.
	EventMarkers bool
}

// Renderer serializes host node trees to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders node and its subtree.
func (r *Renderer) RenderToString(node *host.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node and its subtree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *host.Node) error {
	sw := &stickyWriter{w: w}
	r.renderNode(sw, node, 0, r.config.Pretty)
	return sw.err
}

// RenderContainer renders the committed content of c, without the
// container's own root element.
func (r *Renderer) RenderContainer(c *host.Container) (string, error) {
	var buf bytes.Buffer
	sw := &stickyWriter{w: &buf}
	for _, child := range c.Root().Children {
		r.renderNode(sw, child, 0, r.config.Pretty)
	}
	if sw.err != nil {
		return "", sw.err
	}
	return buf.String(), nil
}

// stickyWriter remembers the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (sw *stickyWriter) WriteString(s string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s)
}

func (sw *stickyWriter) fail(err error) {
	if sw.err == nil {
		sw.err = err
	}
}

// renderNode dispatches rendering based on node type. A node on its own line
// is indented and followed by a newline.
func (r *Renderer) renderNode(w *stickyWriter, node *host.Node, depth int, ownLine bool) {
	if node == nil {
		return
	}

	switch node.Type {
	case host.ElementNode:
		r.renderElement(w, node, depth, ownLine)
	case host.TextNode:
		if ownLine {
			r.writeIndent(w, depth)
		}
		w.WriteString(escapeHTML(node.Text))
		if ownLine {
			w.WriteString("\n")
		}
	case host.FragmentNode:
		for _, child := range node.Children {
			r.renderNode(w, child, depth, ownLine)
		}
	default:
		w.fail(fmt.Errorf("unknown node type: %d", node.Type))
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w *stickyWriter, node *host.Node, depth int, ownLine bool) {
	tag := node.Tag

	if ownLine {
		r.writeIndent(w, depth)
	}

	w.WriteString("<" + tag)
	r.renderAttributes(w, node)
	w.WriteString(">")

	if isVoidElement(tag) {
		if ownLine {
			w.WriteString("\n")
		}
		return
	}

	childLines := ownLine && len(node.Children) > 0 && !isInlineElement(tag)
	if childLines {
		w.WriteString("\n")
	}

	for _, child := range node.Children {
		r.renderNode(w, child, depth+1, childLines)
	}

	if childLines {
		r.writeIndent(w, depth)
	}
	w.WriteString("</" + tag + ">")
	if ownLine {
		w.WriteString("\n")
	}
}

// renderAttributes renders attributes in sorted order.
func (r *Renderer) renderAttributes(w *stickyWriter, node *host.Node) {
	keys := make([]string, 0, len(node.Attrs))
	for key := range node.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Attrs[key]
		if isFunc(value) {
			continue
		}

		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		}

		if isBooleanAttr(name) {
			if b, ok := value.(bool); ok {
				if b {
					w.WriteString(" " + name)
				}
				continue
			}
		}

		if s := attrToString(value); s != "" {
			w.WriteString(" " + name + `="` + escapeAttr(s) + `"`)
		}
	}

	if r.config.EventMarkers {
		for _, event := range node.Events() {
			w.WriteString(" data-on-" + event + `="true"`)
		}
	}
}

func isFunc(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w *stickyWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}
