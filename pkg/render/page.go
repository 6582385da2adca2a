package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/niber/pkg/host"
)

// PageData describes a standalone HTML document wrapping a container's
// content.
type PageData struct {
	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Styles contains inline CSS rules.
	Styles []string

	// LiveURL, when set, is a websocket URL; the page reloads whenever a
	// message arrives on it.
	LiveURL string
}

// liveScript reloads the page on every websocket message.
const liveScript = `(function(){var ws=new WebSocket(%q);ws.onmessage=function(){location.reload()};})();`

// RenderPage renders a complete HTML document with c's content as the body.
func (r *Renderer) RenderPage(w io.Writer, c *host.Container, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	sw := &stickyWriter{w: w}
	sw.WriteString("<!DOCTYPE html>\n")
	sw.WriteString(`<html lang="` + escapeAttr(lang) + `">` + "\n")
	sw.WriteString("<head>\n")
	sw.WriteString(`<meta charset="utf-8">` + "\n")
	if page.Title != "" {
		sw.WriteString("<title>" + escapeHTML(page.Title) + "</title>\n")
	}
	for _, style := range page.Styles {
		sw.WriteString("<style>" + style + "</style>\n")
	}
	sw.WriteString("</head>\n<body>\n")

	for _, child := range c.Root().Children {
		r.renderNode(sw, child, 0, r.config.Pretty)
	}
	if !r.config.Pretty && len(c.Root().Children) > 0 {
		sw.WriteString("\n")
	}

	if page.LiveURL != "" {
		sw.WriteString("<script>" + fmt.Sprintf(liveScript, page.LiveURL) + "</script>\n")
	}
	sw.WriteString("</body>\n</html>\n")
	return sw.err
}
