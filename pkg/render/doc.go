// Package render serializes committed host trees to HTML.
//
// Output is deterministic: attributes are sorted, text and attribute values
// are escaped, void elements have no closing tag and boolean attributes are
// written without a value. Listeners are not serialized; with EventMarkers
// each one is announced as a data-on-<event> attribute.
//
//	renderer := render.NewRenderer(render.Config{Pretty: true})
//	html, err := renderer.RenderContainer(container)
package render
