package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Multiple classes are joined with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the inline style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data sets a data-* attribute.
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility

func Role(role string) Attr         { return attr("role", role) }
func AriaLabel(label string) Attr   { return attr("aria-label", label) }
func AriaPressed(pressed bool) Attr { return attr("aria-pressed", pressed) }
func TitleAttr(title string) Attr   { return attr("title", title) }
func TabIndex(index int) Attr       { return attr("tabindex", index) }
func Hidden() Attr                  { return attr("hidden", true) }

// Links and forms

func Href(url string) Attr         { return attr("href", url) }
func Name(name string) Attr        { return attr("name", name) }
func Value(value string) Attr      { return attr("value", value) }
func Type(t string) Attr           { return attr("type", t) }
func Placeholder(text string) Attr { return attr("placeholder", text) }
func Disabled() Attr               { return attr("disabled", true) }
func Checked() Attr                { return attr("checked", true) }
func Src(url string) Attr          { return attr("src", url) }
func Alt(text string) Attr         { return attr("alt", text) }

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
