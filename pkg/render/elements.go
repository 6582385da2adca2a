package render

import "strings"

func setOf(names string) map[string]bool {
	set := make(map[string]bool)
	for _, name := range strings.Fields(names) {
		set[name] = true
	}
	return set
}

var (
	// voidElements have no closing tag.
	voidElements = setOf(`area base br col embed hr img input link meta param source track wbr`)

	// inlineElements stay on one line in pretty-printed output.
	inlineElements = setOf(`a abbr b bdi bdo br button cite code data dfn em i kbd label li mark q
		rb rp rt rtc ruby s samp small span strong sub sup time u var wbr`)

	// booleanAttrs are written without a value when true.
	booleanAttrs = setOf(`allowfullscreen async autofocus autoplay checked controls default defer
		disabled formnovalidate hidden ismap itemscope loop multiple muted nomodule novalidate
		open playsinline readonly required reversed selected`)
)

func isVoidElement(tag string) bool   { return voidElements[tag] }
func isInlineElement(tag string) bool { return inlineElements[tag] }
func isBooleanAttr(name string) bool  { return booleanAttrs[name] }
