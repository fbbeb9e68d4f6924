package formatter

// From https://developer.mozilla.org/en-US/docs/Glossary/Void_element
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// SVG shapes that are conventionally written self-closed.
var selfClosingSVGElements = map[string]bool{
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"path":     true,
	"polygon":  true,
	"polyline": true,
	"rect":     true,
	"stop":     true,
	"use":      true,
}

// Escapable raw text elements never self-close and always keep
// an explicit closing tag.
var rawTextElements = map[string]bool{
	"textarea": true,
	"title":    true,
}

// IsVoidElement reports whether tag can never have children or a closing tag in HTML.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// IsSelfClosingSVGElement reports whether tag is an SVG shape element.
func IsSelfClosingSVGElement(tag string) bool {
	return selfClosingSVGElements[tag]
}

// IsRawTextElement reports whether tag is textarea or title.
func IsRawTextElement(tag string) bool {
	return rawTextElements[tag]
}
