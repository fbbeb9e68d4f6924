package formatter

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// VoidMode selects how void elements and SVG shapes are terminated.
type VoidMode string

const (
	// VoidHTML leaves void elements unterminated: <br>
	VoidHTML VoidMode = "html"
	// VoidXHTML self-closes void elements: <br />
	VoidXHTML VoidMode = "xhtml"
	// VoidClosingTag gives void elements an explicit closing tag: <br></br>
	VoidClosingTag VoidMode = "closingTag"
)

// Option keys as they appear in configuration files.
const (
	KeyEmptyAttributes             = "emptyAttributes"
	KeyVoidElements                = "voidElements"
	KeySelfClosingTag              = "selfClosingTag"
	KeyAttributesPerLine           = "attributesPerLine"
	KeyEscapeInnerText             = "escapeInnerText"
	KeyTagsWithWhitespacePreserved = "tagsWithWhitespacePreserved"
)

// Preserve is the set of tags whose text content is emitted verbatim.
// The zero value preserves nothing.
type Preserve struct {
	all  bool
	tags []string
}

// PreserveAll preserves whitespace inside every tag.
func PreserveAll() Preserve {
	return Preserve{all: true}
}

// PreserveNone re-indents text inside every tag.
func PreserveNone() Preserve {
	return Preserve{}
}

// PreserveTags preserves whitespace inside the named tags only.
func PreserveTags(tags ...string) Preserve {
	return Preserve{tags: slices.Clone(tags)}
}

// Contains reports whether text directly inside tag keeps its whitespace.
func (p Preserve) Contains(tag string) bool {
	return p.all || slices.Contains(p.tags, tag)
}

// All reports whether every tag is preserved.
func (p Preserve) All() bool {
	return p.all
}

// Tags returns a copy of the explicit tag list.
func (p Preserve) Tags() []string {
	return slices.Clone(p.tags)
}

// Options controls the diffable output. Build it with DefaultOptions or
// ResolveOptions; the zero value is not the default configuration.
type Options struct {
	// EmptyAttributes renders valueless attributes as name="" instead of name.
	EmptyAttributes bool
	VoidElements    VoidMode
	// SelfClosingTag self-closes childless elements that are not void or raw text.
	SelfClosingTag bool
	// AttributesPerLine is the largest attribute count kept on the tag's line.
	AttributesPerLine int
	EscapeInnerText   bool

	TagsWithWhitespacePreserved Preserve
}

// DefaultOptions returns the configuration used when nothing is specified.
func DefaultOptions() Options {
	return Options{
		EmptyAttributes:             true,
		VoidElements:                VoidXHTML,
		SelfClosingTag:              false,
		AttributesPerLine:           1,
		EscapeInnerText:             true,
		TagsWithWhitespacePreserved: PreserveTags("a", "pre"),
	}
}

// ResolveOptions builds Options from loosely typed input such as a decoded
// TOML or JSON document. Every missing or mistyped field independently falls
// back to its default; unknown keys are ignored.
func ResolveOptions(raw map[string]any) Options {
	opts := DefaultOptions()

	if v, ok := raw[KeyEmptyAttributes].(bool); ok {
		opts.EmptyAttributes = v
	}
	if v, ok := parseVoidMode(raw[KeyVoidElements]); ok {
		opts.VoidElements = v
	}
	if v, ok := raw[KeySelfClosingTag].(bool); ok {
		opts.SelfClosingTag = v
	}
	if v, ok := toInt(raw[KeyAttributesPerLine]); ok && v >= 0 {
		opts.AttributesPerLine = v
	}
	if v, ok := raw[KeyEscapeInnerText].(bool); ok {
		opts.EscapeInnerText = v
	}
	if v, ok := parsePreserve(raw[KeyTagsWithWhitespacePreserved]); ok {
		opts.TagsWithWhitespacePreserved = v
	}
	return opts
}

func parseVoidMode(v any) (VoidMode, bool) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case VoidMode:
		s = string(x)
	default:
		return "", false
	}
	switch s {
	case string(VoidHTML):
		return VoidHTML, true
	case string(VoidXHTML):
		return VoidXHTML, true
	// "xml" is the older name of the closing tag mode.
	case string(VoidClosingTag), "xml":
		return VoidClosingTag, true
	}
	return "", false
}

func parsePreserve(v any) (Preserve, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return PreserveAll(), true
		}
		return PreserveNone(), true
	case Preserve:
		return x, true
	case []string:
		return PreserveTags(x...), true
	case []any:
		tags := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return Preserve{}, false
			}
			tags = append(tags, s)
		}
		return PreserveTags(tags...), true
	}
	return Preserve{}, false
}

func toInt(v any) (int, bool) {
	var (
		n   int
		err error
	)
	switch x := v.(type) {
	case int:
		n = x
	case int8:
		n, err = safecast.Conv[int](x)
	case int16:
		n, err = safecast.Conv[int](x)
	case int32:
		n, err = safecast.Conv[int](x)
	case int64:
		n, err = safecast.Conv[int](x)
	case uint:
		n, err = safecast.Conv[int](x)
	case uint8:
		n, err = safecast.Conv[int](x)
	case uint16:
		n, err = safecast.Conv[int](x)
	case uint32:
		n, err = safecast.Conv[int](x)
	case uint64:
		n, err = safecast.Conv[int](x)
	case float32:
		n, err = safecast.Convert[int](x)
	case float64:
		// Convert rejects fractional values.
		n, err = safecast.Convert[int](x)
	default:
		return 0, false
	}
	return n, err == nil
}

// Config is the content of a configuration file: the formatter mode and the
// raw, unresolved formatting section.
//
//	formatter = "diffable"
//
//	[formatting]
//	attributesPerLine = 2
//	voidElements = "html"
type Config struct {
	Formatter  any
	Formatting map[string]any
}

// Options resolves the formatting section.
func (c Config) Options() Options {
	return ResolveOptions(c.Formatting)
}

// LoadConfigFile reads a TOML configuration file.
func LoadConfigFile(path string) (Config, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	cfg := Config{Formatter: raw["formatter"]}
	if section, ok := raw["formatting"].(map[string]any); ok {
		cfg.Formatting = section
	}
	return cfg, nil
}
