package formatter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.EmptyAttributes)
	assert.Equal(t, VoidXHTML, opts.VoidElements)
	assert.False(t, opts.SelfClosingTag)
	assert.Equal(t, 1, opts.AttributesPerLine)
	assert.True(t, opts.EscapeInnerText)
	assert.Equal(t, []string{"a", "pre"}, opts.TagsWithWhitespacePreserved.Tags())
	assert.False(t, opts.TagsWithWhitespacePreserved.All())
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name  string
		raw   map[string]any
		check func(t *testing.T, o Options)
	}{
		{
			name:  "nil map is the default",
			raw:   nil,
			check: func(t *testing.T, o Options) { assert.Equal(t, DefaultOptions(), o) },
		},
		{
			name: "valid values are taken",
			raw: map[string]any{
				KeyEmptyAttributes:             false,
				KeyVoidElements:                "html",
				KeySelfClosingTag:              true,
				KeyAttributesPerLine:           int64(3),
				KeyEscapeInnerText:             false,
				KeyTagsWithWhitespacePreserved: []any{"code"},
			},
			check: func(t *testing.T, o Options) {
				assert.False(t, o.EmptyAttributes)
				assert.Equal(t, VoidHTML, o.VoidElements)
				assert.True(t, o.SelfClosingTag)
				assert.Equal(t, 3, o.AttributesPerLine)
				assert.False(t, o.EscapeInnerText)
				assert.True(t, o.TagsWithWhitespacePreserved.Contains("code"))
				assert.False(t, o.TagsWithWhitespacePreserved.Contains("a"))
			},
		},
		{
			name: "mistyped values fall back independently",
			raw: map[string]any{
				KeyEmptyAttributes:             "yes",
				KeyVoidElements:                42,
				KeySelfClosingTag:              1,
				KeyAttributesPerLine:           "2",
				KeyEscapeInnerText:             nil,
				KeyTagsWithWhitespacePreserved: []any{"a", 3},
			},
			check: func(t *testing.T, o Options) { assert.Equal(t, DefaultOptions(), o) },
		},
		{
			name: "one bad field keeps the good ones",
			raw: map[string]any{
				KeyAttributesPerLine: -1,
				KeySelfClosingTag:    true,
			},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 1, o.AttributesPerLine)
				assert.True(t, o.SelfClosingTag)
			},
		},
		{
			name: "unknown void mode",
			raw:  map[string]any{KeyVoidElements: "sgml"},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, VoidXHTML, o.VoidElements)
			},
		},
		{
			name: "xml is an alias of closingTag",
			raw:  map[string]any{KeyVoidElements: "xml"},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, VoidClosingTag, o.VoidElements)
			},
		},
		{
			name: "zero attributes per line",
			raw:  map[string]any{KeyAttributesPerLine: 0},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 0, o.AttributesPerLine)
			},
		},
		{
			name: "fractional attributes per line",
			raw:  map[string]any{KeyAttributesPerLine: 2.5},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 1, o.AttributesPerLine)
			},
		},
		{
			name: "whole float attributes per line",
			raw:  map[string]any{KeyAttributesPerLine: 4.0},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 4, o.AttributesPerLine)
			},
		},
		{
			name: "small integer attributes per line",
			raw:  map[string]any{KeyAttributesPerLine: int8(3)},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 3, o.AttributesPerLine)
			},
		},
		{
			name: "small unsigned attributes per line",
			raw:  map[string]any{KeyAttributesPerLine: uint16(5)},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 5, o.AttributesPerLine)
			},
		},
		{
			name: "out of range attributes per line",
			raw:  map[string]any{KeyAttributesPerLine: 1e300},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, 1, o.AttributesPerLine)
			},
		},
		{
			name: "preserve all",
			raw:  map[string]any{KeyTagsWithWhitespacePreserved: true},
			check: func(t *testing.T, o Options) {
				assert.True(t, o.TagsWithWhitespacePreserved.All())
				assert.True(t, o.TagsWithWhitespacePreserved.Contains("div"))
			},
		},
		{
			name: "preserve none",
			raw:  map[string]any{KeyTagsWithWhitespacePreserved: false},
			check: func(t *testing.T, o Options) {
				assert.False(t, o.TagsWithWhitespacePreserved.Contains("a"))
				assert.False(t, o.TagsWithWhitespacePreserved.Contains("pre"))
			},
		},
		{
			name: "string slice",
			raw:  map[string]any{KeyTagsWithWhitespacePreserved: []string{"span"}},
			check: func(t *testing.T, o Options) {
				assert.Equal(t, []string{"span"}, o.TagsWithWhitespacePreserved.Tags())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveOptions(tt.raw))
		})
	}
}

func TestPreserveTagsCopiesInput(t *testing.T) {
	tags := []string{"a"}
	p := PreserveTags(tags...)
	tags[0] = "b"
	assert.True(t, p.Contains("a"))

	out := p.Tags()
	out[0] = "c"
	assert.True(t, p.Contains("a"))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffable.toml")
	content := `formatter = "diffable"

[formatting]
attributesPerLine = 2
voidElements = "xml"
emptyAttributes = "nope"
tagsWithWhitespacePreserved = ["pre", "code"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, ModeDiffable, cfg.Formatter)

	opts := cfg.Options()
	assert.Equal(t, 2, opts.AttributesPerLine)
	assert.Equal(t, VoidClosingTag, opts.VoidElements)
	assert.True(t, opts.EmptyAttributes)
	assert.Equal(t, []string{"pre", "code"}, opts.TagsWithWhitespacePreserved.Tags())
}

func TestLoadConfigFile_NoFormattingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffable.toml")
	require.NoError(t, os.WriteFile(path, []byte(`formatter = "none"`), 0644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, ModeNone, cfg.Formatter)
	assert.Equal(t, DefaultOptions(), cfg.Options())
}

func TestLoadConfigFile_Errors(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("formatter = "), 0644))
	_, err = LoadConfigFile(path)
	assert.Error(t, err)
}
