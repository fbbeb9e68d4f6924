package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/clems4ever/diffable/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigFile = ".diffable.toml"

func (s *settings) addFormattingFlags(f *pflag.FlagSet) {
	defaults := formatter.DefaultOptions()
	f.StringVarP(&s.configPath, "config", "c", "", "Path to a TOML config file (default "+defaultConfigFile+" if present)")
	f.StringVar(&s.formatterMode, "formatter", formatter.ModeDiffable, `Formatter mode: "diffable" or "none"`)
	f.StringVarP(&s.selector, "select", "s", "", "Only format elements matching this CSS selector")
	f.BoolVar(&s.emptyAttributes, "empty-attributes", defaults.EmptyAttributes, `Render valueless attributes as name=""`)
	f.StringVar(&s.voidElements, "void-elements", string(defaults.VoidElements), "Void element style: html, xhtml or closingTag")
	f.BoolVar(&s.selfClosingTag, "self-closing-tag", defaults.SelfClosingTag, "Self-close empty non-void elements")
	f.IntVar(&s.attributesPerLine, "attributes-per-line", defaults.AttributesPerLine, "Wrap attributes onto separate lines above this count")
	f.BoolVar(&s.escapeInnerText, "escape-inner-text", defaults.EscapeInnerText, "Escape text content")
	f.StringSliceVar(&s.preserveTags, "preserve-whitespace", defaults.TagsWithWhitespacePreserved.Tags(),
		`Tags whose text keeps its whitespace; "true" for all tags, "false" for none`)
}

// loadConfig reads the config file. A missing default file is not an error,
// a missing file named by --config is.
func (s *settings) loadConfig(c *cobra.Command) (formatter.Config, error) {
	path := s.configPath
	explicit := c.Flags().Changed("config")
	if !explicit {
		path = defaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return formatter.Config{Formatter: formatter.ModeDiffable}, nil
		}
	}
	cfg, err := formatter.LoadConfigFile(path)
	if err != nil {
		return formatter.Config{}, err
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.ModeDiffable
	}
	return cfg, nil
}

// newPrinter combines the config file with the flags the user set
// explicitly, flags taking precedence.
func (s *settings) newPrinter(c *cobra.Command) (*formatter.Printer, error) {
	cfg, err := s.loadConfig(c)
	if err != nil {
		return nil, err
	}

	raw := maps.Clone(cfg.Formatting)
	if raw == nil {
		raw = make(map[string]any)
	}
	flags := c.Flags()
	if flags.Changed("empty-attributes") {
		raw[formatter.KeyEmptyAttributes] = s.emptyAttributes
	}
	if flags.Changed("void-elements") {
		raw[formatter.KeyVoidElements] = s.voidElements
	}
	if flags.Changed("self-closing-tag") {
		raw[formatter.KeySelfClosingTag] = s.selfClosingTag
	}
	if flags.Changed("attributes-per-line") {
		raw[formatter.KeyAttributesPerLine] = s.attributesPerLine
	}
	if flags.Changed("escape-inner-text") {
		raw[formatter.KeyEscapeInnerText] = s.escapeInnerText
	}
	if flags.Changed("preserve-whitespace") {
		raw[formatter.KeyTagsWithWhitespacePreserved] = preserveValue(s.preserveTags)
	}

	mode := cfg.Formatter
	if flags.Changed("formatter") {
		mode = s.formatterMode
	}

	p := &formatter.Printer{
		Mode:    mode,
		Options: formatter.ResolveOptions(raw),
		Logger:  log.New(c.ErrOrStderr(), "", 0),
	}
	if s.selector == "" {
		return p, nil
	}

	if _, err := formatter.ParseSelect("", s.selector); err != nil {
		return nil, err
	}
	if mode != formatter.ModeDiffable {
		return nil, fmt.Errorf("--select requires the %q formatter", formatter.ModeDiffable)
	}
	opts, sel := p.Options, s.selector
	p.Mode = func(markup string) (string, error) {
		tree, err := formatter.ParseSelect(markup, sel)
		if err != nil {
			return "", err
		}
		return formatter.Format(tree, opts), nil
	}
	return p, nil
}

func preserveValue(tags []string) any {
	if len(tags) == 1 {
		switch strings.ToLower(tags[0]) {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return tags
}
