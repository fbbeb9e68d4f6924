package formatter

import (
	"log"
	"reflect"
)

const (
	// ModeDiffable selects the built-in diffable formatter.
	ModeDiffable = "diffable"
	// ModeNone returns markup unchanged. Any unrecognised mode does the same.
	ModeNone = "none"
)

const contractViolation = "Your custom markup formatter must return a string."

// Printer applies the configured formatting mode to markup.
//
// Mode is one of:
//   - ModeDiffable, to run Format with Options
//   - a custom formatter: func(string) string, func(string) (string, error)
//     or func(string) any; any other function is reported as a contract
//     violation
//   - anything else, including nil, to pass markup through untouched
type Printer struct {
	Mode    any
	Options Options
	// Logger receives contract violation warnings. Nil means log.Default().
	Logger *log.Logger
}

// NewPrinter returns a diffable Printer using opts.
func NewPrinter(opts Options) *Printer {
	return &Printer{Mode: ModeDiffable, Options: opts}
}

// Print formats markup according to p.Mode. A custom formatter that fails to
// produce a string is reported once and the original markup is returned.
func (p *Printer) Print(markup string) string {
	switch mode := p.Mode.(type) {
	case func(string) string:
		return mode(markup)
	case func(string) (string, error):
		out, err := mode(markup)
		if err != nil {
			p.warn(contractViolation + " " + err.Error())
			return markup
		}
		return out
	case func(string) any:
		if out, ok := mode(markup).(string); ok {
			return out
		}
		p.warn(contractViolation)
		return markup
	case string:
		if mode == ModeDiffable {
			return FormatMarkup(markup, p.Options)
		}
		return markup
	}
	// Any other function signature cannot yield a string.
	if p.Mode != nil && reflect.TypeOf(p.Mode).Kind() == reflect.Func {
		p.warn(contractViolation)
	}
	return markup
}

func (p *Printer) warn(msg string) {
	logger := p.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("diffable: %s", msg)
}
