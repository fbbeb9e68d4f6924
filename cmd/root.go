package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// settings holds the flag values of one command tree.
type settings struct {
	noColor bool

	configPath        string
	formatterMode     string
	selector          string
	emptyAttributes   bool
	voidElements      string
	selfClosingTag    bool
	attributesPerLine int
	escapeInnerText   bool
	preserveTags      []string

	jobs           int
	updateSnapshot bool
}

// errMismatch is returned when a snapshot differs; the diff has already
// been printed so Execute only sets the exit code.
var errMismatch = errors.New("snapshot mismatch")

func newRootCmd(s *settings) *cobra.Command {
	root := &cobra.Command{
		Use:   "diffable",
		Short: "Formats markup so snapshot diffs stay small",
		Long: `Diffable renders HTML fragments into a stable, indented layout where
every element starts on its own line. A change to one element only moves
the lines of that element, which keeps snapshot diffs readable.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVar(&s.noColor, "no-color", false, "Disable colored output")
	s.addFormattingFlags(root.PersistentFlags())

	root.AddCommand(newFormatCmd(s), newDiffCmd(s))
	return root
}

func Execute() {
	s := &settings{}
	err := newRootCmd(s).Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errMismatch) {
		c := color.New(color.FgRed)
		if !s.useColor(os.Stderr) {
			c.DisableColor()
		}
		c.Fprint(os.Stderr, "Error:")
		os.Stderr.WriteString(" " + err.Error() + "\n")
	}
	os.Exit(1)
}

// useColor enables ANSI colors only when f is a terminal, unless disabled by
// --no-color, NO_COLOR or color.NoColor.
func (s *settings) useColor(f *os.File) bool {
	if s.noColor || color.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
