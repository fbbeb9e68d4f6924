package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Diff is the line diff between a stored snapshot and fresh output.
type Diff struct {
	Name string
	// Unified is empty when both sides are identical.
	Unified string
}

// Equal reports whether the snapshot matched.
func (d Diff) Equal() bool {
	return d.Unified == ""
}

// Compare builds a unified diff from want to got with three lines of context.
func Compare(name, want, got string) (Diff, error) {
	if want == got {
		return Diff{Name: name}, nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(ensureNewline(want)),
		B:        difflib.SplitLines(ensureNewline(got)),
		FromFile: name + " (snapshot)",
		ToFile:   name + " (formatted)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return Diff{}, fmt.Errorf("failed to diff %s: %w", name, err)
	}
	return Diff{Name: name, Unified: text}, nil
}

// Differing snapshots without a final newline would otherwise diff as a
// change to their last line.
func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// WriteDiff prints d to w, colouring additions, removals and hunk headers
// when useColor is set.
func WriteDiff(w io.Writer, d Diff, useColor bool) error {
	if d.Equal() {
		return nil
	}
	sc := bufio.NewScanner(strings.NewReader(d.Unified))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		var c *color.Color
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			c = color.New(color.Bold)
		case strings.HasPrefix(line, "@@"):
			c = color.New(color.FgCyan)
		case strings.HasPrefix(line, "+"):
			c = color.New(color.FgGreen)
		case strings.HasPrefix(line, "-"):
			c = color.New(color.FgRed)
		}
		if c == nil {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		if _, err := c.Fprintln(w, line); err != nil {
			return err
		}
	}
	return sc.Err()
}
