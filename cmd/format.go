package cmd

import (
	"fmt"
	"io"

	"github.com/clems4ever/diffable/snapshot"
	"github.com/spf13/cobra"
)

func newFormatCmd(s *settings) *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format [file...]",
		Short: "Format markup files (or stdin) in the diffable layout",
		Long: `Format reads each file, or stdin when no file is given, and prints the
formatted markup. Multiple outputs are separated by a line containing "--".

Examples:
  diffable format page.html
  diffable format --void-elements html a.html b.html
  echo '<ul><li>x</li></ul>' | diffable format
  diffable format --select "#main" page.html`,
		RunE: func(c *cobra.Command, args []string) error {
			return runFormat(c, s, args)
		},
	}
	formatCmd.Flags().IntVarP(&s.jobs, "jobs", "j", 0, "Files formatted in parallel (default GOMAXPROCS)")
	return formatCmd
}

func runFormat(c *cobra.Command, s *settings, args []string) error {
	p, err := s.newPrinter(c)
	if err != nil {
		return err
	}
	out := c.OutOrStdout()

	if len(args) == 0 {
		input, err := io.ReadAll(c.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		_, err = fmt.Fprintln(out, p.Print(string(input)))
		return err
	}

	results, err := snapshot.FormatFiles(c.Context(), args, p, s.jobs)
	if err != nil {
		return err
	}
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(out, "--"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(out, res.Output); err != nil {
			return err
		}
	}
	return nil
}
