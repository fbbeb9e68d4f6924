package cmd

import (
	"fmt"
	"os"

	"github.com/clems4ever/diffable/snapshot"
	"github.com/spf13/cobra"
)

func newDiffCmd(s *settings) *cobra.Command {
	diffCmd := &cobra.Command{
		Use:   "diff <snapshot> <markup>",
		Short: "Compare a stored snapshot with freshly formatted markup",
		Long: `Diff formats the markup file and compares it line by line with the
snapshot file. Differences are printed as a unified diff and the command
exits with status 1. With --update the snapshot is rewritten instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, s, args)
		},
	}
	diffCmd.Flags().BoolVarP(&s.updateSnapshot, "update", "u", false, "Rewrite the snapshot with the formatted markup")
	return diffCmd
}

func runDiff(c *cobra.Command, s *settings, args []string) error {
	snapshotPath, markupPath := args[0], args[1]

	p, err := s.newPrinter(c)
	if err != nil {
		return err
	}
	markup, err := os.ReadFile(markupPath)
	if err != nil {
		return fmt.Errorf("failed to read markup: %w", err)
	}
	formatted := p.Print(string(markup))

	if s.updateSnapshot {
		if err := os.WriteFile(snapshotPath, []byte(formatted), 0644); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		return nil
	}

	stored, err := os.ReadFile(snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	d, err := snapshot.Compare(snapshotPath, string(stored), formatted)
	if err != nil {
		return err
	}
	if d.Equal() {
		return nil
	}
	if err := snapshot.WriteDiff(c.OutOrStdout(), d, s.useColor(os.Stdout)); err != nil {
		return err
	}
	return errMismatch
}
