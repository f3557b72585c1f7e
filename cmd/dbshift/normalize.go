package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbshift/dbshift/internal/pathsearch"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <path>",
	Short: "Print the canonical real path of a file",
	Long: `Resolve symlinks and collapse redundant separators in a path that
exists on disk. A path that does not exist yet is printed unchanged, so
configuration can name files created later in the migration.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	normalized, err := pathsearch.NormalizeFilename(args[0])
	if err != nil {
		return &exitError{code: exitFailure}
	}
	fmt.Fprintln(cmd.OutOrStdout(), normalized)
	return nil
}
