package main

import (
	"github.com/spf13/cobra"

	"github.com/dbshift/dbshift/internal/fsutil"
)

var mvCmd = &cobra.Command{
	Use:   "mv <source> <destination>",
	Short: "Move a file, surviving filesystem boundaries",
	Long: `Move a file like mv(1): an atomic rename when source and destination
share a filesystem, otherwise a verified copy carrying ownership and
permissions, followed by removal of the source. The destination is
never overwritten.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMv,
}

func runMv(_ *cobra.Command, args []string) error {
	if err := fsutil.MoveFile(args[0], args[1]); err != nil {
		// the failure is already logged with its path
		return &exitError{code: exitFailure}
	}
	return nil
}
