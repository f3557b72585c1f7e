package main

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbshift/dbshift/internal/fsutil"
)

var prepareDirCmd = &cobra.Command{
	Use:   "prepare-dir <dir>",
	Short: "Reset a work directory to an empty state",
	Long: `Remove whatever tree exists at the given path and recreate it as an
empty directory, the state a migration run expects its work directory
to start from.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPrepareDir,
}

func init() {
	prepareDirCmd.Flags().String("mode", "0755", "octal mode for the created directory")
}

func runPrepareDir(cmd *cobra.Command, args []string) error {
	modeStr, _ := cmd.Flags().GetString("mode") //nolint:errcheck // flag name is hardcoded

	mode, err := strconv.ParseUint(modeStr, 8, 32)
	if err != nil || mode > 0o777 {
		return fmt.Errorf("invalid --mode %q (want an octal mode like 0750)", modeStr)
	}

	if err := fsutil.EnsureEmptyDir(args[0], fs.FileMode(mode)); err != nil {
		return &exitError{code: exitFailure}
	}
	return nil
}
