package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dbshift/dbshift/internal/pathsearch"
)

var whichCmd = &cobra.Command{
	Use:   "which <name>",
	Short: "Locate a command in PATH",
	Long: `Locate a command the way the shell does, probing each PATH directory
in order. With --all every match is printed; --dedupe additionally
collapses entries that resolve to the same file on disk, as happens on
merged-/usr systems where /bin is a symlink to /usr/bin.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWhich,
}

func init() {
	whichCmd.Flags().BoolP("all", "a", false, "print every match, in PATH order")
	whichCmd.Flags().Bool("dedupe", false, "collapse matches resolving to the same file (implies --all)")
}

func runWhich(cmd *cobra.Command, args []string) error {
	name := args[0]
	all, _ := cmd.Flags().GetBool("all")       //nolint:errcheck // flag name is hardcoded
	dedupe, _ := cmd.Flags().GetBool("dedupe") //nolint:errcheck // flag name is hardcoded

	if !all && !dedupe {
		match, err := pathsearch.SearchPathFirst(name, slog.LevelError)
		if err != nil {
			return &exitError{code: exitFailure}
		}
		fmt.Fprintln(cmd.OutOrStdout(), match)
		return nil
	}

	matches, err := pathsearch.SearchPath(name)
	if err != nil {
		return &exitError{code: exitFailure}
	}
	if dedupe {
		matches, err = pathsearch.DeduplicateSymlinks(matches)
		if err != nil {
			return &exitError{code: exitFailure}
		}
	}
	if len(matches) == 0 {
		slog.Error("failed to find command in PATH", "filename", name)
		return &exitError{code: exitFailure}
	}

	for _, match := range matches {
		fmt.Fprintln(cmd.OutOrStdout(), match)
	}
	return nil
}
