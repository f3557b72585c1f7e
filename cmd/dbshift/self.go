package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbshift/dbshift/internal/pathsearch"
)

var selfCmd = &cobra.Command{
	Use:   "self",
	Short: "Print the absolute path of the running dbshift binary",
	Long: `Resolve the running program's own absolute path, preferring OS
introspection (/proc/self/exe and friends), then an absolute argv[0],
then a PATH search for the invocation name.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSelf,
}

func runSelf(cmd *cobra.Command, _ []string) error {
	path, err := pathsearch.ProgramPath()
	if err != nil {
		// Unrecoverable: a program that cannot locate itself cannot
		// re-exec its own subprocesses either.
		return &exitError{code: exitInternal}
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
