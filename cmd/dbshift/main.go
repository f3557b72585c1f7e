package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbshift/dbshift/internal/config"
	"github.com/dbshift/dbshift/internal/logging"
	"github.com/dbshift/dbshift/internal/pathsearch"
)

var version = "dev"

// Exit codes: 0 success, 1 operation failure, 2 usage error, 3 internal
// error (the program cannot even locate itself).
const (
	exitFailure  = 1
	exitUsage    = 2
	exitInternal = 3
)

func main() {
	os.Exit(run())
}

// exitError carries a process exit code out of a RunE. The failure
// itself has already been logged by the layer that hit it.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func run() int {
	var (
		verbose     bool
		quiet       bool
		logFile     string
		showVersion bool
	)

	rootCmd := &cobra.Command{
		Use:           "dbshift",
		Short:         "File plumbing for database migrations",
		Long: `dbshift moves, duplicates, inspects, and locates files for a
database-migration workflow: moves survive filesystem boundaries with
ownership and permissions intact, PATH lookups collapse symlinked
duplicates, and paths normalize to their canonical form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load the optional config file before logging is up; a
			// broken file is reported but never fatal.
			cfg, cfgErr := config.Load()

			if logFile == "" && cfg.Log.File != nil {
				logFile = *cfg.Log.File
			}
			if err := setupLogging(verbose, quiet, cfg.Log.Level, logFile); err != nil {
				return err
			}
			if cfgErr != nil {
				slog.Warn("failed to load config", "path", config.ConfigPath(), "error", cfgErr)
			}

			pathsearch.MaxPathLength = cfg.MaxPathLength()
			pathsearch.MaxPathMatches = cfg.MaxPathMatches()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintf(os.Stdout, "dbshift %s\n", version)
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write structured JSON log to FILE")

	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(selfCmd)
	rootCmd.AddCommand(prepareDirCmd)

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*exitError); ok {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	return 0
}

// setupLogging installs the default slog logger: terse text on stderr,
// plus a debug-level JSON stream when a log file is configured. The log
// file stays open for the life of the process.
func setupLogging(verbose, quiet bool, cfgLevel *string, logFile string) error {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	} else if !quiet {
		logLevel = slog.LevelInfo
		if cfgLevel != nil {
			if parsed, ok := parseLevel(*cfgLevel); ok {
				logLevel = parsed
			}
		}
	}

	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	var logHandler slog.Handler = textHandler
	if logFile != "" {
		lf, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = logging.NewMultiHandler(textHandler, jsonHandler)
	}
	slog.SetDefault(slog.New(logHandler))
	return nil
}

func parseLevel(name string) (slog.Level, bool) {
	switch name {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
