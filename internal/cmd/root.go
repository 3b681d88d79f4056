package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for taskbox.
func NewRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "taskbox",
		Short: "Small desk automation toolbox",
		Long: `Taskbox bundles three workstation automation tasks behind an
interactive menu and plain subcommands:

  move    move image files between two folders (never overwrites)
  emails  extract and validate email addresses from a document
  scrape  fetch webpages and extract their <title>

Running taskbox with no subcommand starts the interactive menu.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.OutOrStdout(), cmd.InOrStdin())
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewMenuCommand())
	cmd.AddCommand(NewEmailsCommand())
	cmd.AddCommand(NewMoveCommand())
	cmd.AddCommand(NewScrapeCommand())
	cmd.AddCommand(NewRunAllCommand())

	return cmd
}

// setupLogging routes slog to stderr so task output on stdout stays
// clean. Default level is warn; --verbose lowers it to debug.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
