package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dgallion1/taskbox/internal/config"
	"github.com/dgallion1/taskbox/internal/mover"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewMoveCommand creates and returns the move subcommand.
func NewMoveCommand() *cobra.Command {
	var exts []string

	cmd := &cobra.Command{
		Use:   "move <source-dir> <dest-dir>",
		Short: "Move image files between two folders",
		Long: `Move every file in the source folder whose extension matches one
of the configured patterns into the destination folder. Files whose
name already exists at the destination are skipped, never overwritten.
Per-file failures are collected and do not abort the remaining files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if len(exts) == 0 {
				exts = cfg.ImageExtensions
			}
			runMove(cmd.OutOrStdout(), args[0], args[1], exts)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&exts, "ext", "e", nil, "extensions to move (default from TASKBOX_IMAGE_EXTS: jpg,jpeg)")

	return cmd
}

func runMove(w io.Writer, src, dst string, exts []string) mover.Result {
	fmt.Fprintf(w, "Source: %s\n", src)
	fmt.Fprintf(w, "Destination: %s\n", dst)

	res := mover.New(slog.Default()).Move(src, dst, exts)

	for _, name := range res.Moved {
		fmt.Fprintf(w, "Moved: %s\n", name)
	}
	for _, name := range res.Skipped {
		fmt.Fprintf(w, "Skipped (already exists): %s\n", name)
	}

	if len(res.Moved) > 0 {
		color.New(color.FgGreen).Fprintf(w, "\nOperation completed! Moved %d files.\n", len(res.Moved))
	} else {
		fmt.Fprintln(w, "\nNo files were moved.")
	}
	if len(res.Errors) > 0 {
		color.New(color.FgRed).Fprintf(w, "Encountered %d errors:\n", len(res.Errors))
		for _, e := range res.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	return res
}
