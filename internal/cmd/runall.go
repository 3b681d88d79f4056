package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/taskbox/internal/config"
	"github.com/dgallion1/taskbox/internal/emails"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRunAllCommand creates and returns the all subcommand.
func NewRunAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run all three automation tasks against the demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			runAllTasks(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

type taskResult struct {
	name string
	ok   bool
}

// runAllTasks executes the three demo tasks one at a time and prints
// a summary. Task failures never abort the sequence.
func runAllTasks(w io.Writer, cfg config.Config) []taskResult {
	rule := strings.Repeat("=", menuWidth)
	color.New(color.Bold).Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "RUNNING ALL AUTOMATION TASKS")
	fmt.Fprintln(w, rule)

	results := []taskResult{
		{"Move Image Files", demoMove(w, cfg)},
		{"Extract Emails", demoEmailsOK(w, cfg)},
		{"Scrape Webpage", demoScrape(w, cfg)},
	}

	successful := 0
	for _, r := range results {
		if r.ok {
			successful++
		}
	}

	color.New(color.Bold).Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "AUTOMATION TASKS SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total tasks: %d\n", len(results))
	fmt.Fprintf(w, "Successful: %d\n", successful)
	fmt.Fprintf(w, "Failed: %d\n", len(results)-successful)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", float64(successful)/float64(len(results))*100)

	fmt.Fprintln(w, "\nDetailed results:")
	for _, r := range results {
		status := "FAILED"
		c := color.New(color.FgRed)
		if r.ok {
			status = "SUCCESS"
			c = color.New(color.FgGreen)
		}
		c.Fprintf(w, "  %s: %s\n", r.name, status)
	}

	return results
}

func banner(w io.Writer, title string) {
	rule := strings.Repeat("-", 50)
	fmt.Fprintln(w, "\n"+rule)
	color.New(color.Bold).Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func demoMove(w io.Writer, cfg config.Config) bool {
	banner(w, "TASK 1: MOVE IMAGE FILES")
	res := runMove(w,
		filepath.Join(cfg.DataDir, "images"),
		filepath.Join(cfg.OutputDir, "moved_images"),
		cfg.ImageExtensions)
	return len(res.Moved) > 0
}

func demoEmails(w io.Writer, cfg config.Config) (emails.Result, error) {
	banner(w, "TASK 2: EXTRACT EMAIL ADDRESSES")
	input := filepath.Join(cfg.DataDir, "sample_text_with_emails.txt")
	return runEmails(w, cfg, input, "", true)
}

func demoEmailsOK(w io.Writer, cfg config.Config) bool {
	res, err := demoEmails(w, cfg)
	if err != nil {
		color.New(color.FgRed).Fprintf(w, "Error processing file: %v\n", err)
		return false
	}
	return res.Status == emails.StatusExtracted
}

func demoScrape(w io.Writer, cfg config.Config) bool {
	banner(w, "TASK 3: SCRAPE WEBPAGE TITLE")
	fmt.Fprintln(w, "(Note: this requires an internet connection)")
	results := runScrape(context.Background(), w, cfg, []string{cfg.DemoURL}, "", cfg.OutputDir)
	return len(results) == 1 && results[0].Success()
}
