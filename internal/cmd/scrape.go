package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dgallion1/taskbox/internal/config"
	"github.com/dgallion1/taskbox/internal/scrape"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewScrapeCommand creates and returns the scrape subcommand.
func NewScrapeCommand() *cobra.Command {
	var output string
	var outputDir string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "scrape <url>...",
		Short: "Fetch webpages and extract their titles",
		Long: `Fetch each URL with one blocking request, extract the <title>
element with a structural HTML parser, and write a title report per
URL. With more than one URL a bulk summary report is written as well.

Failures are classified (timeout, connection failure, bad status,
missing title, other transport error) and reported without aborting
the remaining URLs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if timeout > 0 {
				cfg.ScrapeTimeout = timeout
			}
			if outputDir == "" {
				outputDir = cfg.OutputDir
			}
			if output != "" && len(args) > 1 {
				return fmt.Errorf("--output only applies to a single URL")
			}
			runScrape(cmd.Context(), cmd.OutOrStdout(), cfg, args, output, outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "report path for a single URL")
	cmd.Flags().StringVarP(&outputDir, "out-dir", "d", "", "directory for generated reports (default from TASKBOX_OUTPUT_DIR)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "request timeout (default from TASKBOX_SCRAPE_TIMEOUT: 10s)")

	return cmd
}

func newScraper(cfg config.Config) *scrape.Scraper {
	return scrape.New(slog.Default(), scrape.Options{
		Timeout:      cfg.ScrapeTimeout,
		UserAgent:    cfg.ScrapeUserAgent,
		MaxBodyBytes: cfg.MaxFetchBytes,
	})
}

func runScrape(ctx context.Context, w io.Writer, cfg config.Config, urls []string, output, outputDir string) []scrape.Result {
	s := newScraper(cfg)

	if len(urls) == 1 {
		fmt.Fprintf(w, "Scraping webpage: %s\n", urls[0])
		res, _ := s.Scrape(ctx, urls[0], output, outputDir)
		printScrapeResult(w, res)
		return []scrape.Result{res}
	}

	fmt.Fprintf(w, "Scraping %d URLs...\n", len(urls))
	results, summaryPath, err := s.ScrapeAll(ctx, urls, outputDir)
	for _, res := range results {
		fmt.Fprintln(w)
		printScrapeResult(w, res)
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(w, "\nError writing summary: %v\n", err)
	} else {
		fmt.Fprintf(w, "\nSummary saved to: %s\n", summaryPath)
	}
	return results
}

func printScrapeResult(w io.Writer, res scrape.Result) {
	switch res.Outcome {
	case scrape.OutcomeOK:
		fmt.Fprintf(w, "Title found: %s\n", res.Title)
		fmt.Fprintf(w, "Title saved to: %s\n", res.ReportPath)
	case scrape.OutcomeInvalidURL:
		color.New(color.FgRed).Fprintf(w, "Error: invalid URL format: %s\n", res.URL)
	case scrape.OutcomeTimeout:
		color.New(color.FgRed).Fprintf(w, "Error: request timed out for %s\n", res.URL)
	case scrape.OutcomeConnectionFailed:
		color.New(color.FgRed).Fprintln(w, "Error: connection failed. Check your internet connection or URL.")
	case scrape.OutcomeBadStatus:
		color.New(color.FgRed).Fprintf(w, "Error: HTTP %d - failed to fetch the webpage\n", res.StatusCode)
	case scrape.OutcomeNoTitle:
		color.New(color.FgRed).Fprintln(w, "Error: no title tag found in the webpage")
	default:
		color.New(color.FgRed).Fprintf(w, "Error: request failed for %s\n", res.URL)
	}
}
