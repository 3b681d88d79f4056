package scrape

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dgallion1/taskbox/internal/fsutil"
)

var unsafeDomainChars = regexp.MustCompile(`[^\w\-.]`)

// SafeDomain turns a URL's host into a filesystem-safe fragment.
func SafeDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return unsafeDomainChars.ReplaceAllString(u.Host, "_")
}

// Scrape fetches rawURL and, on success, writes a per-URL title
// report. When outputPath is empty the name is derived as
// webpage_title_<domain>_<YYYYMMDD_HHMMSS>.txt inside outputDir.
// Failures are classified in the Result and never returned as panics;
// the error return exists so callers can log the cause.
func (s *Scraper) Scrape(ctx context.Context, rawURL, outputPath, outputDir string) (Result, error) {
	res, err := s.Title(ctx, rawURL)
	if err != nil {
		s.log.Warn("scrape failed", "url", rawURL, "outcome", res.Outcome.String(), "error", err)
		return res, err
	}

	now := s.now()
	if outputPath == "" {
		name := fmt.Sprintf("webpage_title_%s_%s.txt", SafeDomain(rawURL), now.Format("20060102_150405"))
		outputPath = filepath.Join(outputDir, name)
	}

	report := renderTitleReport(res, now.Format("2006-01-02 15:04:05"))
	if err := fsutil.WriteFileAtomic(outputPath, []byte(report)); err != nil {
		return res, fmt.Errorf("write title report: %w", err)
	}
	res.ReportPath = outputPath

	s.log.Debug("scraped title", "url", rawURL, "title", res.Title, "report", outputPath)
	return res, nil
}

func renderTitleReport(res Result, timestamp string) string {
	var b strings.Builder
	b.WriteString("Webpage Title Extraction Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "URL: %s\n", res.URL)
	fmt.Fprintf(&b, "Scraped on: %s\n", timestamp)
	fmt.Fprintf(&b, "HTTP Status: %d\n", res.StatusCode)
	fmt.Fprintf(&b, "Domain: %s\n", SafeDomain(res.URL))
	b.WriteString(strings.Repeat("-", 40) + "\n\n")
	fmt.Fprintf(&b, "Title: %s\n\n", res.Title)
	fmt.Fprintf(&b, "Title length: %d characters\n", len(res.Title))
	fmt.Fprintf(&b, "Title word count: %d\n", len(strings.Fields(res.Title)))
	return b.String()
}

// ScrapeAll walks urls one at a time, writing a per-URL report for
// each success and a bulk summary afterwards. Per-URL failures never
// abort the remaining URLs.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, outputDir string) ([]Result, string, error) {
	results := make([]Result, 0, len(urls))
	for i, rawURL := range urls {
		s.log.Info("processing url", "n", i+1, "of", len(urls), "url", rawURL)
		res, _ := s.Scrape(ctx, rawURL, "", outputDir)
		results = append(results, res)
		if ctx.Err() != nil {
			break
		}
	}

	name := fmt.Sprintf("scraping_summary_%s.txt", s.now().Format("20060102_150405"))
	summaryPath := filepath.Join(outputDir, name)
	if err := fsutil.WriteFileAtomic(summaryPath, []byte(renderSummary(results))); err != nil {
		return results, "", fmt.Errorf("write summary: %w", err)
	}
	return results, summaryPath, nil
}

func renderSummary(results []Result) string {
	successful := 0
	for _, r := range results {
		if r.Success() {
			successful++
		}
	}

	var b strings.Builder
	b.WriteString("Bulk Web Scraping Summary\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")
	fmt.Fprintf(&b, "Total URLs processed: %d\n", len(results))
	fmt.Fprintf(&b, "Successful scrapes: %d\n", successful)
	fmt.Fprintf(&b, "Failed scrapes: %d\n", len(results)-successful)
	if len(results) > 0 {
		fmt.Fprintf(&b, "Success rate: %.1f%%\n", float64(successful)/float64(len(results))*100)
	}
	b.WriteString("\nResults:\n")
	b.WriteString(strings.Repeat("-", 10) + "\n")
	for i, r := range results {
		status := "FAILED"
		if r.Success() {
			status = "SUCCESS"
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, status, r.URL)
		if r.Title != "" {
			fmt.Fprintf(&b, "   Title: %s\n", truncate(r.Title, 80))
		}
		if r.StatusCode != 0 {
			fmt.Fprintf(&b, "   HTTP Status: %d\n", r.StatusCode)
		}
		if !r.Success() {
			fmt.Fprintf(&b, "   Cause: %s\n", r.Outcome)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
