package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Output
	OutputDir string

	// Demo data used by the interactive menu and run-all mode
	DataDir string
	DemoURL string

	// Scraping
	ScrapeTimeout   time.Duration
	ScrapeUserAgent string
	MaxFetchBytes   int64

	// File mover
	ImageExtensions []string

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		OutputDir: envOr("TASKBOX_OUTPUT_DIR", "output"),

		DataDir: envOr("TASKBOX_DATA_DIR", "test_data"),
		DemoURL: envOr("TASKBOX_DEMO_URL", "https://www.python.org"),

		ScrapeTimeout:   envDuration("TASKBOX_SCRAPE_TIMEOUT", 10*time.Second),
		ScrapeUserAgent: os.Getenv("TASKBOX_USER_AGENT"),
		MaxFetchBytes:   envInt64("TASKBOX_MAX_FETCH_BYTES", 4194304), // 4MB

		ImageExtensions: envList("TASKBOX_IMAGE_EXTS", []string{"jpg", "jpeg"}),

		PDFFallbackPdftotext: envBool("TASKBOX_PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.ScrapeTimeout <= 0 {
		cfg.ScrapeTimeout = 10 * time.Second
	}
	if cfg.MaxFetchBytes <= 0 {
		cfg.MaxFetchBytes = 4194304
	}
	if len(cfg.ImageExtensions) == 0 {
		cfg.ImageExtensions = []string{"jpg", "jpeg"}
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("TASKBOX_OUTPUT_DIR must not be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("TASKBOX_DATA_DIR must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
