package emails

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/taskbox/internal/fsutil"
	"github.com/dgallion1/taskbox/internal/parser"
)

// Status enumerates pipeline outcomes so callers can tell "no matches"
// apart from "input was missing" without inspecting errors.
type Status int

const (
	StatusFailed Status = iota
	StatusMissingInput
	StatusNoMatches
	StatusExtracted
)

func (s Status) String() string {
	switch s {
	case StatusMissingInput:
		return "missing_input"
	case StatusNoMatches:
		return "no_matches"
	case StatusExtracted:
		return "extracted"
	default:
		return "failed"
	}
}

// Result carries everything one extraction run produced.
type Result struct {
	Status         Status
	RawMatches     int      // discovery matches, duplicates included
	Emails         []string // unique, first-seen order and casing
	ReportPath     string   // empty when no report was written
	Partition      *Partition
	ValidationPath string
}

// Pipeline extracts, dedupes and validates email addresses from a
// document and writes the reports. The clock is injected so tests can
// pin the timestamps embedded in report names and headers.
type Pipeline struct {
	log  *slog.Logger
	now  func() time.Time
	opts parser.Options
}

func NewPipeline(log *slog.Logger, now func() time.Time, opts parser.Options) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Pipeline{log: log, now: now, opts: opts}
}

// Run reads inputPath, discovers and dedupes email candidates, and
// writes the extraction report. When outputPath is empty the report
// name is derived as extracted_emails_<YYYYMMDD_HHMMSS>.txt alongside
// the input. When validate is set, each unique email is re-checked
// against the strict pattern and a companion
// email_validation_report.txt is written next to the extraction report.
//
// A missing input file and an input with zero matches are expected
// conditions: both return a nil error, an empty list, no report path,
// and perform no filesystem writes. A non-nil error means the input
// existed but could not be read, or a report could not be written.
func (p *Pipeline) Run(inputPath, outputPath string, validate bool) (Result, error) {
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			p.log.Warn("input file does not exist", "path", inputPath)
			return Result{Status: StatusMissingInput}, nil
		}
		return Result{}, fmt.Errorf("stat input: %w", err)
	}

	doc, err := parser.Load(inputPath, p.opts)
	if err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}

	raw := Discover(doc.Text)
	unique := Dedupe(raw)
	p.log.Debug("discovery finished",
		"path", inputPath, "raw", len(raw), "unique", len(unique))

	if len(unique) == 0 {
		return Result{Status: StatusNoMatches}, nil
	}

	now := p.now()
	if outputPath == "" {
		name := fmt.Sprintf("extracted_emails_%s.txt", now.Format("20060102_150405"))
		outputPath = filepath.Join(filepath.Dir(inputPath), name)
	}

	report := RenderExtractionReport(inputPath, unique, now)
	if err := fsutil.WriteFileAtomic(outputPath, []byte(report)); err != nil {
		return Result{}, fmt.Errorf("write extraction report: %w", err)
	}

	res := Result{
		Status:     StatusExtracted,
		RawMatches: len(raw),
		Emails:     unique,
		ReportPath: outputPath,
	}

	if validate {
		part := Validate(unique)
		res.Partition = &part

		validationPath := filepath.Join(filepath.Dir(outputPath), "email_validation_report.txt")
		if err := fsutil.WriteFileAtomic(validationPath, []byte(RenderValidationReport(part))); err != nil {
			return Result{}, fmt.Errorf("write validation report: %w", err)
		}
		res.ValidationPath = validationPath
	}

	return res, nil
}
