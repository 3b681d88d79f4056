package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dgallion1/taskbox/internal/config"
	"github.com/dgallion1/taskbox/internal/emails"
	"github.com/dgallion1/taskbox/internal/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewEmailsCommand creates and returns the emails subcommand.
func NewEmailsCommand() *cobra.Command {
	var output string
	var noValidate bool

	cmd := &cobra.Command{
		Use:   "emails <input-file>",
		Short: "Extract and validate email addresses from a document",
		Long: `Extract candidate email addresses from a document, collapse
case-insensitive duplicates (first-seen casing wins), re-validate each
unique address against a strict anchored pattern, and write an
extraction report plus a validation report.

Supported inputs: .txt, .md, .csv, .html, .docx, .pdf.

A missing input file or an input with no addresses is reported but is
not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			_, err := runEmails(cmd.OutOrStdout(), cfg, args[0], output, !noValidate)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "extraction report path (default: extracted_emails_<timestamp>.txt alongside the input)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip strict validation and its report")

	return cmd
}

func runEmails(w io.Writer, cfg config.Config, input, output string, validate bool) (emails.Result, error) {
	pipe := emails.NewPipeline(slog.Default(), nil, parser.Options{
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	})

	fmt.Fprintf(w, "Reading file: %s\n", input)
	res, err := pipe.Run(input, output, validate)
	if err != nil {
		return res, err
	}

	switch res.Status {
	case emails.StatusMissingInput:
		color.New(color.FgRed).Fprintf(w, "Error: input file '%s' does not exist.\n", input)
		return res, nil
	case emails.StatusNoMatches:
		fmt.Fprintln(w, "No email addresses found in the file.")
		return res, nil
	}

	fmt.Fprintf(w, "Found %d email addresses (%d unique)\n", res.RawMatches, len(res.Emails))
	fmt.Fprintln(w, "\nExtracted emails:")
	for i, email := range res.Emails {
		fmt.Fprintf(w, "  %d. %s\n", i+1, email)
	}
	fmt.Fprintf(w, "\nEmails saved to: %s\n", res.ReportPath)

	if res.Partition != nil {
		fmt.Fprintln(w, "\nValidation Results:")
		fmt.Fprintf(w, "Valid emails: %d\n", len(res.Partition.Valid))
		fmt.Fprintf(w, "Invalid emails: %d\n", len(res.Partition.Invalid))
		if len(res.Partition.Invalid) > 0 {
			fmt.Fprintln(w, "\nEmails that may need review:")
			for _, email := range res.Partition.Invalid {
				fmt.Fprintf(w, "  - %s\n", email)
			}
		}
		fmt.Fprintf(w, "Validation report saved to: %s\n", res.ValidationPath)
	}

	return res, nil
}
