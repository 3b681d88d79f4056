package emails

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// RenderExtractionReport produces the extraction report body: a header
// naming the source, timestamp and unique count, then a 1-indexed
// enumerated listing of every unique email.
func RenderExtractionReport(source string, emails []string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Email addresses extracted from: %s\n", source)
	fmt.Fprintf(&b, "Extraction date: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total unique emails found: %d\n", len(emails))
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	for i, email := range emails {
		fmt.Fprintf(&b, "%d. %s\n", i+1, email)
	}
	return b.String()
}

// RenderValidationReport produces the validation report body. The
// "Valid Emails" and "Emails Needing Review" sections are omitted when
// their subsequence is empty.
func RenderValidationReport(p Partition) string {
	var b strings.Builder
	b.WriteString("Email Validation Report\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")
	fmt.Fprintf(&b, "Total emails found: %d\n", p.Total())
	fmt.Fprintf(&b, "Valid emails: %d\n", len(p.Valid))
	fmt.Fprintf(&b, "Invalid emails: %d\n\n", len(p.Invalid))

	if len(p.Valid) > 0 {
		b.WriteString("Valid Emails:\n")
		b.WriteString(strings.Repeat("-", 15) + "\n")
		for _, email := range p.Valid {
			b.WriteString(email + "\n")
		}
	}
	if len(p.Invalid) > 0 {
		b.WriteString("\nEmails Needing Review:\n")
		b.WriteString(strings.Repeat("-", 25) + "\n")
		for _, email := range p.Invalid {
			b.WriteString(email + "\n")
		}
	}
	return b.String()
}

var enumeratedLine = regexp.MustCompile(`^\d+\.\s+(.+)$`)

// ParseExtractionReport re-reads the enumerated lines of a written
// extraction report, reproducing the unique email list in order.
func ParseExtractionReport(r io.Reader) ([]string, error) {
	var emails []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if m := enumeratedLine.FindStringSubmatch(scanner.Text()); m != nil {
			emails = append(emails, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return emails, nil
}
