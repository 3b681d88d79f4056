package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV files. Cells are flattened into "header: value"
// lines so downstream text matching sees every field.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(NewUTF8Reader(r))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &Document{Title: trimExt(filename, ".csv")}
	if len(records) == 0 {
		return doc, nil
	}

	// First row is headers.
	headers := records[0]

	var text strings.Builder
	text.WriteString("Headers: " + strings.Join(headers, ", ") + "\n")
	for _, row := range records[1:] {
		for j, cell := range row {
			if j > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": " + cell)
			} else {
				text.WriteString(cell)
			}
		}
		text.WriteString("\n")
	}

	doc.Text = strings.TrimSpace(text.String())
	return doc, nil
}
