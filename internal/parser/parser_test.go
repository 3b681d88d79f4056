package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.txt", "*parser.TextParser"},
		{"a.md", "*parser.MarkdownParser"},
		{"a.markdown", "*parser.MarkdownParser"},
		{"a.csv", "*parser.CSVParser"},
		{"a.html", "*parser.HTMLParser"},
		{"a.HTM", "*parser.HTMLParser"},
		{"a.pdf", "*parser.PDFParser"},
		{"a.docx", "*parser.DOCXParser"},
	}
	for _, tc := range tests {
		p, err := ForFile(tc.filename, Options{})
		if err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", tc.filename, err)
			continue
		}
		if got := typeOf(p); got != tc.want {
			t.Errorf("ForFile(%q) = %s, want %s", tc.filename, got, tc.want)
		}
	}
}

func typeOf(v any) string {
	switch v.(type) {
	case *TextParser:
		return "*parser.TextParser"
	case *MarkdownParser:
		return "*parser.MarkdownParser"
	case *CSVParser:
		return "*parser.CSVParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	case *PDFParser:
		return "*parser.PDFParser"
	case *DOCXParser:
		return "*parser.DOCXParser"
	default:
		return "unknown"
	}
}

func TestForFile_Unsupported(t *testing.T) {
	if _, err := ForFile("archive.zip", Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("REPORT.TXT") {
		t.Error("extension match must be case-insensitive")
	}
	if IsSupportedExtension("binary.exe") {
		t.Error("exe must not be supported")
	}
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello from disk"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "hello from disk" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt"), Options{}); err == nil {
		t.Error("expected error for missing file")
	}
}
