package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_HeaderValuePairs(t *testing.T) {
	input := "name,email\nAlice,alice@example.com\nBob,bob@example.org\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "people" {
		t.Errorf("expected title %q, got %q", "people", doc.Title)
	}
	for _, want := range []string{
		"Headers: name, email",
		"email: alice@example.com",
		"email: bob@example.org",
	} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("text missing %q:\n%s", want, doc.Text)
		}
	}
}

func TestCSVParser_RaggedRows(t *testing.T) {
	input := "a,b\n1,2,3\n4\n"
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(input), "ragged.csv")
	if err != nil {
		t.Fatalf("ragged rows should parse: %v", err)
	}
	if !strings.Contains(doc.Text, "a: 1, b: 2, 3") {
		t.Errorf("extra cell handling broken:\n%s", doc.Text)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}
