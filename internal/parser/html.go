package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := FindTitle(doc)
	if title == "" {
		title = trimExt(filename, ".html", ".htm")
	}

	var blocks []string
	appendBlock := func(t string) {
		if t != "" {
			blocks = append(blocks, t)
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6",
				"p", "li", "td", "blockquote", "pre":
				appendBlock(TextContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	// Bare markup with loose text nodes and no block elements.
	if len(blocks) == 0 {
		if body != nil {
			appendBlock(TextContent(body))
		} else {
			appendBlock(TextContent(doc))
		}
	}

	return &Document{
		Title: title,
		Text:  strings.Join(blocks, "\n\n"),
	}, nil
}

// TextContent returns the concatenated text under n, trimmed.
func TextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

// FindTitle returns the text of the first <title> element under n.
func FindTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return TextContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := FindTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
