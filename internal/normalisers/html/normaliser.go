// Package html extracts narrative text from HTML files.
package html

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/plaintext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser flattens an HTML document to plain narrative text.
// Heading elements are emitted on their own lines so the section
// splitter can recognise them; script, style and chrome elements
// are skipped.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".html", ".htm"}
}

// Normalise parses the HTML and walks it in document order.
// The <title> element becomes the manuscript title when present.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawBook) (*domain.Manuscript, error) {
	if raw == nil {
		return nil, domain.ErrEmptyBook
	}

	doc, err := html.Parse(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	title := plaintext.TitleFromPath(raw.Path)
	if t := findTitle(doc); t != "" {
		title = t
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "head", "nav", "footer", "header":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6",
				"p", "li", "td", "blockquote", "div":
				if text := directText(node); text != "" {
					writeLine(&out, text)
				}
			case "br":
				out.WriteString("\n")
			}
		}
		if node.Type == html.TextNode {
			// Bare text outside a content element, e.g. inside <body>.
			if text := strings.TrimSpace(node.Data); text != "" && node.Parent != nil && node.Parent.Data == "body" {
				writeLine(&out, text)
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return &domain.Manuscript{
		Title: title,
		Text:  out.String(),
	}, nil
}

func writeLine(out *strings.Builder, text string) {
	out.WriteString(text)
	out.WriteString("\n")
}

// findTitle returns the text of the first <title> element.
func findTitle(node *html.Node) string {
	if node.Type == html.ElementNode && node.Data == "title" {
		return strings.TrimSpace(textContent(node))
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if title := findTitle(child); title != "" {
			return title
		}
	}
	return ""
}

// directText collects the text of a node's own text children only,
// so nested content elements are not emitted twice.
func directText(node *html.Node) string {
	var buf strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			buf.WriteString(child.Data)
		case html.ElementNode:
			// Inline formatting keeps its text; block children are
			// handled by the outer walk.
			switch child.Data {
			case "em", "strong", "i", "b", "span", "a", "u", "small":
				buf.WriteString(textContent(child))
			}
		}
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}

// textContent collects all text beneath a node.
func textContent(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}
	var buf strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		buf.WriteString(textContent(child))
	}
	return buf.String()
}
