// Package markdown extracts narrative text from Markdown files using goldmark.
package markdown

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/plaintext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser flattens a Markdown document to plain narrative text.
// Headings are emitted on their own lines without their # markers so
// the section splitter can recognise them.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Normalise parses the Markdown and walks its top-level blocks in
// document order, writing heading text and block text as lines.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawBook) (*domain.Manuscript, error) {
	if raw == nil {
		return nil, domain.ErrEmptyBook
	}

	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(raw.Content))

	var out strings.Builder
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch block := node.(type) {
		case *ast.Heading:
			writeLine(&out, string(block.Text(raw.Content)))
		default:
			writeLine(&out, blockText(node, raw.Content))
		}
	}

	return &domain.Manuscript{
		Title: plaintext.TitleFromPath(raw.Path),
		Text:  out.String(),
	}, nil
}

func writeLine(out *strings.Builder, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if out.Len() > 0 {
		out.WriteString("\n")
	}
	out.WriteString(text)
	out.WriteString("\n")
}

// blockText collects the raw text of a block node. Blocks that carry
// their own line segments (paragraphs, code blocks) use those directly;
// container blocks (lists, quotes) recurse into their children.
func blockText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	if lines := node.Lines(); lines != nil && lines.Len() > 0 {
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if text := blockText(child, src); text != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(text)
		}
	}
	return strings.TrimSpace(buf.String())
}
