// Package docx extracts narrative text from Word documents.
package docx

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	docxlib "github.com/fumiama/go-docx"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/plaintext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser flattens a .docx body to one line per paragraph, which
// leaves chapter headings on their own lines for the splitter.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".docx"}
}

// Normalise parses the document and emits paragraph text in order.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawBook) (*domain.Manuscript, error) {
	if raw == nil {
		return nil, domain.ErrEmptyBook
	}

	doc, err := docxlib.Parse(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("parsing docx: %w", err)
	}

	var out strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docxlib.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		out.WriteString(text)
		out.WriteString("\n")
	}

	return &domain.Manuscript{
		Title: plaintext.TitleFromPath(raw.Path),
		Text:  out.String(),
	}, nil
}

// paragraphText collects the text runs of a paragraph.
func paragraphText(para *docxlib.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docxlib.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if text, ok := rc.(*docxlib.Text); ok {
				buf.WriteString(text.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
