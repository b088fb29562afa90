// Package pdf extracts narrative text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/plaintext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser extracts the plain text of every page in order.
// PDF layout is lossy; the extraction keeps page text in reading
// order and separates pages with a blank line.
type Normaliser struct{}

// New creates a new PDF normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Normalise reads all pages and concatenates their plain text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawBook) (*domain.Manuscript, error) {
	if raw == nil {
		return nil, domain.ErrEmptyBook
	}

	reader, err := pdflib.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("parsing pdf: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unextractable pages rather than losing the book.
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(text)
	}
	if out.Len() > 0 {
		out.WriteString("\n")
	}

	return &domain.Manuscript{
		Title: plaintext.TitleFromPath(raw.Path),
		Text:  out.String(),
	}, nil
}
