package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text input. It is also the fallback for
// unknown extensions, since most narrative sources are plain text.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns nil: plaintext is the fallback normaliser.
func (n *Normaliser) SupportedExtensions() []string {
	return nil
}

// Normalise passes the raw bytes through unchanged and derives a title
// from the file name.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawBook) (*domain.Manuscript, error) {
	if raw == nil {
		return nil, domain.ErrEmptyBook
	}

	return &domain.Manuscript{
		Title: TitleFromPath(raw.Path),
		Text:  string(raw.Content),
	}, nil
}

// TitleFromPath derives a human-readable title from a file path.
func TitleFromPath(path string) string {
	name := filepath.Base(path)

	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}

	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	return name
}
