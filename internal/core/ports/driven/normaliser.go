package driven

import (
	"context"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

// Normaliser extracts narrative text from one input format.
// Implementations must place headings on their own lines so the
// section splitter can recognise them.
type Normaliser interface {
	// SupportedExtensions returns the lower-case file extensions
	// (including the leading dot) this normaliser handles. A nil
	// return marks the fallback normaliser.
	SupportedExtensions() []string

	// Normalise converts raw input bytes into a Manuscript.
	Normalise(ctx context.Context, raw *domain.RawBook) (*domain.Manuscript, error)
}

// NormaliserRegistry selects the appropriate normaliser for an input file.
type NormaliserRegistry interface {
	// ForPath returns the normaliser for the file's extension,
	// falling back to the plaintext normaliser when no specific
	// handler is registered. Returns domain.ErrUnsupportedFormat
	// when no handler exists and no fallback is registered.
	ForPath(path string) (Normaliser, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedExtensions returns all extensions with a specific handler.
	SupportedExtensions() []string
}
