package normalisers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/docx"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/html"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/markdown"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/pdf"
	"github.com/plotline-labs/plotline-cli/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches input files to normalisers by file extension.
type Registry struct {
	byExt    map[string]driven.Normaliser
	fallback driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]driven.Normaliser)}
}

// Defaults returns a registry with all built-in normalisers registered.
func Defaults() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	return r
}

// Register adds a normaliser. A normaliser returning no extensions
// becomes the fallback for unknown extensions.
func (r *Registry) Register(normaliser driven.Normaliser) {
	exts := normaliser.SupportedExtensions()
	if len(exts) == 0 {
		r.fallback = normaliser
		return
	}
	for _, ext := range exts {
		r.byExt[strings.ToLower(ext)] = normaliser
	}
}

// ForPath returns the normaliser registered for the file's extension,
// or the fallback when none matches. Returns domain.ErrUnsupportedFormat
// only when there is no fallback either.
func (r *Registry) ForPath(path string) (driven.Normaliser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if n, ok := r.byExt[ext]; ok {
		return n, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
}

// SupportedExtensions returns all extensions with a specific handler, sorted.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
