package driving

import (
	"context"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

// MatchMode selects how character aliases are matched against section bodies.
type MatchMode string

const (
	// MatchSubstring matches aliases as case-sensitive literal substrings.
	// This is the default.
	MatchSubstring MatchMode = "substring"

	// MatchRegex compiles each alias as a regular expression.
	MatchRegex MatchMode = "regex"
)

// BookRequest describes one book to chart.
type BookRequest struct {
	// Title overrides the title extracted from the input. Optional.
	Title string

	// Path is the input file to read.
	Path string

	// Delimiter is the section heading pattern. Empty selects the
	// default chapter pattern.
	Delimiter string

	// Groups are the character groups to detect, in catalog order.
	Groups []domain.CharacterGroup

	// Match selects the alias matching mode. Empty means substring.
	Match MatchMode

	// IgnoreCase folds case when matching aliases.
	IgnoreCase bool

	// Panels is the panel budget. Zero selects the default.
	Panels int

	// Gini blends word-count-weighted against even panel
	// apportionment. Nil selects the default of 1.0.
	Gini *float64
}

// ChartBuilder runs the charting pipeline for one book:
// normalise, split, detect, emit.
type ChartBuilder interface {
	// Build produces the dataset for one book request.
	Build(ctx context.Context, req BookRequest) (*domain.Dataset, error)
}
