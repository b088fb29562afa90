package services

import (
	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

// DefaultPanels is the default panel budget a book is apportioned over.
const DefaultPanels = 500

// DefaultGini fully weights panel apportionment by word count.
const DefaultGini = 1.0

// Emitter converts annotated sections into the renderer dataset.
//
// Panel apportionment: the panel budget is split between an even
// per-section share and a word-count-proportional share, blended by
// the gini coefficient. Gini 1.0 apportions purely by word count,
// 0.0 gives every section the same width.
type Emitter struct {
	panels int
	gini   float64
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithPanels sets the total panel budget.
func WithPanels(panels int) EmitterOption {
	return func(e *Emitter) {
		if panels > 0 {
			e.panels = panels
		}
	}
}

// WithGini sets the word-count weighting coefficient, clamped to [0, 1].
func WithGini(gini float64) EmitterOption {
	return func(e *Emitter) {
		if gini < 0 {
			gini = 0
		}
		if gini > 1 {
			gini = 1
		}
		e.gini = gini
	}
}

// NewEmitter creates an emitter with the given options.
func NewEmitter(opts ...EmitterOption) *Emitter {
	e := &Emitter{
		panels: DefaultPanels,
		gini:   DefaultGini,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Emit builds the dataset from the ordered sections and the full group
// catalog. Section order is preserved, and every group appears in the
// catalog even when present in no scene. Pure transform, no validation.
func (e *Emitter) Emit(title string, sections []domain.Section, groups []domain.CharacterGroup) *domain.Dataset {
	names := make(map[int]string, len(groups))
	characters := make([]domain.CharacterRecord, 0, len(groups))
	for _, group := range groups {
		names[group.ID] = group.DisplayName()
		characters = append(characters, domain.CharacterRecord{
			ID:   group.ID,
			Name: group.DisplayName(),
		})
	}

	totalWords := 0
	for _, section := range sections {
		totalWords += section.WordCount()
	}

	gini := e.gini
	if totalWords == 0 {
		// Nothing to weight by; fall back to even apportionment.
		gini = 0
	}

	evenPerSection := 0.0
	if len(sections) > 0 {
		evenPerSection = (1 - gini) * float64(e.panels) / float64(len(sections))
	}
	perWord := 0.0
	if totalWords > 0 {
		perWord = gini * float64(e.panels) / float64(totalWords)
	}

	scenes := make([]domain.Scene, 0, len(sections))
	cumulative := 0.0
	for _, section := range sections {
		width := evenPerSection + perWord*float64(section.WordCount())

		namedChars := make([]string, 0, len(section.Present))
		for _, id := range section.Present {
			namedChars = append(namedChars, names[id])
		}

		scenes = append(scenes, domain.Scene{
			ID:         section.Index,
			Title:      section.Label(),
			Start:      int(cumulative),
			Duration:   int(width),
			Chars:      append([]int(nil), section.Present...),
			NamedChars: namedChars,
		})
		cumulative += width
	}

	return &domain.Dataset{
		Title:      title,
		Panels:     e.panels,
		Characters: characters,
		Scenes:     scenes,
	}
}
