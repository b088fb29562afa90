// Package services implements the core charting pipeline:
// split the manuscript into sections, detect character groups,
// and emit the renderer dataset.
package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
	"github.com/plotline-labs/plotline-cli/internal/logger"
)

// Ensure ChartService implements the driving port.
var _ driving.ChartBuilder = (*ChartService)(nil)

// ChartService orchestrates the pipeline for one book:
// read, normalise, split, detect, emit.
type ChartService struct {
	registry driven.NormaliserRegistry
}

// NewChartService creates a chart service using the given normaliser registry.
func NewChartService(registry driven.NormaliserRegistry) *ChartService {
	return &ChartService{registry: registry}
}

// Build produces the dataset for one book request.
// Configuration errors (bad delimiter, bad alias, empty group) and
// input errors (unreadable or empty file) abort before any output.
func (s *ChartService) Build(ctx context.Context, req driving.BookRequest) (*domain.Dataset, error) {
	// Fail on configuration before touching the input.
	splitter, err := NewSplitter(req.Delimiter)
	if err != nil {
		return nil, err
	}

	detector, err := NewDetector(req.Groups,
		WithMatchMode(req.Match),
		WithIgnoreCase(req.IgnoreCase),
	)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", req.Path, err)
	}

	normaliser, err := s.registry.ForPath(req.Path)
	if err != nil {
		return nil, err
	}

	manuscript, err := normaliser.Normalise(ctx, &domain.RawBook{
		Path:    req.Path,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("normalising %s: %w", req.Path, err)
	}

	if strings.TrimSpace(manuscript.Text) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyBook, req.Path)
	}

	sections := splitter.Split(manuscript.Text)
	logger.Debug("split %s into %d sections", req.Path, len(sections))

	annotated := detector.Annotate(sections)

	title := req.Title
	if title == "" {
		title = manuscript.Title
	}

	emitterOpts := []EmitterOption{WithPanels(req.Panels)}
	if req.Gini != nil {
		emitterOpts = append(emitterOpts, WithGini(*req.Gini))
	}

	dataset := NewEmitter(emitterOpts...).Emit(title, annotated, req.Groups)
	logger.Info("built dataset %q: %d scenes, %d characters",
		dataset.Title, len(dataset.Scenes), len(dataset.Characters))

	return dataset, nil
}
