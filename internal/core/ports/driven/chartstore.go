package driven

import (
	"context"
	"time"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

// ChartSummary identifies a stored dataset without its scene data.
type ChartSummary struct {
	// ID is the store-assigned identifier.
	ID string

	// Title is the dataset title at save time.
	Title string

	// CreatedAt is when the dataset was saved.
	CreatedAt time.Time
}

// ChartStore persists emitted datasets so charts can be listed and
// re-rendered without re-parsing the source text.
type ChartStore interface {
	// Save stores a dataset and returns its assigned id.
	Save(ctx context.Context, dataset *domain.Dataset) (string, error)

	// Get loads a stored dataset by id.
	// Returns domain.ErrNotFound when the id does not exist.
	Get(ctx context.Context, id string) (*domain.Dataset, *ChartSummary, error)

	// List returns summaries of all stored datasets, newest first.
	List(ctx context.Context) ([]ChartSummary, error)

	// Delete removes a stored dataset.
	// Returns domain.ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying storage.
	Close() error
}
