// Package sqlite persists emitted datasets so charts can be listed
// and re-rendered without re-parsing the source text.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/plotline-labs/plotline-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
)

// Ensure ChartStore implements the interface.
var _ driven.ChartStore = (*ChartStore)(nil)

// ChartStore is a SQLite-backed implementation of driven.ChartStore.
type ChartStore struct {
	db   *sql.DB
	path string
}

// NewChartStore creates a chart store at the specified data directory.
// If dataDir is empty, defaults to ~/.plotline/data/charts.db.
func NewChartStore(dataDir string) (*ChartStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".plotline", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "charts.db")

	// WAL keeps the store usable while a watch-mode build is writing.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &ChartStore{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *ChartStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *ChartStore) Path() string {
	return s.path
}

// Save stores a dataset and returns its assigned id.
func (s *ChartStore) Save(ctx context.Context, dataset *domain.Dataset) (string, error) {
	if dataset == nil {
		return "", errors.New("dataset is nil")
	}

	payload, err := json.Marshal(dataset)
	if err != nil {
		return "", fmt.Errorf("marshalling dataset: %w", err)
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO charts (id, title, dataset, created_at)
		VALUES (?, ?, ?, ?)
	`, id, dataset.Title, string(payload), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("inserting chart: %w", err)
	}

	return id, nil
}

// Get loads a stored dataset by id.
func (s *ChartStore) Get(ctx context.Context, id string) (*domain.Dataset, *driven.ChartSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, dataset, created_at FROM charts WHERE id = ?
	`, id)

	var summary driven.ChartSummary
	var payload string
	if err := row.Scan(&summary.ID, &summary.Title, &payload, &summary.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: chart %s", domain.ErrNotFound, id)
		}
		return nil, nil, fmt.Errorf("scanning chart: %w", err)
	}

	var dataset domain.Dataset
	if err := json.Unmarshal([]byte(payload), &dataset); err != nil {
		return nil, nil, fmt.Errorf("unmarshalling dataset: %w", err)
	}

	return &dataset, &summary, nil
}

// List returns summaries of all stored datasets, newest first.
func (s *ChartStore) List(ctx context.Context) ([]driven.ChartSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, created_at FROM charts ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying charts: %w", err)
	}
	defer rows.Close()

	var summaries []driven.ChartSummary
	for rows.Next() {
		var summary driven.ChartSummary
		if err := rows.Scan(&summary.ID, &summary.Title, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chart row: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// Delete removes a stored dataset.
func (s *ChartStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM charts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: chart %s", domain.ErrNotFound, id)
	}

	return nil
}

// migrate runs all pending migrations.
func (s *ChartStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
