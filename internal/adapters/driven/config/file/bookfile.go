// Package file loads book declarations from a TOML book file.
//
// A book file describes one or more books to chart in a single run:
//
//	[[book]]
//	title = "Romeo and Juliet"
//	file = "texts/romeo.txt"
//	delimiter = 'SCENE \w+\.'
//
//	[[book.group]]
//	name = "Romeo"
//	aliases = ["ROMEO.", "Romeo"]
//
//	[[book.group]]
//	aliases = ["JULIET.", "Juliet"]
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
)

// BookFile is the parsed TOML declaration of one charting run.
type BookFile struct {
	Books []BookSpec `toml:"book"`
}

// BookSpec declares one book.
type BookSpec struct {
	Title      string      `toml:"title"`
	File       string      `toml:"file"`
	Delimiter  string      `toml:"delimiter"`
	Match      string      `toml:"match"`
	IgnoreCase bool        `toml:"ignore_case"`
	Panels     int         `toml:"panels"`
	Gini       *float64    `toml:"gini"`
	Groups     []GroupSpec `toml:"group"`
}

// GroupSpec declares one character group. Name is optional and
// defaults to the first alias.
type GroupSpec struct {
	Name    string   `toml:"name"`
	Aliases []string `toml:"aliases"`
}

// Load reads and validates a book file.
func Load(path string) (*BookFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading book file %s: %w", path, err)
	}

	var bf BookFile
	if err := toml.Unmarshal(content, &bf); err != nil {
		return nil, fmt.Errorf("parsing book file %s: %w", path, err)
	}

	if len(bf.Books) == 0 {
		return nil, fmt.Errorf("book file %s declares no books", path)
	}

	for i, book := range bf.Books {
		if book.File == "" {
			return nil, fmt.Errorf("book %d in %s has no file", i+1, path)
		}
		for _, group := range book.Groups {
			if len(group.Aliases) == 0 {
				return nil, fmt.Errorf("%w: group %q of book %d in %s",
					domain.ErrEmptyGroup, group.Name, i+1, path)
			}
		}
	}

	return &bf, nil
}

// Requests converts the declared books into pipeline requests.
func (bf *BookFile) Requests() ([]driving.BookRequest, error) {
	requests := make([]driving.BookRequest, 0, len(bf.Books))
	for _, book := range bf.Books {
		groups := make([]domain.CharacterGroup, 0, len(book.Groups))
		for id, spec := range book.Groups {
			group := domain.CharacterGroup{
				ID:      id,
				Name:    spec.Name,
				Aliases: spec.Aliases,
			}
			if group.Name == "" && len(group.Aliases) > 0 {
				group.Name = group.Aliases[0]
			}
			if err := group.Validate(); err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}

		requests = append(requests, driving.BookRequest{
			Title:      book.Title,
			Path:       book.File,
			Delimiter:  book.Delimiter,
			Groups:     groups,
			Match:      driving.MatchMode(book.Match),
			IgnoreCase: book.IgnoreCase,
			Panels:     book.Panels,
			Gini:       book.Gini,
		})
	}
	return requests, nil
}
