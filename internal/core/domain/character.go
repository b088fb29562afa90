package domain

import (
	"fmt"
	"strings"
)

// CharacterGroup is a set of alias patterns treated as one chart entity.
// Every alias maps to the same display identity; groups are supplied by
// the user and immutable for the run.
type CharacterGroup struct {
	// ID is the catalog identifier, assigned in declaration order.
	ID int

	// Name is the display name. Defaults to the first alias.
	Name string

	// Aliases are the patterns matched against section bodies.
	// Interpreted as literals in substring mode, as regular
	// expressions in regex mode. Never empty.
	Aliases []string
}

// NewGroupFromSpec parses a command-line group specification into a
// CharacterGroup. Aliases are separated by commas or pipes; the two
// separators are equivalent and the first alias becomes the display
// name. Returns ErrEmptyGroup when the spec contains no aliases.
func NewGroupFromSpec(id int, spec string) (CharacterGroup, error) {
	var aliases []string
	for _, part := range strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == '|'
	}) {
		alias := strings.TrimSpace(part)
		if alias != "" {
			aliases = append(aliases, alias)
		}
	}

	if len(aliases) == 0 {
		return CharacterGroup{}, fmt.Errorf("%w: %q", ErrEmptyGroup, spec)
	}

	return CharacterGroup{
		ID:      id,
		Name:    aliases[0],
		Aliases: aliases,
	}, nil
}

// Validate checks the group invariants: at least one alias, no blank aliases.
func (g CharacterGroup) Validate() error {
	if len(g.Aliases) == 0 {
		return fmt.Errorf("%w: group %q", ErrEmptyGroup, g.Name)
	}
	for _, alias := range g.Aliases {
		if strings.TrimSpace(alias) == "" {
			return fmt.Errorf("%w: group %q has a blank alias", ErrEmptyGroup, g.Name)
		}
	}
	return nil
}

// DisplayName returns the explicit name, falling back to the first alias.
func (g CharacterGroup) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return g.Aliases[0]
}
