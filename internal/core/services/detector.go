package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
)

// Detector finds which character groups appear in a section body.
//
// Matching policy: aliases are case-sensitive literal substrings by
// default. Regex mode compiles each alias as a regular expression;
// ignore-case folds both modes. A group is present when any of its
// aliases matches, and is counted once for presence no matter how
// many aliases hit. Detection has no side effects on its input.
type Detector struct {
	groups     []domain.CharacterGroup
	mode       driving.MatchMode
	ignoreCase bool

	// compiled alias patterns per group, regex mode only
	patterns map[int][]*regexp.Regexp
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithMatchMode selects substring or regex alias matching.
func WithMatchMode(mode driving.MatchMode) DetectorOption {
	return func(d *Detector) {
		if mode != "" {
			d.mode = mode
		}
	}
}

// WithIgnoreCase enables case-insensitive matching.
func WithIgnoreCase(ignore bool) DetectorOption {
	return func(d *Detector) {
		d.ignoreCase = ignore
	}
}

// NewDetector validates the groups and, in regex mode, compiles their
// alias patterns. Returns domain.ErrEmptyGroup for a group without
// aliases and domain.ErrInvalidAlias for an alias that does not compile.
func NewDetector(groups []domain.CharacterGroup, opts ...DetectorOption) (*Detector, error) {
	d := &Detector{
		groups: groups,
		mode:   driving.MatchSubstring,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.mode != driving.MatchSubstring && d.mode != driving.MatchRegex {
		return nil, fmt.Errorf("%w: unknown match mode %q", domain.ErrInvalidAlias, d.mode)
	}

	for _, group := range groups {
		if err := group.Validate(); err != nil {
			return nil, err
		}
	}

	if d.mode == driving.MatchRegex {
		d.patterns = make(map[int][]*regexp.Regexp, len(groups))
		for _, group := range groups {
			for _, alias := range group.Aliases {
				expr := alias
				if d.ignoreCase {
					expr = "(?i)" + expr
				}
				re, err := regexp.Compile(expr)
				if err != nil {
					return nil, fmt.Errorf("%w: %q in group %q: %v",
						domain.ErrInvalidAlias, alias, group.DisplayName(), err)
				}
				d.patterns[group.ID] = append(d.patterns[group.ID], re)
			}
		}
	}

	return d, nil
}

// Detect returns the ids of groups present in the body, in ascending
// order, and the number of alias hits per present group.
func (d *Detector) Detect(body string) ([]int, map[int]int) {
	counts := make(map[int]int)

	haystack := body
	if d.ignoreCase && d.mode != driving.MatchRegex {
		haystack = strings.ToLower(body)
	}

	for _, group := range d.groups {
		hits := 0
		for i, alias := range group.Aliases {
			switch d.mode {
			case driving.MatchRegex:
				hits += len(d.patterns[group.ID][i].FindAllStringIndex(body, -1))
			default:
				needle := alias
				if d.ignoreCase {
					needle = strings.ToLower(alias)
				}
				hits += strings.Count(haystack, needle)
			}
		}
		if hits > 0 {
			counts[group.ID] = hits
		}
	}

	present := make([]int, 0, len(counts))
	for id := range counts {
		present = append(present, id)
	}
	sort.Ints(present)

	return present, counts
}

// Annotate returns a copy of the sections with Present and Counts
// filled in. The input sections are left untouched.
func (d *Detector) Annotate(sections []domain.Section) []domain.Section {
	annotated := make([]domain.Section, len(sections))
	for i, section := range sections {
		present, counts := d.Detect(section.Body)
		section.Present = present
		section.Counts = counts
		annotated[i] = section
	}
	return annotated
}
