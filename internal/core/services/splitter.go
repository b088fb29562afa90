package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

// DefaultSectionPattern matches common chapter and scene headings.
// Patterns are anchored at the start of each line.
const DefaultSectionPattern = `\s*(Epilogue|Prelude|Prologue|Interlude|Chapter\s+\d+)\b.*`

// Splitter cuts a manuscript into ordered sections on heading lines.
//
// Heading policy: the matched heading line (with its line break) is
// stored on the section as Heading and excluded from Body. Text before
// the first heading becomes a preamble section with an empty heading,
// omitted when empty. Concatenating Heading+Body over all sections in
// order reconstructs the manuscript exactly.
type Splitter struct {
	re *regexp.Regexp
}

// NewSplitter compiles the delimiter pattern. An empty pattern selects
// DefaultSectionPattern. Returns domain.ErrInvalidPattern when the
// pattern does not compile; no sections are produced in that case.
func NewSplitter(pattern string) (*Splitter, error) {
	if pattern == "" {
		pattern = DefaultSectionPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, pattern, err)
	}

	return &Splitter{re: re}, nil
}

// Split cuts the text into sections. Every character of the input
// belongs to exactly one section's Heading or Body. Zero heading
// matches yield exactly one section spanning the whole input.
func (s *Splitter) Split(text string) []domain.Section {
	var sections []domain.Section
	var heading string
	var body strings.Builder
	started := false

	flush := func() {
		// The preamble is only kept when it has content.
		if !started && body.Len() == 0 {
			return
		}
		sections = append(sections, domain.Section{
			Index:   len(sections),
			Heading: heading,
			Body:    body.String(),
		})
	}

	for _, line := range splitLines(text) {
		if s.isHeading(line) {
			flush()
			heading = line
			body.Reset()
			started = true
			continue
		}
		body.WriteString(line)
	}
	flush()

	if len(sections) == 0 {
		sections = []domain.Section{{Index: 0, Body: text}}
	}

	return sections
}

// isHeading reports whether the line opens a new section.
// The pattern must match at the start of the line.
func (s *Splitter) isHeading(line string) bool {
	loc := s.re.FindStringIndex(strings.TrimRight(line, "\r\n"))
	return loc != nil && loc[0] == 0
}

// splitLines splits text into lines, each keeping its trailing line
// break so that rejoining the lines reproduces the input exactly.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	// SplitAfter leaves a trailing empty element when the text ends
	// with a newline.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
