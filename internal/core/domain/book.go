package domain

import "strings"

// RawBook is the unprocessed input as read from disk.
type RawBook struct {
	// Path is the file path the content was read from.
	Path string

	// Content is the raw file bytes before normalisation.
	Content []byte
}

// Manuscript is the narrative text after normalisation.
// All formats (plaintext, markdown, html, pdf, docx) reduce to this.
type Manuscript struct {
	// Title is the best-effort title extracted from the input.
	// A title supplied on the command line takes precedence.
	Title string

	// Text is the full narrative text. Headings appear on their own
	// lines so the section splitter can recognise them.
	Text string
}

// Section is a contiguous span of the manuscript between two
// consecutive recognised headings (or the manuscript boundaries).
// Sections are created by the Splitter, annotated by the Detector,
// and read-only afterward.
type Section struct {
	// Index is the ordinal position within the manuscript.
	Index int

	// Heading is the raw heading line that opened this section,
	// including its line break. Empty for preamble text that
	// appears before the first recognised heading.
	Heading string

	// Body is the raw text between this heading and the next.
	// Concatenating Heading+Body over all sections in order
	// reconstructs the manuscript exactly.
	Body string

	// Present lists the ids of character groups detected in the
	// body, in ascending id order.
	Present []int

	// Counts maps a present group id to the number of alias hits.
	Counts map[int]int
}

// Label returns the heading trimmed for display.
// Preamble sections have no heading and are labelled "Front Matter".
func (s Section) Label() string {
	label := strings.TrimSpace(s.Heading)
	if label == "" {
		return "Front Matter"
	}
	return label
}

// Text returns the exact span of manuscript this section covers.
func (s Section) Text() string {
	return s.Heading + s.Body
}

// WordCount returns the number of whitespace-separated words in the body.
func (s Section) WordCount() int {
	return len(strings.Fields(s.Body))
}
