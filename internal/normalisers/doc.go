// Package normalisers provides per-format text extraction for input files.
//
// Each subpackage handles one format (plaintext, markdown, html, pdf,
// docx) and reduces it to a domain.Manuscript whose headings sit on
// their own lines, ready for the section splitter. The registry
// selects a normaliser by file extension, with plaintext as the
// fallback for unknown extensions.
package normalisers
