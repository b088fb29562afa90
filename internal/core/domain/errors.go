package domain

import "errors"

// Domain errors represent configuration and input failures.
// These are distinct from infrastructure errors.
var (
	// Configuration Errors.

	// ErrInvalidPattern indicates the section delimiter is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid delimiter pattern")

	// ErrInvalidAlias indicates a character alias is not a valid regular expression.
	// Only raised in regex match mode; substring mode accepts any literal.
	ErrInvalidAlias = errors.New("invalid alias pattern")

	// ErrEmptyGroup indicates a character group specification with no aliases.
	ErrEmptyGroup = errors.New("empty character group")

	// Input Errors.

	// ErrEmptyBook indicates the input produced no text to chart.
	ErrEmptyBook = errors.New("empty book text")

	// ErrUnsupportedFormat indicates no normaliser handles the input format.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// Store Errors.

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
