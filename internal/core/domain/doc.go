// Package domain defines the core business entities for Plotline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawBook: Opaque bytes read from an input file
//   - Manuscript: Normalised narrative text ready for splitting
//   - Section: A contiguous span of text between two headings
//   - CharacterGroup: Alias patterns mapped to one chart entity
//   - Dataset: The artifact handed to the narrative-chart renderer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
