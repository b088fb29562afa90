package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".md", ".markdown"}, New().SupportedExtensions())
}

func TestNormalise_HeadingsOnOwnLines(t *testing.T) {
	src := "# Chapter 1\n\nIt was a dark night. Alice shivered.\n\n# Chapter 2\n\nBob arrived at dawn.\n"
	raw := &domain.RawBook{Path: "novel.md", Content: []byte(src)}

	manuscript, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.Contains(t, manuscript.Text, "Chapter 1\n")
	assert.Contains(t, manuscript.Text, "Chapter 2\n")
	assert.NotContains(t, manuscript.Text, "#")
	assert.Contains(t, manuscript.Text, "Alice shivered.")
	assert.Equal(t, "novel", manuscript.Title)
}

func TestNormalise_ParagraphTextPreserved(t *testing.T) {
	src := "## Prologue\n\nFirst paragraph.\n\nSecond paragraph with *emphasis*.\n"
	raw := &domain.RawBook{Path: "book.md", Content: []byte(src)}

	manuscript, err := New().Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.Contains(t, manuscript.Text, "Prologue")
	assert.Contains(t, manuscript.Text, "First paragraph.")
	assert.Contains(t, manuscript.Text, "Second paragraph")
}

func TestNormalise_NilInput(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBook)
}

func TestNormalise_EmptyInput(t *testing.T) {
	manuscript, err := New().Normalise(context.Background(),
		&domain.RawBook{Path: "empty.md"})
	require.NoError(t, err)
	assert.Empty(t, manuscript.Text)
}
