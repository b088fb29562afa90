package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

const playText = "SCENE I.\nJULIET. Hi.\nSCENE II.\nROMEO. Hi."

func TestNewSplitter_InvalidPattern(t *testing.T) {
	splitter, err := NewSplitter(`(unbalanced`)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
	assert.Nil(t, splitter)
}

func TestNewSplitter_DefaultPattern(t *testing.T) {
	splitter, err := NewSplitter("")
	require.NoError(t, err)

	text := "Prologue\nBefore it all.\nChapter 1\nIt began.\nChapter 2\nIt went on.\nEpilogue\nIt ended.\n"
	sections := splitter.Split(text)

	require.Len(t, sections, 4)
	assert.Equal(t, "Prologue", sections[0].Label())
	assert.Equal(t, "Chapter 1", sections[1].Label())
	assert.Equal(t, "Chapter 2", sections[2].Label())
	assert.Equal(t, "Epilogue", sections[3].Label())
}

func TestSplit_SceneDelimiter(t *testing.T) {
	splitter, err := NewSplitter(`SCENE \w+\.`)
	require.NoError(t, err)

	sections := splitter.Split(playText)
	require.Len(t, sections, 2)

	assert.Equal(t, "SCENE I.", sections[0].Label())
	assert.Equal(t, "JULIET. Hi.\n", sections[0].Body)
	assert.Equal(t, "SCENE II.", sections[1].Label())
	assert.Equal(t, "ROMEO. Hi.", sections[1].Body)
}

func TestSplit_ZeroMatchesYieldsOneSection(t *testing.T) {
	splitter, err := NewSplitter(`NEVER MATCHES ANYTHING`)
	require.NoError(t, err)

	text := "just some prose\nwith no headings at all\n"
	sections := splitter.Split(text)

	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Heading)
	assert.Equal(t, text, sections[0].Body)
}

func TestSplit_EmptyInput(t *testing.T) {
	splitter, err := NewSplitter("")
	require.NoError(t, err)

	sections := splitter.Split("")
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Body)
}

func TestSplit_Reconstruction(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
	}{
		{
			name:    "play scenes",
			pattern: `SCENE \w+\.`,
			text:    playText,
		},
		{
			name:    "chapters with preamble",
			pattern: "",
			text:    "A dedication.\n\nChapter 1\nfirst\nChapter 2\nsecond\n",
		},
		{
			name:    "no trailing newline",
			pattern: "",
			text:    "Chapter 1\nno newline at end",
		},
		{
			name:    "consecutive headings",
			pattern: "",
			text:    "Chapter 1\nChapter 2\nbody\n",
		},
		{
			name:    "windows line endings",
			pattern: "",
			text:    "Chapter 1\r\nfirst\r\nChapter 2\r\nsecond\r\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			splitter, err := NewSplitter(tc.pattern)
			require.NoError(t, err)

			sections := splitter.Split(tc.text)

			var rebuilt strings.Builder
			for i, section := range sections {
				assert.Equal(t, i, section.Index)
				rebuilt.WriteString(section.Text())
			}
			assert.Equal(t, tc.text, rebuilt.String())
		})
	}
}

func TestSplit_PreambleKept(t *testing.T) {
	splitter, err := NewSplitter("")
	require.NoError(t, err)

	sections := splitter.Split("Once upon a time.\nChapter 1\nthe story\n")
	require.Len(t, sections, 2)

	assert.Empty(t, sections[0].Heading)
	assert.Equal(t, "Front Matter", sections[0].Label())
	assert.Equal(t, "Once upon a time.\n", sections[0].Body)
}

func TestSplit_EmptyPreambleOmitted(t *testing.T) {
	splitter, err := NewSplitter("")
	require.NoError(t, err)

	sections := splitter.Split("Chapter 1\nthe story\n")
	require.Len(t, sections, 1)
	assert.Equal(t, "Chapter 1", sections[0].Label())
}

func TestSplit_HeadingAnchoredAtLineStart(t *testing.T) {
	splitter, err := NewSplitter(`Chapter \d+`)
	require.NoError(t, err)

	// A mid-line mention is not a heading.
	sections := splitter.Split("Chapter 1\nShe reread Chapter 2 twice.\n")
	require.Len(t, sections, 1)
}
