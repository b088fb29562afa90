package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
)

func writeBookFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_TwoBooks(t *testing.T) {
	path := writeBookFile(t, `
[[book]]
title = "Romeo and Juliet"
file = "texts/romeo.txt"
delimiter = 'SCENE \w+\.'

[[book.group]]
name = "Romeo"
aliases = ["ROMEO.", "Romeo"]

[[book.group]]
aliases = ["JULIET."]

[[book]]
title = "Hamlet"
file = "texts/hamlet.txt"
gini = 0.5
ignore_case = true
`)

	bf, err := Load(path)
	require.NoError(t, err)
	require.Len(t, bf.Books, 2)

	requests, err := bf.Requests()
	require.NoError(t, err)
	require.Len(t, requests, 2)

	first := requests[0]
	assert.Equal(t, "Romeo and Juliet", first.Title)
	assert.Equal(t, "texts/romeo.txt", first.Path)
	assert.Equal(t, `SCENE \w+\.`, first.Delimiter)
	require.Len(t, first.Groups, 2)
	assert.Equal(t, "Romeo", first.Groups[0].Name)
	assert.Equal(t, []string{"ROMEO.", "Romeo"}, first.Groups[0].Aliases)
	// Unnamed group defaults to its first alias.
	assert.Equal(t, "JULIET.", first.Groups[1].Name)
	assert.Equal(t, 1, first.Groups[1].ID)

	second := requests[1]
	assert.True(t, second.IgnoreCase)
	require.NotNil(t, second.Gini)
	assert.Equal(t, 0.5, *second.Gini)
	assert.Equal(t, driving.MatchMode(""), second.Match)
}

func TestLoad_MissingFileField(t *testing.T) {
	path := writeBookFile(t, `
[[book]]
title = "No Input"
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "has no file")
}

func TestLoad_EmptyGroup(t *testing.T) {
	path := writeBookFile(t, `
[[book]]
file = "a.txt"

[[book.group]]
name = "Nobody"
`)
	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrEmptyGroup)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeBookFile(t, "[[book]\nnot toml")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing book file")
}

func TestLoad_NoBooks(t *testing.T) {
	path := writeBookFile(t, "# empty\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "declares no books")
}

func TestLoad_UnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
