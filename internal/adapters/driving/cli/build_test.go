package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driving"
)

func resetBuildFlags() {
	buildInput = ""
	buildTitle = ""
	buildDelimiter = ""
	buildGroups = nil
	buildMatch = string(driving.MatchSubstring)
	buildIgnoreCase = false
	buildGini = 1.0
	buildPanels = 0
	buildOutput = ""
	buildFormat = "json"
	buildBookfile = ""
	buildSave = false
	buildWatch = false
}

func TestBuildCmd_Use(t *testing.T) {
	assert.Equal(t, "build", buildCmd.Use)
}

func TestBuildCmd_HasFlags(t *testing.T) {
	for _, name := range []string{
		"input", "title", "delimiter", "character-group", "match",
		"ignore-case", "gini", "panels", "output", "format",
		"bookfile", "save", "watch",
	} {
		assert.NotNil(t, buildCmd.Flags().Lookup(name), "flag %s should exist", name)
	}

	gini := buildCmd.Flags().Lookup("gini")
	require.NotNil(t, gini)
	assert.Equal(t, "1", gini.DefValue)
}

func TestBuildRequests_FromFlags(t *testing.T) {
	defer resetBuildFlags()
	resetBuildFlags()

	buildInput = "novel.txt"
	buildTitle = "My Novel"
	buildDelimiter = `Chapter \d+`
	buildGroups = []string{"Alice,Al", "Clark Kent|Superman"}
	buildIgnoreCase = true
	buildPanels = 200

	requests, err := buildRequests()
	require.NoError(t, err)
	require.Len(t, requests, 1)

	req := requests[0]
	assert.Equal(t, "My Novel", req.Title)
	assert.Equal(t, "novel.txt", req.Path)
	assert.Equal(t, `Chapter \d+`, req.Delimiter)
	assert.True(t, req.IgnoreCase)
	assert.Equal(t, 200, req.Panels)
	require.NotNil(t, req.Gini)
	assert.Equal(t, 1.0, *req.Gini)

	require.Len(t, req.Groups, 2)
	assert.Equal(t, domain.CharacterGroup{ID: 0, Name: "Alice", Aliases: []string{"Alice", "Al"}}, req.Groups[0])
	assert.Equal(t, []string{"Clark Kent", "Superman"}, req.Groups[1].Aliases)
}

func TestBuildRequests_RequiresInput(t *testing.T) {
	defer resetBuildFlags()
	resetBuildFlags()

	_, err := buildRequests()
	assert.ErrorContains(t, err, "--input or --bookfile")
}

func TestBuildRequests_BadGroupSpec(t *testing.T) {
	defer resetBuildFlags()
	resetBuildFlags()

	buildInput = "novel.txt"
	buildGroups = []string{",,"}

	_, err := buildRequests()
	assert.ErrorIs(t, err, domain.ErrEmptyGroup)
}

func TestBuildRequests_FromBookfile(t *testing.T) {
	defer resetBuildFlags()
	resetBuildFlags()

	path := filepath.Join(t.TempDir(), "books.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[book]]
title = "Book One"
file = "one.txt"

[[book]]
title = "Book Two"
file = "two.txt"
`), 0600))
	buildBookfile = path

	requests, err := buildRequests()
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Book One", requests[0].Title)
	assert.Equal(t, "two.txt", requests[1].Path)
}
