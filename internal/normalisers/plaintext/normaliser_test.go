package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
	"github.com/plotline-labs/plotline-cli/internal/core/ports/driven"
)

func TestNormalise_Passthrough(t *testing.T) {
	normaliser := New()

	raw := &domain.RawBook{
		Path:    "/books/my_great_novel.txt",
		Content: []byte("Chapter 1\nIt was a dark and stormy night.\n"),
	}

	manuscript, err := normaliser.Normalise(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "my great novel", manuscript.Title)
	assert.Equal(t, string(raw.Content), manuscript.Text)
}

func TestNormalise_NilInput(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBook)
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "extension stripped",
			path: "/books/dracula.txt",
			want: "dracula",
		},
		{
			name: "underscores to spaces",
			path: "war_and_peace.txt",
			want: "war and peace",
		},
		{
			name: "dashes to spaces",
			path: "/a/b/romeo-and-juliet.md",
			want: "romeo and juliet",
		},
		{
			name: "no extension",
			path: "/books/novel",
			want: "novel",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TitleFromPath(tc.path))
		})
	}
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
