package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupFromSpec(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantName    string
		wantAliases []string
	}{
		{
			name:        "single alias",
			spec:        "Juliet",
			wantName:    "Juliet",
			wantAliases: []string{"Juliet"},
		},
		{
			name:        "comma separated",
			spec:        "Alice,Bob,Charlie",
			wantName:    "Alice",
			wantAliases: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name:        "pipe separated aliases",
			spec:        "Clark Kent|Superman",
			wantName:    "Clark Kent",
			wantAliases: []string{"Clark Kent", "Superman"},
		},
		{
			name:        "mixed separators",
			spec:        "Clark Kent|Superman,Lois",
			wantName:    "Clark Kent",
			wantAliases: []string{"Clark Kent", "Superman", "Lois"},
		},
		{
			name:        "surrounding whitespace trimmed",
			spec:        " Alice , Bob ",
			wantName:    "Alice",
			wantAliases: []string{"Alice", "Bob"},
		},
		{
			name:        "empty fields skipped",
			spec:        "Alice,,Bob",
			wantName:    "Alice",
			wantAliases: []string{"Alice", "Bob"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			group, err := NewGroupFromSpec(3, tc.spec)
			require.NoError(t, err)
			assert.Equal(t, 3, group.ID)
			assert.Equal(t, tc.wantName, group.Name)
			assert.Equal(t, tc.wantAliases, group.Aliases)
		})
	}
}

func TestNewGroupFromSpec_Empty(t *testing.T) {
	for _, spec := range []string{"", ",", " | ", ", ,"} {
		_, err := NewGroupFromSpec(0, spec)
		assert.ErrorIs(t, err, ErrEmptyGroup, "spec %q", spec)
	}
}

func TestCharacterGroup_Validate(t *testing.T) {
	valid := CharacterGroup{ID: 0, Name: "Alice", Aliases: []string{"Alice", "Al"}}
	assert.NoError(t, valid.Validate())

	noAliases := CharacterGroup{ID: 1, Name: "Ghost"}
	assert.ErrorIs(t, noAliases.Validate(), ErrEmptyGroup)

	blankAlias := CharacterGroup{ID: 2, Name: "Bob", Aliases: []string{"Bob", "  "}}
	assert.ErrorIs(t, blankAlias.Validate(), ErrEmptyGroup)
}

func TestCharacterGroup_DisplayName(t *testing.T) {
	named := CharacterGroup{Name: "Superman", Aliases: []string{"Clark Kent", "Superman"}}
	assert.Equal(t, "Superman", named.DisplayName())

	unnamed := CharacterGroup{Aliases: []string{"Clark Kent", "Superman"}}
	assert.Equal(t, "Clark Kent", unnamed.DisplayName())
}
