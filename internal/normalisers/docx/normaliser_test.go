package docx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".docx"}, New().SupportedExtensions())
}

func TestNormalise_NilInput(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBook)
}

func TestNormalise_NotADocx(t *testing.T) {
	raw := &domain.RawBook{
		Path:    "/books/fake.docx",
		Content: []byte("this is not a zip archive"),
	}
	_, err := New().Normalise(context.Background(), raw)
	assert.Error(t, err)
}
