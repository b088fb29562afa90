// Package renderer writes the emitted datasets as an HTML page for
// the external narrative-chart script. The page embeds the dataset
// JSON; layout and interactivity belong to that script, not to this
// repository.
package renderer

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/plotline-labs/plotline-cli/internal/core/domain"
)

//go:embed templates/*.tmpl
var templates embed.FS

// page is the data handed to the HTML template.
type page struct {
	PageTitle string
	Books     []*domain.Dataset
	BooksJSON template.JS
}

// HTML renders narrative-chart pages.
type HTML struct {
	tmpl *template.Template
}

// NewHTML parses the embedded page template.
func NewHTML() (*HTML, error) {
	tmpl, err := template.ParseFS(templates, "templates/charts.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing chart template: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

// Render writes one page carrying all books. Multi-book runs share a
// single page, one chart container per book.
func (h *HTML) Render(w io.Writer, pageTitle string, books []*domain.Dataset) error {
	if pageTitle == "" {
		pageTitle = "Narrative Charts"
	}

	payload, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("marshalling datasets: %w", err)
	}

	return h.tmpl.Execute(w, page{
		PageTitle: pageTitle,
		Books:     books,
		BooksJSON: template.JS(payload),
	})
}
