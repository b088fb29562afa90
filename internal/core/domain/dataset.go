package domain

// CharacterRecord is one catalog entry in the emitted dataset.
type CharacterRecord struct {
	// ID is the character group id.
	ID int `json:"id"`

	// Name is the display name shown on the chart.
	Name string `json:"name"`
}

// Scene is one section of the narrative as consumed by the chart renderer.
type Scene struct {
	// ID is the ordinal scene index.
	ID int `json:"id"`

	// Title is the section heading, trimmed for display.
	Title string `json:"title"`

	// Start is the cumulative panel offset where the scene begins.
	Start int `json:"start"`

	// Duration is the scene width in panels, apportioned from the
	// section word count.
	Duration int `json:"duration"`

	// Chars lists present character group ids in ascending order.
	Chars []int `json:"chars"`

	// NamedChars lists the display names matching Chars.
	NamedChars []string `json:"named_chars"`
}

// Dataset is the sole artifact handed to the external narrative-chart
// renderer: ordered scenes plus the full character catalog. It is
// never mutated after emission.
type Dataset struct {
	// Title is the book title.
	Title string `json:"title"`

	// Panels is the total panel budget the scenes were apportioned over.
	Panels int `json:"panels"`

	// Characters is the catalog. Every configured group appears here
	// even when it is present in no scene.
	Characters []CharacterRecord `json:"characters"`

	// Scenes are the ordered scene records.
	Scenes []Scene `json:"scenes"`
}
