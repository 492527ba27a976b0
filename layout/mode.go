package layout

import "github.com/tsawler/lectern/model"

// Mode is the layout mode of one slide.
type Mode int

const (
	// TextOnly flows all content into a single full-width text region.
	TextOnly Mode = iota
	// Split reserves the visual band for tables and charts.
	Split
)

func (m Mode) String() string {
	if m == Split {
		return "Split"
	}
	return "TextOnly"
}

// Classify returns the layout mode for a content list: Split when at
// least one item is a table or chart, TextOnly otherwise (including the
// empty list). The function is total over its input domain.
func Classify(items []model.ContentItem) Mode {
	for _, item := range items {
		if item.Visual() {
			return Split
		}
	}
	return TextOnly
}
