package model

// DefaultTitle is substituted for a missing topic or slide title. The
// literal matches the lesson corpus language.
const DefaultTitle = "Sin título"

// Topic represents one complete lesson document.
type Topic struct {
	Title    string
	Subtitle string
	Slides   []Slide
}

// Slide is a single content slide. Content order is drawing order.
type Slide struct {
	Title   string
	Content []ContentItem
}

// SlideCount returns the number of content slides (the cover is not
// included; it is synthesized by the writers).
func (t *Topic) SlideCount() int {
	return len(t.Slides)
}

// TitleOrDefault returns the topic title, or DefaultTitle when unset.
func (t *Topic) TitleOrDefault() string {
	if t.Title == "" {
		return DefaultTitle
	}
	return t.Title
}

// TitleOrDefault returns the slide title, or DefaultTitle when unset.
func (s *Slide) TitleOrDefault() string {
	if s.Title == "" {
		return DefaultTitle
	}
	return s.Title
}

// Validate checks the shape invariants of every content item on every
// slide. The first violation is returned as a *ShapeError.
func (t *Topic) Validate() error {
	for i := range t.Slides {
		for j, item := range t.Slides[i].Content {
			v, ok := item.(interface{ Validate() error })
			if !ok {
				continue
			}
			if err := v.Validate(); err != nil {
				if se, ok := err.(*ShapeError); ok {
					se.Slide = i + 1
					se.Item = j + 1
				}
				return err
			}
		}
	}
	return nil
}
