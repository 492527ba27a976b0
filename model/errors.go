package model

import (
	"fmt"
	"strconv"
)

// ShapeError reports a length mismatch between paired sequences of a
// content item, such as a table row that does not match the header width
// or a chart whose category and value series differ in length. Shape
// violations are data errors and are never repaired silently.
type ShapeError struct {
	ItemType ItemType
	Want     int
	Got      int
	Detail   string
	// Slide and Item are 1-based positions, filled in by Topic.Validate
	// when the error surfaces through a full-document check.
	Slide int
	Item  int
}

func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("%s shape mismatch (%s): want %d, got %d",
		e.ItemType, e.Detail, e.Want, e.Got)
	if e.Slide > 0 {
		msg = fmt.Sprintf("slide %d item %d: %s", e.Slide, e.Item, msg)
	}
	return msg
}

func itoa(n int) string { return strconv.Itoa(n) }
