package layout

import "github.com/tsawler/lectern/model"

// Canvas dimensions in inches.
const (
	CanvasWidth  = 10.0
	CanvasHeight = 7.5
)

// Fixed canvas regions, in inches.
var (
	// TitleBar is the slide title box.
	TitleBar = model.NewRect(0.5, 0.3, 9, 1.2)
	// Rule is the decorative line beneath the title (zero height).
	Rule = model.NewRect(0.5, 1.4, 9, 0)
	// TextBody is the full text flow region of a TextOnly slide.
	TextBody = model.NewRect(0.5, 1.8, 9, 5)
	// SplitText is the shorter text region of a Split slide that also
	// carries text items.
	SplitText = model.NewRect(0.5, 1.8, 9, 0.9)

	// CoverTitle and CoverSubtitle are the cover slide boxes.
	CoverTitle    = model.NewRect(0.5, 2.5, 9, 1.5)
	CoverSubtitle = model.NewRect(0.5, 4.2, 9, 0.8)

	// Kind-specific rectangles for a lone visual with no co-located text.
	chartRect = model.NewRect(1.5, 2, 7, 4.5)
	pieRect   = model.NewRect(2, 1.5, 6, 5)
	tableRect = model.NewRect(1, 2, 8, 4)

	// Visual bands used when visuals must share the canvas: the full
	// band when no text region is present, the lower band otherwise.
	fullBand  = model.NewRect(1, 2, 8, 4.6)
	lowerBand = model.NewRect(1, 2.9, 8, 4.2)
)

// visualGap is the vertical gap between tiled visuals, in inches.
const visualGap = 0.2

// VisualPlacement assigns a rectangle to one visual item.
type VisualPlacement struct {
	// Index is the item's position in the slide's content list.
	Index int
	Rect  model.Rect
}

// Plan is the resolved partition of one slide's body.
type Plan struct {
	Mode Mode
	// HasText reports whether any text-flow items are present. When true,
	// Text is the region they flow into.
	HasText bool
	Text    model.Rect
	// Visuals holds one placement per table/chart item, in content order.
	Visuals []VisualPlacement
}

// Place computes the body partition for a content list.
//
// TextOnly slides get the full text region. Split slides place each
// visual in content order: a single visual with no surrounding text keeps
// its kind-specific rectangle, while multiple visuals tile the visual
// band vertically instead of overwriting one another. Text items on a
// Split slide flow into a secondary region above the band rather than
// being dropped.
func Place(items []model.ContentItem) Plan {
	plan := Plan{Mode: Classify(items)}

	var visualIdx []int
	for i, item := range items {
		if item.Visual() {
			visualIdx = append(visualIdx, i)
		} else {
			plan.HasText = true
		}
	}

	if plan.Mode == TextOnly {
		plan.Text = TextBody
		return plan
	}

	if plan.HasText {
		plan.Text = SplitText
	}

	if len(visualIdx) == 1 && !plan.HasText {
		i := visualIdx[0]
		plan.Visuals = []VisualPlacement{{Index: i, Rect: soloRect(items[i])}}
		return plan
	}

	band := fullBand
	if plan.HasText {
		band = lowerBand
	}
	plan.Visuals = tile(band, visualIdx)
	return plan
}

// soloRect returns the original full-size rectangle for a visual kind.
func soloRect(item model.ContentItem) model.Rect {
	switch item.Type() {
	case model.ItemTypePieChart:
		return pieRect
	case model.ItemTypeTable:
		return tableRect
	default:
		return chartRect
	}
}

// tile splits the band vertically into equal rows, one per visual.
func tile(band model.Rect, idx []int) []VisualPlacement {
	n := len(idx)
	if n == 0 {
		return nil
	}
	rowH := (band.Height - visualGap*float64(n-1)) / float64(n)
	placements := make([]VisualPlacement, n)
	for row, i := range idx {
		placements[row] = VisualPlacement{
			Index: i,
			Rect: model.NewRect(
				band.Left,
				band.Top+float64(row)*(rowH+visualGap),
				band.Width,
				rowH,
			),
		}
	}
	return placements
}
