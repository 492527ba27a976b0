package model

// EMUPerInch is the OOXML English Metric Unit scale.
const EMUPerInch = 914400

// EMUPerPoint is the EMU scale for typographic points.
const EMUPerPoint = 12700

// Rect is a placement rectangle measured in inches from the top-left
// corner of the slide canvas.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle from inch coordinates.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the right edge in inches.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge in inches.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// OffsetEMU returns the top-left corner in EMUs.
func (r Rect) OffsetEMU() (x, y int64) {
	return int64(r.Left * EMUPerInch), int64(r.Top * EMUPerInch)
}

// ExtentEMU returns the width and height in EMUs.
func (r Rect) ExtentEMU() (cx, cy int64) {
	return int64(r.Width * EMUPerInch), int64(r.Height * EMUPerInch)
}

// Inset returns a rectangle shrunk by the given margin on all sides.
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		Left:   r.Left + margin,
		Top:    r.Top + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
}
