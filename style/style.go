// Package style provides the deterministic visual styling shared by the
// output writers: the color palette and the mapping from emphasis kind to
// its marker glyph and color.
//
// The default palette mirrors the lesson corpus branding. A [Theme] is a
// plain value passed explicitly into the renderers; nothing in this
// package holds mutable state.
package style

import (
	"fmt"

	"github.com/tsawler/lectern/model"
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as uppercase hex without a leading #, the form
// OOXML srgbClr expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Beamer returns the color as a comma-separated RGB triple for a LaTeX
// \definecolor{...}{RGB}{...} declaration.
func (c Color) Beamer() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// White is the text color used on filled backgrounds.
var White = RGB(255, 255, 255)

// Theme is the palette used across a whole deck.
type Theme struct {
	Primary   Color // title bars, cover background, bar fill
	Secondary Color // problem callouts, line stroke
	Accent    Color // decorative rule, example callouts, solution steps
	Warning   Color // note callouts
	Purple    Color // formula callouts
	Orange    Color // reserved accent
	Text      Color // body text
	LightBG   Color // alternate table row fill
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:   RGB(41, 128, 185),
		Secondary: RGB(231, 76, 60),
		Accent:    RGB(46, 204, 113),
		Warning:   RGB(241, 196, 15),
		Purple:    RGB(155, 89, 182),
		Orange:    RGB(230, 126, 34),
		Text:      RGB(44, 62, 80),
		LightBG:   RGB(236, 240, 241),
	}
}

// Emphasis returns the marker glyph and color for an emphasis kind.
// Unrecognized kinds degrade to a plain bullet in the neutral text color;
// the lookup is total and never fails a slide.
func (t Theme) Emphasis(kind model.Kind) (glyph string, color Color) {
	switch kind {
	case model.KindNote:
		return "💡 ", t.Warning
	case model.KindExample:
		return "📝 ", t.Accent
	case model.KindProblem:
		return "❓ ", t.Secondary
	case model.KindFormula:
		return "📐 ", t.Purple
	case model.KindComputation:
		return "🔢 ", t.Primary
	default:
		return "• ", t.Text
	}
}
