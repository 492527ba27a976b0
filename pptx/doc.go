// Package pptx writes PPTX (Office Open XML Presentation) slide decks.
//
// The package assembles a [Deck] from a decoded lesson topic and
// serializes it as a ZIP package of OOXML parts:
//
//	deck := pptx.Build(topic, style.DefaultTheme())
//	err := pptx.Write(deck, "out/lesson.pptx")
//
// or in one step:
//
//	err := pptx.Convert(topic, style.DefaultTheme(), "out/lesson.pptx")
//
// Assembly always emits a cover slide first (full-bleed primary
// background, centered white title, optional subtitle), then one body
// slide per topic entry in input order. Body population follows the
// layout plan: text-only slides flow paragraphs into a single text box;
// slides holding tables or charts place each visual in its own rectangle,
// with native table and chart parts rather than rasterized images.
//
// Every shape is modeled as a Go struct mirroring its OOXML element and
// marshaled with encoding/xml; the static package parts (theme, slide
// master, slide layout) are fixed templates.
package pptx
