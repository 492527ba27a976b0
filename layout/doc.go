// Package layout decides how a slide's canvas is partitioned before any
// drawing happens.
//
// The central decision is the layout [Mode] of a slide: a content list
// with no tables or charts flows into a single full-width text region
// ([TextOnly]); once any structured visual is present the slide switches
// to [Split], which reserves a fixed visual band and a shorter text
// region above it. The two modes claim different canvas regions and are
// mutually exclusive, so the decision is made once per slide, up front:
//
//	mode := layout.Classify(slide.Content)
//
// The package also owns the fixed placement rectangles of the canvas
// (title bar, decorative rule, text regions, visual band) and the tiling
// of multiple visuals within the band. All functions are pure and total.
package layout
