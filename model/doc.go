// Package model provides the intermediate representation (IR) for lesson
// content.
//
// This package defines the data structures produced by decoding a lesson
// document and consumed by the output writers. A [Topic] is the root of one
// lesson: a title, an optional subtitle, and an ordered list of [Slide]
// values. Each slide carries an ordered list of [ContentItem] values, a
// closed set of content variants.
//
// # Content Items
//
// All slide content implements the [ContentItem] interface. The concrete
// types are:
//
//   - [PlainText] - a free body line
//   - [EmphasisBlock] - a glyph-prefixed, color-coded callout
//   - [ComponentList] - indented list entries
//   - [SolutionSteps] - indented, accent-colored worked steps
//   - [Table] - headers plus data rows
//   - [BarChart], [LineChart], [PieChart] - numeric series
//
// Items answer [ContentItem.Visual] so layout code can decide whether a
// slide holds structured visuals without enumerating types.
//
// # Geometry
//
// Placement rectangles use [Rect], measured in inches with conversion to
// EMUs (English Metric Units, 914400 per inch) for the OOXML writer.
//
// All model values are constructed once at the decode boundary and never
// mutated afterward.
package model
