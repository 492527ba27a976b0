// Package lectern provides a fluent API for converting declarative YAML
// lesson documents into PowerPoint decks and LaTeX Beamer documents.
//
// Basic usage:
//
//	err := lectern.Load("probabilidad.yml").PPTX("probabilidad.pptx")
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	err := lectern.Load("probabilidad.yml").
//	    ThemeFile("escuela.toml").
//	    CompilePDF("out/pdf").
//	    Beamer("out/tex/probabilidad.tex")
//
// For advanced use cases, the lower-level topic, pptx, and beamer
// packages are also available.
package lectern

import (
	"github.com/tsawler/lectern/model"
)

// Load prepares a lesson file for conversion and returns a Converter for
// fluent configuration. The file is not read until a terminal operation
// like PPTX() or Topic() runs.
//
// Example:
//
//	err := lectern.Load("lesson.yml").PPTX("lesson.pptx")
func Load(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromTopic creates a Converter from an already-decoded topic. This is
// useful when the topic comes from somewhere other than a file, or has
// been modified programmatically. The topic is validated at terminal
// operations, not here.
//
// Example:
//
//	deck, err := lectern.FromTopic(topic).Deck()
func FromTopic(t *model.Topic) *Converter {
	return &Converter{
		topic:   t,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	deck := lectern.Must(lectern.Load("lesson.yml").Deck())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
