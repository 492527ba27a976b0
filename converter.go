package lectern

import (
	"context"
	"fmt"

	"github.com/tsawler/lectern/beamer"
	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/pptx"
	"github.com/tsawler/lectern/style"
	"github.com/tsawler/lectern/topic"
)

// Converter provides a fluent interface for turning a lesson document
// into presentation artifacts. Each configuration method returns a new
// Converter instance, making it safe for concurrent use and allowing
// method chaining.
type Converter struct {
	// Source (exactly one is set)
	filename string
	topic    *model.Topic

	// Configuration
	options convertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Converter with a deep copy of options.
// This ensures immutability. Each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		topic:    c.topic,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Theme sets the color palette used by both backends.
//
// Example:
//
//	err := lectern.Load("lesson.yml").Theme(myTheme).PPTX("lesson.pptx")
func (c *Converter) Theme(t style.Theme) *Converter {
	newConv := c.clone()
	newConv.options.theme = t
	return newConv
}

// ThemeFile loads a TOML theme overlay from path and applies it on top of
// the default palette. A load failure is recorded and reported by the
// next terminal operation.
//
// Example:
//
//	err := lectern.Load("lesson.yml").ThemeFile("escuela.toml").PPTX("lesson.pptx")
func (c *Converter) ThemeFile(path string) *Converter {
	newConv := c.clone()
	theme, err := style.LoadTheme(path)
	if err != nil {
		if newConv.err == nil {
			newConv.err = err
		}
		return newConv
	}
	newConv.options.theme = theme
	return newConv
}

// CompilePDF configures the Beamer terminal to also run the LaTeX
// compiler over the written .tex file, placing the PDF in pdfDir. An
// empty pdfDir leaves the PDF next to the .tex file.
//
// Example:
//
//	err := lectern.Load("lesson.yml").CompilePDF("out/pdf").Beamer("out/tex/lesson.tex")
func (c *Converter) CompilePDF(pdfDir string) *Converter {
	newConv := c.clone()
	newConv.options.compile = true
	newConv.options.pdfDir = pdfDir
	return newConv
}

// Compiler overrides the LaTeX compiler used when CompilePDF is enabled.
//
// Example:
//
//	err := lectern.Load("lesson.yml").
//	    CompilePDF("").
//	    Compiler(beamer.Compiler{Command: "xelatex"}).
//	    Beamer("lesson.tex")
func (c *Converter) Compiler(comp beamer.Compiler) *Converter {
	newConv := c.clone()
	newConv.options.compiler = comp
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Topic decodes and validates the lesson document and returns it.
//
// Example:
//
//	t, err := lectern.Load("lesson.yml").Topic()
func (c *Converter) Topic() (*model.Topic, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.resolveTopic()
}

// Deck assembles the slide deck without writing it, for inspection.
//
// Example:
//
//	deck, err := lectern.Load("lesson.yml").Deck()
//	fmt.Println(deck.SlideCount())
func (c *Converter) Deck() (*pptx.Deck, error) {
	if c.err != nil {
		return nil, c.err
	}
	t, err := c.resolveTopic()
	if err != nil {
		return nil, err
	}
	return pptx.Build(t, c.options.theme), nil
}

// PPTX converts the lesson document and writes a PowerPoint file to
// path, creating missing parent directories.
//
// Example:
//
//	err := lectern.Load("lesson.yml").PPTX("out/lesson.pptx")
func (c *Converter) PPTX(path string) error {
	if c.err != nil {
		return c.err
	}
	t, err := c.resolveTopic()
	if err != nil {
		return err
	}
	return pptx.Convert(t, c.options.theme, path)
}

// Beamer converts the lesson document and writes a LaTeX Beamer file to
// path, creating missing parent directories. When CompilePDF is
// configured, the compiler also runs; a compile failure is returned but
// the .tex file remains on disk.
//
// Example:
//
//	err := lectern.Load("lesson.yml").Beamer("out/lesson.tex")
func (c *Converter) Beamer(path string) error {
	return c.BeamerContext(context.Background(), path)
}

// BeamerContext is Beamer with a context governing the LaTeX compiler
// subprocess.
func (c *Converter) BeamerContext(ctx context.Context, path string) error {
	if c.err != nil {
		return c.err
	}
	t, err := c.resolveTopic()
	if err != nil {
		return err
	}
	if err := beamer.Write(t, c.options.theme, path); err != nil {
		return err
	}
	if !c.options.compile {
		return nil
	}
	if _, err := c.options.compiler.Compile(ctx, path, c.options.pdfDir); err != nil {
		return fmt.Errorf("compiling %s: %w", path, err)
	}
	return nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolveTopic loads the lesson document, or validates the in-memory one.
func (c *Converter) resolveTopic() (*model.Topic, error) {
	if c.topic != nil {
		if err := c.topic.Validate(); err != nil {
			return nil, err
		}
		return c.topic, nil
	}
	if c.filename == "" {
		return nil, fmt.Errorf("no lesson file specified")
	}
	return topic.Load(c.filename)
}
