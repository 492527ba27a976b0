package lectern

import (
	"github.com/tsawler/lectern/beamer"
	"github.com/tsawler/lectern/style"
)

// convertOptions holds configuration for a conversion.
type convertOptions struct {
	// Styling
	theme style.Theme

	// PDF compilation (Beamer terminal only)
	compile  bool
	pdfDir   string
	compiler beamer.Compiler
}

// defaultOptions returns the default conversion options.
func defaultOptions() convertOptions {
	return convertOptions{
		theme:   style.DefaultTheme(),
		compile: false,
	}
}

// clone creates a copy of convertOptions. All fields are value types, so
// a struct copy is a deep copy.
func (o convertOptions) clone() convertOptions {
	return o
}
