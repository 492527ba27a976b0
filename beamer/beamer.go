// Package beamer writes LaTeX Beamer documents for a lesson topic and
// optionally drives an external pdflatex to produce a PDF.
//
// The default template is embedded at compile time. It is a text/template
// with << and >> delimiters so that template actions never collide with
// LaTeX braces, mirroring how the lesson templates have always been
// delimited. The same classification and defaulting rules as the PPTX
// path apply; the typeset path threads the topic through the template
// rather than assembling a deck object.
package beamer

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/style"
)

//go:embed templates/beamer.tex.tmpl
var defaultTemplate string

// view is the template's root context.
type view struct {
	Title    string
	Subtitle string
	Theme    themeView
	Frames   []frame
}

// themeView exposes palette entries as RGB triples for \definecolor.
type themeView struct {
	Primary   string
	Secondary string
	Accent    string
	Warning   string
	Purple    string
	Orange    string
	Text      string
	LightBG   string
}

type frame struct {
	Title string
	Items []frameItem
}

// frameItem is one pre-classified, pre-escaped content item. Kind selects
// the template branch.
type frameItem struct {
	Kind    string // text, emphasis, list, steps, table, chart
	Text    string
	Label   string // emphasis block title
	Color   string // LaTeX color name for emphasis/steps
	Entries []string
	Headers []string
	Rows    [][]string
	ColSpec string
	Caption string      // chart caption
	Pairs   [][2]string // chart data summary rows
}

// Render renders the topic through the embedded template.
func Render(t *model.Topic, theme style.Theme) ([]byte, error) {
	return RenderTemplate(t, theme, defaultTemplate)
}

// RenderTemplate renders the topic through a caller-supplied template
// body using the same delimiters and context as the embedded one.
func RenderTemplate(t *model.Topic, theme style.Theme, tmplText string) ([]byte, error) {
	tmpl, err := template.New("beamer").Delims("<<", ">>").Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildView(t, theme)); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders the topic and writes the .tex artifact to path, creating
// missing parent directories.
func Write(t *model.Topic, theme style.Theme, path string) error {
	data, err := Render(t, theme)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func buildView(t *model.Topic, theme style.Theme) view {
	v := view{
		Title:    Escape(t.TitleOrDefault()),
		Subtitle: Escape(t.Subtitle),
		Theme: themeView{
			Primary:   theme.Primary.Beamer(),
			Secondary: theme.Secondary.Beamer(),
			Accent:    theme.Accent.Beamer(),
			Warning:   theme.Warning.Beamer(),
			Purple:    theme.Purple.Beamer(),
			Orange:    theme.Orange.Beamer(),
			Text:      theme.Text.Beamer(),
			LightBG:   theme.LightBG.Beamer(),
		},
	}
	for i := range t.Slides {
		v.Frames = append(v.Frames, buildFrame(&t.Slides[i]))
	}
	return v
}

func buildFrame(s *model.Slide) frame {
	f := frame{Title: Escape(s.TitleOrDefault())}
	for _, item := range s.Content {
		f.Items = append(f.Items, buildItem(item))
	}
	return f
}

func buildItem(item model.ContentItem) frameItem {
	switch it := item.(type) {
	case model.PlainText:
		return frameItem{Kind: "text", Text: Escape(it.Text)}

	case model.EmphasisBlock:
		label, color := emphasisStyle(it.Kind)
		return frameItem{
			Kind:  "emphasis",
			Text:  Escape(it.Text),
			Label: label,
			Color: color,
		}

	case model.ComponentList:
		return frameItem{Kind: "list", Entries: escapeAll(it.Items)}

	case model.SolutionSteps:
		return frameItem{Kind: "steps", Entries: escapeAll(it.Steps), Color: "acento"}

	case model.Table:
		fi := frameItem{
			Kind:    "table",
			Headers: escapeAll(it.Headers),
			ColSpec: strings.Repeat("c", len(it.Headers)),
		}
		for _, row := range it.Rows {
			fi.Rows = append(fi.Rows, escapeAll(row))
		}
		return fi

	case model.BarChart:
		return chartItem("Gráfico de barras", it.SeriesName, it.Categories, it.Values)
	case model.LineChart:
		return chartItem("Gráfico de líneas", it.SeriesName, it.XValues, it.YValues)
	case model.PieChart:
		return chartItem("Gráfico circular", "", it.Labels, it.Values)
	}
	return frameItem{Kind: "text"}
}

// chartItem summarizes a chart as label/value pairs; the typeset path
// presents chart data as a compact table rather than a drawn plot.
func chartItem(caption, series string, labels []string, values []float64) frameItem {
	if series != "" {
		caption += ": " + series
	}
	fi := frameItem{Kind: "chart", Caption: Escape(caption)}
	for i := range labels {
		if i >= len(values) {
			break
		}
		fi.Pairs = append(fi.Pairs, [2]string{
			Escape(labels[i]),
			Escape(fmt.Sprintf("%g", values[i])),
		})
	}
	return fi
}

// emphasisStyle maps an emphasis kind to its block label and LaTeX color
// name. Unknown kinds fall back to the neutral text color with the raw
// kind as label.
func emphasisStyle(kind model.Kind) (label, color string) {
	switch kind {
	case model.KindNote:
		return "Nota", "advertencia"
	case model.KindExample:
		return "Ejemplo", "acento"
	case model.KindProblem:
		return "Problema", "secundario"
	case model.KindFormula:
		return "Fórmula", "morado"
	case model.KindComputation:
		return "Cálculo", "primario"
	default:
		if kind == "" {
			return "Nota", "texto"
		}
		return Escape(string(kind)), "texto"
	}
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`%`, `\%`,
	`~`, `\textasciitilde{}`,
)

// Escape escapes LaTeX special characters in user text.
func Escape(s string) string {
	return latexEscaper.Replace(s)
}

func escapeAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = Escape(s)
	}
	return out
}
