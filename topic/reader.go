// Package topic decodes lesson documents into the model types.
//
// A lesson document is YAML (or JSON, which decodes through the same
// path) with the shape:
//
//	tema: Probabilidad
//	subtitulo: Clase 1
//	diapositivas:
//	  - titulo: Conceptos
//	    contenido:
//	      - una línea de texto
//	      - tipo: nota
//	        texto: recordar la definición
//	      - tipo: tabla
//	        encabezados: [X, Y]
//	        filas: [["1", "2"]]
//
// Bare strings become plain text lines; mapping items dispatch on their
// tipo field. Unrecognized tipo values are preserved as emphasis blocks
// with that kind so styling degrades to the neutral bullet instead of
// failing the document. Missing optional fields default silently; shape
// violations (table row width, chart series lengths, non-numeric chart
// values) are errors and are reported with slide context.
package topic

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/lectern/model"
)

// Wire names for tagged content items.
const (
	tipoComponents = "componentes"
	tipoSolution   = "solucion"
	tipoTable      = "tabla"
	tipoBarChart   = "grafico_barras"
	tipoLineChart  = "grafico_lineas"
	tipoPieChart   = "grafico_circular"
)

type topicYAML struct {
	Tema         string      `yaml:"tema"`
	Subtitulo    string      `yaml:"subtitulo"`
	Diapositivas []slideYAML `yaml:"diapositivas"`
}

type slideYAML struct {
	Titulo    string      `yaml:"titulo"`
	Contenido []yaml.Node `yaml:"contenido"`
}

// itemYAML is the union of all tagged item fields; Tipo selects which
// ones are meaningful.
type itemYAML struct {
	Tipo  string `yaml:"tipo"`
	Texto string `yaml:"texto"`

	Lista []string `yaml:"lista"`
	Pasos []string `yaml:"pasos"`

	Encabezados []string `yaml:"encabezados"`
	Filas       [][]any  `yaml:"filas"`

	Categorias  []any  `yaml:"categorias"`
	Valores     []any  `yaml:"valores"`
	DatosX      []any  `yaml:"datos_x"`
	DatosY      []any  `yaml:"datos_y"`
	EtiquetaX   string `yaml:"etiqueta_x"`
	EtiquetaY   string `yaml:"etiqueta_y"`
	TituloSerie string `yaml:"titulo_serie"`
	Etiquetas   []any  `yaml:"etiquetas"`
}

// defaultSeriesName names a chart series when the document omits one.
const defaultSeriesName = "Serie"

// Load reads and decodes a lesson document from disk.
func Load(path string) (*model.Topic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lesson file: %w", err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode decodes a lesson document from a reader. The returned topic has
// passed shape validation.
func Decode(r io.Reader) (*model.Topic, error) {
	var doc topicYAML
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			// An empty document is a lesson with no slides.
			return &model.Topic{}, nil
		}
		return nil, fmt.Errorf("decoding lesson: %w", err)
	}

	t := &model.Topic{
		Title:    clean(doc.Tema),
		Subtitle: clean(doc.Subtitulo),
	}
	for i, s := range doc.Diapositivas {
		slide, err := decodeSlide(s)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		t.Slides = append(t.Slides, slide)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeSlide(s slideYAML) (model.Slide, error) {
	slide := model.Slide{Title: clean(s.Titulo)}
	for j, node := range s.Contenido {
		item, err := decodeItem(&node)
		if err != nil {
			return model.Slide{}, fmt.Errorf("item %d: %w", j+1, err)
		}
		slide.Content = append(slide.Content, item)
	}
	return slide, nil
}

// decodeItem turns one contenido entry into a ContentItem. Scalar nodes
// are plain text; mappings dispatch on tipo.
func decodeItem(node *yaml.Node) (model.ContentItem, error) {
	if node.Kind == yaml.ScalarNode {
		var text string
		if err := node.Decode(&text); err != nil {
			return nil, fmt.Errorf("decoding text item: %w", err)
		}
		return model.PlainText{Text: clean(text)}, nil
	}

	var raw itemYAML
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding tagged item: %w", err)
	}

	switch raw.Tipo {
	case tipoComponents:
		return model.ComponentList{Items: cleanAll(raw.Lista)}, nil

	case tipoSolution:
		return model.SolutionSteps{Steps: cleanAll(raw.Pasos)}, nil

	case tipoTable:
		table := model.Table{Headers: cleanAll(raw.Encabezados)}
		for _, row := range raw.Filas {
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = clean(displayString(cell))
			}
			table.Rows = append(table.Rows, cells)
		}
		return table, nil

	case tipoBarChart:
		values, err := numbers(raw.Valores, "valores")
		if err != nil {
			return nil, err
		}
		return model.BarChart{
			Categories: displayStrings(raw.Categorias),
			Values:     values,
			XLabel:     clean(raw.EtiquetaX),
			YLabel:     clean(raw.EtiquetaY),
			SeriesName: seriesName(raw.TituloSerie),
		}, nil

	case tipoLineChart:
		values, err := numbers(raw.DatosY, "datos_y")
		if err != nil {
			return nil, err
		}
		return model.LineChart{
			XValues:    displayStrings(raw.DatosX),
			YValues:    values,
			XLabel:     clean(raw.EtiquetaX),
			YLabel:     clean(raw.EtiquetaY),
			SeriesName: seriesName(raw.TituloSerie),
		}, nil

	case tipoPieChart:
		values, err := numbers(raw.Valores, "valores")
		if err != nil {
			return nil, err
		}
		return model.PieChart{
			Labels: displayStrings(raw.Etiquetas),
			Values: values,
		}, nil

	default:
		// Known emphasis kinds and anything unrecognized both land here;
		// the style table supplies the neutral fallback for the latter.
		return model.EmphasisBlock{
			Kind: model.Kind(raw.Tipo),
			Text: clean(raw.Texto),
		}, nil
	}
}

func seriesName(s string) string {
	if s == "" {
		return defaultSeriesName
	}
	return clean(s)
}

// numbers converts a decoded scalar list into float64 values. Chart
// values must be numeric; they are never coerced from strings.
func numbers(vals []any, field string) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		switch n := v.(type) {
		case int:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		case float64:
			out[i] = n
		default:
			return nil, fmt.Errorf("%s[%d]: non-numeric chart value %v (%T)", field, i, v, v)
		}
	}
	return out, nil
}

// displayString coerces any decoded scalar to its display form, mirroring
// the stringification tables and chart categories receive.
func displayString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return trimFloat(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func displayStrings(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = clean(displayString(v))
	}
	return out
}

// trimFloat renders a float without a trailing ".0"-style mantissa when
// it holds an integral value.
func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// clean NFC-normalizes decoded text so accented characters compare and
// render consistently regardless of how the source file encoded them.
func clean(s string) string {
	return norm.NFC.String(s)
}

func cleanAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = clean(s)
	}
	return out
}
