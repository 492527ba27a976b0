package topic

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/lectern/model"
)

const sampleLesson = `
tema: Introducción
subtitulo: Probabilidad y Estadística
diapositivas:
  - titulo: Conceptos
    contenido:
      - "¿Qué es la probabilidad?"
      - tipo: nota
        texto: medida de incertidumbre
      - tipo: componentes
        lista:
          - experimento
          - espacio muestral
      - tipo: solucion
        pasos:
          - "Paso 1: identificar"
          - "Paso 2: calcular"
  - titulo: Datos
    contenido:
      - tipo: tabla
        encabezados: [X, Y]
        filas:
          - ["1", "2"]
          - [3, 4.5]
`

func TestDecode(t *testing.T) {
	topic, err := Decode(strings.NewReader(sampleLesson))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if topic.Title != "Introducción" {
		t.Errorf("Title = %q", topic.Title)
	}
	if topic.Subtitle != "Probabilidad y Estadística" {
		t.Errorf("Subtitle = %q", topic.Subtitle)
	}
	if topic.SlideCount() != 2 {
		t.Fatalf("SlideCount() = %d, want 2", topic.SlideCount())
	}

	content := topic.Slides[0].Content
	if len(content) != 4 {
		t.Fatalf("slide 1 items = %d, want 4", len(content))
	}
	if _, ok := content[0].(model.PlainText); !ok {
		t.Errorf("item 1 = %T, want PlainText", content[0])
	}
	eb, ok := content[1].(model.EmphasisBlock)
	if !ok || eb.Kind != model.KindNote {
		t.Errorf("item 2 = %#v, want nota EmphasisBlock", content[1])
	}
	cl, ok := content[2].(model.ComponentList)
	if !ok || len(cl.Items) != 2 {
		t.Errorf("item 3 = %#v, want 2-entry ComponentList", content[2])
	}
	ss, ok := content[3].(model.SolutionSteps)
	if !ok || len(ss.Steps) != 2 {
		t.Errorf("item 4 = %#v, want 2-step SolutionSteps", content[3])
	}
}

func TestDecodeTableCoercion(t *testing.T) {
	topic, err := Decode(strings.NewReader(sampleLesson))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	table := topic.Slides[1].Content[0].(model.Table)
	if got := table.Rows[1][0]; got != "3" {
		t.Errorf("integer cell = %q, want \"3\"", got)
	}
	if got := table.Rows[1][1]; got != "4.5" {
		t.Errorf("float cell = %q, want \"4.5\"", got)
	}
}

func TestDecodeCharts(t *testing.T) {
	doc := `
diapositivas:
  - titulo: Gráficos
    contenido:
      - tipo: grafico_barras
        categorias: [A, B, 3]
        valores: [1, 2.5, 3]
        etiqueta_x: categoría
        etiqueta_y: frecuencia
      - tipo: grafico_lineas
        datos_x: [1, 2, 3]
        datos_y: [10, 20, 15]
        titulo_serie: tendencia
      - tipo: grafico_circular
        etiquetas: [rojo, azul]
        valores: [60, 40]
`
	topic, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	content := topic.Slides[0].Content

	bar := content[0].(model.BarChart)
	if bar.Categories[2] != "3" {
		t.Errorf("numeric category = %q, want \"3\"", bar.Categories[2])
	}
	if bar.Values[1] != 2.5 {
		t.Errorf("Values[1] = %v", bar.Values[1])
	}
	if bar.SeriesName != "Serie" {
		t.Errorf("default SeriesName = %q, want Serie", bar.SeriesName)
	}

	line := content[1].(model.LineChart)
	if line.XValues[0] != "1" {
		t.Errorf("coerced x value = %q, want \"1\"", line.XValues[0])
	}
	if line.SeriesName != "tendencia" {
		t.Errorf("SeriesName = %q", line.SeriesName)
	}

	pie := content[2].(model.PieChart)
	if len(pie.Labels) != 2 || pie.Values[0] != 60 {
		t.Errorf("pie = %#v", pie)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "non-numeric chart value",
			doc: `
diapositivas:
  - contenido:
      - tipo: grafico_barras
        categorias: [A]
        valores: [muchos]
`,
		},
		{
			name: "table row width mismatch",
			doc: `
diapositivas:
  - contenido:
      - tipo: tabla
        encabezados: [A, B]
        filas:
          - ["1"]
`,
		},
		{
			name: "chart series length mismatch",
			doc: `
diapositivas:
  - contenido:
      - tipo: grafico_circular
        etiquetas: [a, b]
        valores: [1]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected decode error, got nil")
			}
		})
	}
}

func TestDecodeShapeErrorType(t *testing.T) {
	doc := `
diapositivas:
  - contenido:
      - tipo: tabla
        encabezados: [A, B]
        filas:
          - ["1"]
`
	_, err := Decode(strings.NewReader(doc))
	var se *model.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *model.ShapeError", err)
	}
}

func TestDecodeUnknownTipoDegrades(t *testing.T) {
	doc := `
diapositivas:
  - contenido:
      - tipo: teorema
        texto: enunciado
`
	topic, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	eb, ok := topic.Slides[0].Content[0].(model.EmphasisBlock)
	if !ok {
		t.Fatalf("item = %T, want EmphasisBlock", topic.Slides[0].Content[0])
	}
	if eb.Kind != model.Kind("teorema") || eb.Text != "enunciado" {
		t.Errorf("block = %#v", eb)
	}
}

func TestDecodeDefaults(t *testing.T) {
	doc := `
diapositivas:
  - contenido:
      - hola
`
	topic, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if topic.Title != "" || topic.Subtitle != "" {
		t.Errorf("missing fields should stay empty, got %q/%q", topic.Title, topic.Subtitle)
	}
	if topic.Slides[0].TitleOrDefault() != model.DefaultTitle {
		t.Errorf("TitleOrDefault() = %q", topic.Slides[0].TitleOrDefault())
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	topic, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if topic.SlideCount() != 0 {
		t.Errorf("SlideCount() = %d, want 0", topic.SlideCount())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lesson.yml")
	if err := os.WriteFile(path, []byte(sampleLesson), 0o644); err != nil {
		t.Fatal(err)
	}
	topic, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if topic.SlideCount() != 2 {
		t.Errorf("SlideCount() = %d", topic.SlideCount())
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lesson.json")
	doc := `{"tema": "Intro", "diapositivas": [{"titulo": "Uno", "contenido": ["hola"]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	topic, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if topic.Title != "Intro" || topic.SlideCount() != 1 {
		t.Errorf("topic = %+v", topic)
	}
}
