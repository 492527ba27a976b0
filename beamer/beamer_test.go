package beamer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/lectern/model"
	"github.com/tsawler/lectern/style"
)

func testTopic() *model.Topic {
	return &model.Topic{
		Title:    "Probabilidad",
		Subtitle: "Curso de introducción",
		Slides: []model.Slide{
			{
				Title: "Conceptos",
				Content: []model.ContentItem{
					model.PlainText{Text: "Un experimento aleatorio"},
					model.EmphasisBlock{Kind: model.KindNote, Text: "no es determinista"},
				},
			},
			{
				Title: "Datos",
				Content: []model.ContentItem{
					model.Table{
						Headers: []string{"Cara", "Frecuencia"},
						Rows:    [][]string{{"1", "10"}, {"2", "12"}},
					},
				},
			},
		},
	}
}

func TestRenderDocumentStructure(t *testing.T) {
	data, err := Render(testTopic(), style.DefaultTheme())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	tex := string(data)

	for _, want := range []string{
		`\documentclass[aspectratio=43]{beamer}`,
		`\title{Probabilidad}`,
		`\subtitle{Curso de introducción}`,
		`\definecolor{primario}{RGB}{41,128,185}`,
		`\definecolor{advertencia}{RGB}{241,196,15}`,
		`\begin{frame}{Conceptos}`,
		`\begin{frame}{Datos}`,
		`Un experimento aleatorio`,
		`\end{document}`,
	} {
		if !strings.Contains(tex, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}
}

func TestRenderOmitsEmptySubtitle(t *testing.T) {
	topic := testTopic()
	topic.Subtitle = ""
	data, err := Render(topic, style.DefaultTheme())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(data), `\subtitle`) {
		t.Error("rendered document contains \\subtitle for empty subtitle")
	}
}

func TestRenderDefaultsMissingTitles(t *testing.T) {
	topic := &model.Topic{Slides: []model.Slide{{}}}
	data, err := Render(topic, style.DefaultTheme())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := strings.Count(string(data), model.DefaultTitle); got < 2 {
		t.Errorf("default title appears %d times, want topic and frame titles", got)
	}
}

func TestEmphasisBlocks(t *testing.T) {
	tests := []struct {
		name      string
		kind      model.Kind
		wantLabel string
		wantColor string
	}{
		{"note", model.KindNote, "Nota", "advertencia"},
		{"example", model.KindExample, "Ejemplo", "acento"},
		{"problem", model.KindProblem, "Problema", "secundario"},
		{"formula", model.KindFormula, "Fórmula", "morado"},
		{"computation", model.KindComputation, "Cálculo", "primario"},
		{"unknown", model.Kind("teorema"), "teorema", "texto"},
		{"empty", model.Kind(""), "Nota", "texto"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, color := emphasisStyle(tt.kind)
			if label != tt.wantLabel || color != tt.wantColor {
				t.Errorf("emphasisStyle(%q) = (%q, %q), want (%q, %q)",
					tt.kind, label, color, tt.wantLabel, tt.wantColor)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"50% de 10", `50\% de 10`},
		{"a & b", `a \& b`},
		{"$x_1$", `\$x\_1\$`},
		{"C:\\temp", `C:\textbackslash{}temp`},
		{"a^b ~ {c}", `a\textasciicircum{}b \textasciitilde{} \{c\}`},
		{"sin especiales", "sin especiales"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTableRendering(t *testing.T) {
	data, err := Render(testTopic(), style.DefaultTheme())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	tex := string(data)
	if !strings.Contains(tex, `\begin{tabular}{cc}`) {
		t.Error("missing two-column tabular")
	}
	if !strings.Contains(tex, `\textbf{\textcolor{primario}{Cara}}`) {
		t.Error("header cell not styled with primary color")
	}
	if !strings.Contains(tex, `1 & 10 \\`) {
		t.Error("data row not rendered")
	}
}

func TestChartDataSummary(t *testing.T) {
	topic := &model.Topic{
		Title: "Frecuencias",
		Slides: []model.Slide{{
			Title: "Resultados",
			Content: []model.ContentItem{
				model.BarChart{
					Categories: []string{"a", "b"},
					Values:     []float64{1, 2.5},
					SeriesName: "Serie",
				},
			},
		}},
	}
	data, err := Render(topic, style.DefaultTheme())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	tex := string(data)
	if !strings.Contains(tex, "Gráfico de barras: Serie") {
		t.Error("missing chart caption")
	}
	if !strings.Contains(tex, `b & 2.5 \\`) {
		t.Error("missing chart data row")
	}
}

func TestSolutionStepsUseAccent(t *testing.T) {
	topic := &model.Topic{
		Slides: []model.Slide{{
			Content: []model.ContentItem{
				model.SolutionSteps{Steps: []string{"plantear", "resolver"}},
			},
		}},
	}
	data, err := Render(topic, style.DefaultTheme())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(data), `\textcolor{acento}{plantear}`) {
		t.Error("solution step not colored with accent")
	}
}

func TestRenderTemplateCustom(t *testing.T) {
	data, err := RenderTemplate(testTopic(), style.DefaultTheme(), "<< .Title >>|<< len .Frames >>")
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if got := string(data); got != "Probabilidad|2" {
		t.Errorf("custom template output = %q", got)
	}
}

func TestRenderTemplateParseError(t *testing.T) {
	if _, err := RenderTemplate(testTopic(), style.DefaultTheme(), "<< .Title"); err == nil {
		t.Fatal("expected parse error for unterminated action")
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "tema.tex")
	if err := Write(testTopic(), style.DefaultTheme(), path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if !strings.Contains(string(data), `\documentclass`) {
		t.Error("written file is not a LaTeX document")
	}
}

func TestCompilerNotFound(t *testing.T) {
	c := Compiler{Command: "lectern-no-such-compiler"}
	_, err := c.Compile(context.Background(), "tema.tex", t.TempDir())
	if !errors.Is(err, ErrCompilerNotFound) {
		t.Errorf("Compile error = %v, want ErrCompilerNotFound", err)
	}
}

func TestCompilerDefaults(t *testing.T) {
	var c Compiler
	if got := c.command(); got != "pdflatex" {
		t.Errorf("command() = %q, want pdflatex", got)
	}
	if got := c.runs(); got != 2 {
		t.Errorf("runs() = %d, want 2", got)
	}
}
