package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/lectern/model"
)

func TestEmphasis(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		name      string
		kind      model.Kind
		wantGlyph string
		wantColor Color
	}{
		{"note", model.KindNote, "💡 ", theme.Warning},
		{"example", model.KindExample, "📝 ", theme.Accent},
		{"problem", model.KindProblem, "❓ ", theme.Secondary},
		{"formula", model.KindFormula, "📐 ", theme.Purple},
		{"computation", model.KindComputation, "🔢 ", theme.Primary},
		{"unknown kind", model.Kind("teorema"), "• ", theme.Text},
		{"empty kind", model.Kind(""), "• ", theme.Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyph, color := theme.Emphasis(tt.kind)
			if glyph != tt.wantGlyph {
				t.Errorf("glyph = %q, want %q", glyph, tt.wantGlyph)
			}
			if color != tt.wantColor {
				t.Errorf("color = %v, want %v", color, tt.wantColor)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(41, 128, 185).Hex(); got != "2980B9" {
		t.Errorf("Hex() = %q, want 2980B9", got)
	}
	if got := RGB(44, 62, 80).Beamer(); got != "44,62,80" {
		t.Errorf("Beamer() = %q, want 44,62,80", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"2980B9", RGB(41, 128, 185), false},
		{"#2980b9", RGB(41, 128, 185), false},
		{"fff", Color{}, true},
		{"nothex", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	content := "primary = \"#000000\"\naccent = \"FF0000\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() error = %v", err)
	}
	if theme.Primary != RGB(0, 0, 0) {
		t.Errorf("Primary = %v, want black", theme.Primary)
	}
	if theme.Accent != RGB(255, 0, 0) {
		t.Errorf("Accent = %v, want red", theme.Accent)
	}
	// Untouched keys keep the defaults.
	if theme.Text != DefaultTheme().Text {
		t.Errorf("Text = %v, want default", theme.Text)
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
