package style

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// themeFile is the TOML structure of an optional theme override file.
// Colors are hex strings, with or without a leading #.
type themeFile struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Accent    string `toml:"accent"`
	Warning   string `toml:"warning"`
	Purple    string `toml:"purple"`
	Orange    string `toml:"orange"`
	Text      string `toml:"text"`
	LightBG   string `toml:"light_bg"`
}

// LoadTheme reads a TOML theme file and overlays it on the default
// palette. Keys that are absent keep their default color, so a theme file
// only needs to name the colors it changes.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading theme file: %w", err)
	}

	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return t, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	fields := []struct {
		hex string
		dst *Color
	}{
		{tf.Primary, &t.Primary},
		{tf.Secondary, &t.Secondary},
		{tf.Accent, &t.Accent},
		{tf.Warning, &t.Warning},
		{tf.Purple, &t.Purple},
		{tf.Orange, &t.Orange},
		{tf.Text, &t.Text},
		{tf.LightBG, &t.LightBG},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHex(f.hex)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("theme file %s: %w", path, err)
		}
		*f.dst = c
	}
	return t, nil
}

// ParseHex parses a 6-digit hex color, with or without a leading #.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return Color{R: r, G: g, B: b}, nil
}
