package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk shape of LINE_COLORS_FILE:
//
//	lines:
//	  Red line: "#ff0000"
//	  Test Line: teal
type paletteFile struct {
	Lines map[string]string `yaml:"lines"`
}

// DefaultLineColors returns the built-in metro line to colour mapping.
// A fresh map is returned on every call so callers may extend it.
func DefaultLineColors() map[string]string {
	return map[string]string{
		"Red line":          "#ff0000",
		"Yellow line":       "#ffff00",
		"Blue line":         "#0000ff",
		"Blue line branch":  "#000080",
		"Green line branch": "#228b22",
		"Green line":        "#008000",
		"Rapid Metro":       "#c0c0c0",
		"Voilet line":       "#800080",
		"Magenta line":      "#ff00ff",
		"Pink line":         "#ffc0cb",
		"Aqua line":         "#87ceeb",
		"Gray line":         "#808080",
		"Orange line":       "#ffa500",
	}
}

// LineColors returns the palette the stacked layout chart should use.
// Without a palette file this is DefaultLineColors; with one, the file's
// entries are laid over the defaults.
func (c *Config) LineColors() (map[string]string, error) {
	colors := DefaultLineColors()
	if c.Palette.File == "" {
		return colors, nil
	}

	overrides, err := LoadPaletteFile(c.Palette.File)
	if err != nil {
		return nil, err
	}
	for line, color := range overrides {
		colors[line] = color
	}
	return colors, nil
}

// LoadPaletteFile reads a YAML palette file.
func LoadPaletteFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}

	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse palette file %s: %w", path, err)
	}

	result := make(map[string]string, len(pf.Lines))
	for line, color := range pf.Lines {
		line = strings.TrimSpace(line)
		color = strings.TrimSpace(color)
		if line == "" || color == "" {
			return nil, fmt.Errorf("parse palette file %s: empty line name or colour", path)
		}
		result[line] = color
	}
	return result, nil
}
