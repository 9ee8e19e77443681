package tiles

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// LegendEntry is one tile definition in tiles.yaml.
type LegendEntry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// LegendConfig is the root of tiles.yaml.
type LegendConfig struct {
	Tiles map[string]LegendEntry `yaml:"tiles"`
}

// Legend maps short map-file codes to tile types and back.
type Legend struct {
	codeToType map[string]TileType
	typeToCode map[TileType]string
	names      map[TileType]string
}

// LoadLegend loads a tile legend from a YAML file.
func LoadLegend(filename string) (*Legend, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile legend: %w", err)
	}
	return ParseLegend(data)
}

// ParseLegend builds a legend from YAML. Every key must name a tile type in
// the closed set and every code must be unique and non-empty.
func ParseLegend(data []byte) (*Legend, error) {
	var cfg LegendConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tile legend: %w", err)
	}

	l := &Legend{
		codeToType: make(map[string]TileType, len(cfg.Tiles)),
		typeToCode: make(map[TileType]string, len(cfg.Tiles)),
		names:      make(map[TileType]string, len(cfg.Tiles)),
	}

	// Sorted keys keep error messages stable across runs.
	keys := make([]string, 0, len(cfg.Tiles))
	for key := range cfg.Tiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entry := cfg.Tiles[key]
		t, err := ParseTileType(key)
		if err != nil {
			return nil, fmt.Errorf("tile legend: %w", err)
		}
		if entry.Code == "" {
			return nil, fmt.Errorf("tile legend: %s has no code", key)
		}
		if prev, dup := l.codeToType[entry.Code]; dup {
			return nil, fmt.Errorf("tile legend: code %q used by both %s and %s", entry.Code, prev.Key(), key)
		}
		if _, dup := l.typeToCode[t]; dup {
			return nil, fmt.Errorf("tile legend: %s defined twice", t)
		}
		l.codeToType[entry.Code] = t
		l.typeToCode[t] = entry.Code
		name := entry.Name
		if name == "" {
			name = t.String()
		}
		l.names[t] = name
	}
	return l, nil
}

// Lookup returns the tile type for a map-file code.
func (l *Legend) Lookup(code string) (TileType, error) {
	t, ok := l.codeToType[code]
	if !ok {
		return 0, fmt.Errorf("%w: code %q", ErrUnknownTileIdentifier, code)
	}
	return t, nil
}

// Code returns the map-file code for t, or "" if the legend has none.
func (l *Legend) Code(t TileType) string {
	return l.typeToCode[t]
}

// Name returns the display name for t.
func (l *Legend) Name(t TileType) string {
	if name, ok := l.names[t]; ok {
		return name
	}
	return t.String()
}

// Len returns the number of coded tile types.
func (l *Legend) Len() int {
	return len(l.codeToType)
}
