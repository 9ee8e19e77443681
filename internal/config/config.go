package config

import (
	"errors"
	"fmt"
	"os"

	"strategygame/internal/tiles"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Logging     LoggingConfig     `yaml:"logging"`
	Battlefield BattlefieldConfig `yaml:"battlefield"`
	Units       UnitsConfig       `yaml:"units"`
	Threading   ThreadingConfig   `yaml:"threading"`
}

type DisplayConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	WindowTitle  string  `yaml:"window_title"`
	ScaleFactor  float64 `yaml:"scale_factor"` // Applied at the window only, never to world coordinates
	Resizable    bool    `yaml:"resizable"`
	ShowDebug    bool    `yaml:"show_debug"`
	ClearColor   [3]int  `yaml:"clear_color"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

type BattlefieldConfig struct {
	TileSize   float64     `yaml:"tile_size"`
	Atlas      SheetConfig `yaml:"atlas"`
	LegendFile string      `yaml:"legend_file"`
	MapFile    string      `yaml:"map_file"` // Empty means the built-in reference grid
}

// SheetConfig describes a sprite sheet cut into square cells.
type SheetConfig struct {
	Image    string `yaml:"image,omitempty"`
	Columns  int    `yaml:"columns"`
	Rows     int    `yaml:"rows"`
	CellSize int    `yaml:"cell_size"`
}

type UnitsConfig struct {
	SpriteSize float64      `yaml:"sprite_size"`
	Sheet      SheetConfig  `yaml:"sheet"`
	Layer      float64      `yaml:"layer"` // Default z for units without their own layer
	Roster     []UnitConfig `yaml:"roster"`
}

type UnitConfig struct {
	Name   string   `yaml:"name"`
	Sheet  string   `yaml:"sheet"`
	Column float64  `yaml:"column"`
	Row    float64  `yaml:"row"`
	Layer  *float64 `yaml:"layer,omitempty"`
	Frame  int      `yaml:"frame"`
	Flip   bool     `yaml:"flip"`
}

type ThreadingConfig struct {
	Workers int `yaml:"workers"` // 0 means one per CPU
}

var (
	// ErrInvalidConfig is wrapped by every Validate failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// LoadConfig loads the configuration from a YAML file, fills defaults and
// validates the result.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfig for in-memory YAML.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Default returns the reference configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset values with the reference setup.
func (c *Config) ApplyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 960
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 540
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Strategy Game"
	}
	if c.Display.ScaleFactor == 0 {
		c.Display.ScaleFactor = 4.0
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Battlefield.TileSize == 0 {
		c.Battlefield.TileSize = 16.0
	}
	ref := tiles.TileAtlas()
	if c.Battlefield.Atlas.Image == "" {
		c.Battlefield.Atlas.Image = "Tiles/FullTileset.png"
	}
	if c.Battlefield.Atlas.Columns == 0 {
		c.Battlefield.Atlas.Columns = ref.Columns
	}
	if c.Battlefield.Atlas.Rows == 0 {
		c.Battlefield.Atlas.Rows = ref.Rows
	}
	if c.Battlefield.Atlas.CellSize == 0 {
		c.Battlefield.Atlas.CellSize = ref.CellWidth
	}
	if c.Battlefield.LegendFile == "" {
		c.Battlefield.LegendFile = "assets/tiles.yaml"
	}

	sheet := tiles.UnitSheet()
	if c.Units.SpriteSize == 0 {
		c.Units.SpriteSize = float64(sheet.CellWidth)
	}
	if c.Units.Sheet.Columns == 0 {
		c.Units.Sheet.Columns = sheet.Columns
	}
	if c.Units.Sheet.Rows == 0 {
		c.Units.Sheet.Rows = sheet.Rows
	}
	if c.Units.Sheet.CellSize == 0 {
		c.Units.Sheet.CellSize = sheet.CellWidth
	}
	if c.Units.Layer == 0 {
		c.Units.Layer = 1.0
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.ScaleFactor <= 0 {
		return fmt.Errorf("%w: scale_factor %v", ErrInvalidConfig, c.Display.ScaleFactor)
	}
	if c.Battlefield.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %v", ErrInvalidConfig, c.Battlefield.TileSize)
	}
	if err := c.TileAtlas().Validate(); err != nil {
		return fmt.Errorf("%w: battlefield atlas: %v", ErrInvalidConfig, err)
	}
	if c.Units.SpriteSize <= 0 {
		return fmt.Errorf("%w: sprite_size %v", ErrInvalidConfig, c.Units.SpriteSize)
	}
	if err := c.UnitSheet().Validate(); err != nil {
		return fmt.Errorf("%w: unit sheet: %v", ErrInvalidConfig, err)
	}
	for i, u := range c.Units.Roster {
		if u.Sheet == "" {
			return fmt.Errorf("%w: unit %d (%s) has no sheet", ErrInvalidConfig, i, u.Name)
		}
	}
	if c.Threading.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Threading.Workers)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// LogicalSize returns the unscaled drawing surface: the window size divided
// by the scale factor.
func (c *Config) LogicalSize() (int, int) {
	return int(float64(c.Display.ScreenWidth) / c.Display.ScaleFactor),
		int(float64(c.Display.ScreenHeight) / c.Display.ScaleFactor)
}

// TileAtlas returns the terrain atlas geometry.
func (c *Config) TileAtlas() tiles.Atlas {
	return c.Battlefield.Atlas.atlas()
}

// UnitSheet returns the geometry shared by every unit sprite sheet.
func (c *Config) UnitSheet() tiles.Atlas {
	return c.Units.Sheet.atlas()
}

// UnitLayer returns the z layer for a roster entry.
func (c *Config) UnitLayer(u UnitConfig) float64 {
	if u.Layer != nil {
		return *u.Layer
	}
	return c.Units.Layer
}

func (s SheetConfig) atlas() tiles.Atlas {
	return tiles.Atlas{
		Columns:    s.Columns,
		Rows:       s.Rows,
		CellWidth:  s.CellSize,
		CellHeight: s.CellSize,
	}
}
