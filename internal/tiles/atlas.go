package tiles

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrUnknownTileIdentifier is returned when a tile identifier, key or code
	// is outside the closed tile set.
	ErrUnknownTileIdentifier = errors.New("unknown tile identifier")
	// ErrInvalidAtlas is returned for atlas geometry that cannot hold the catalog.
	ErrInvalidAtlas = errors.New("invalid atlas")
	// ErrIndexOutOfRange is returned for an atlas index outside the sheet.
	ErrIndexOutOfRange = errors.New("atlas index out of range")
)

// AtlasIndex is a linear cell offset into a sprite sheet: row*columns + column.
type AtlasIndex int

// Atlas describes a sprite sheet cut into a uniform grid of cells.
type Atlas struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
}

// TileAtlas returns the geometry of the terrain tileset: 20x20 cells of 16x16 px.
func TileAtlas() Atlas {
	return Atlas{Columns: 20, Rows: 20, CellWidth: 16, CellHeight: 16}
}

// UnitSheet returns the geometry of a unit sprite sheet: 4x4 cells of 32x32 px.
func UnitSheet() Atlas {
	return Atlas{Columns: 4, Rows: 4, CellWidth: 32, CellHeight: 32}
}

// Validate checks that every dimension is positive.
func (a Atlas) Validate() error {
	if a.Columns <= 0 || a.Rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidAtlas, a.Columns, a.Rows)
	}
	if a.CellWidth <= 0 || a.CellHeight <= 0 {
		return fmt.Errorf("%w: cell %dx%d", ErrInvalidAtlas, a.CellWidth, a.CellHeight)
	}
	return nil
}

// Len returns the number of cells in the sheet.
func (a Atlas) Len() int {
	return a.Columns * a.Rows
}

// Index returns the linear index of the cell at (column, row).
func (a Atlas) Index(column, row int) AtlasIndex {
	return AtlasIndex(row*a.Columns + column)
}

// Contains reports whether 0 <= idx < columns*rows.
func (a Atlas) Contains(idx AtlasIndex) bool {
	return idx >= 0 && int(idx) < a.Len()
}

// Cell splits a linear index back into (column, row).
func (a Atlas) Cell(idx AtlasIndex) (column, row int, err error) {
	if !a.Contains(idx) {
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, a.Len())
	}
	return int(idx) % a.Columns, int(idx) / a.Columns, nil
}

// Rect returns the pixel rectangle of a cell within the sheet image.
func (a Atlas) Rect(idx AtlasIndex) (image.Rectangle, error) {
	col, row, err := a.Cell(idx)
	if err != nil {
		return image.Rectangle{}, err
	}
	x := col * a.CellWidth
	y := row * a.CellHeight
	return image.Rect(x, y, x+a.CellWidth, y+a.CellHeight), nil
}

// PixelSize returns the full sheet size in pixels.
func (a Atlas) PixelSize() (width, height int) {
	return a.Columns * a.CellWidth, a.Rows * a.CellHeight
}
