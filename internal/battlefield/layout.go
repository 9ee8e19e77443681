package battlefield

import (
	"context"
	"errors"
	"fmt"

	"strategygame/internal/parallel"
	"strategygame/internal/tiles"
)

var (
	// ErrInvalidGrid is returned for an empty or ragged grid.
	ErrInvalidGrid = errors.New("invalid battlefield grid")
	// ErrInvalidTileSize is returned for a non-positive tile size.
	ErrInvalidTileSize = errors.New("invalid tile size")
	// ErrOutOfBounds is returned for a grid query outside the layout.
	ErrOutOfBounds = errors.New("grid position out of bounds")
)

// Vec3 is a world-space position. X grows right, Y grows up, Z orders layers.
type Vec3 struct {
	X, Y, Z float64
}

// Grid is a row-major arrangement of tiles. Row 0 is the first row of the
// literal or map file.
type Grid [][]tiles.TileType

// TilePlacement is one grid cell ready for the renderer.
type TilePlacement struct {
	Column   int
	Row      int
	Tile     tiles.TileType
	Index    tiles.AtlasIndex
	Position Vec3
}

// Layout owns a battlefield grid and its tile geometry. It never changes after
// New, so it can be shared by reference across goroutines.
type Layout struct {
	grid     Grid
	tileSize float64
	columns  int
	rows     int
}

// New validates the grid and derives its dimensions. The grid is copied.
func New(grid Grid, tileSize float64) (*Layout, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	columns := len(grid[0])
	if columns == 0 {
		return nil, fmt.Errorf("%w: row 0 is empty", ErrInvalidGrid)
	}
	for i, row := range grid {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidGrid, i, len(row), columns)
		}
	}
	if !(tileSize > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTileSize, tileSize)
	}

	owned := make(Grid, len(grid))
	for i, row := range grid {
		owned[i] = append([]tiles.TileType(nil), row...)
	}

	return &Layout{
		grid:     owned,
		tileSize: tileSize,
		columns:  columns,
		rows:     len(grid),
	}, nil
}

// Columns returns the grid width in tiles.
func (l *Layout) Columns() int {
	return l.columns
}

// Rows returns the grid height in tiles.
func (l *Layout) Rows() int {
	return l.rows
}

// TileSize returns the unscaled tile edge in pixels.
func (l *Layout) TileSize() float64 {
	return l.tileSize
}

// ToWorldCoordinates shifts local grid-pixel coordinates so the grid is
// centered on the origin. Local (0,0) is the center of cell (0,0).
func (l *Layout) ToWorldCoordinates(x, y, z float64) Vec3 {
	halfTile := l.tileSize / 2
	halfWidth := float64(l.columns) * l.tileSize / 2
	halfHeight := float64(l.rows) * l.tileSize / 2
	xOffset := halfWidth - halfTile
	yOffset := halfHeight - halfTile

	return Vec3{X: x - xOffset, Y: y - yOffset, Z: z}
}

// TileAt returns the tile at (column, row).
func (l *Layout) TileAt(column, row int) (tiles.TileType, error) {
	if column < 0 || row < 0 || column >= l.columns || row >= l.rows {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, column, row, l.columns, l.rows)
	}
	return l.grid[row][column], nil
}

// Cells resolves every cell in row-major order.
func (l *Layout) Cells(catalog *tiles.Catalog) ([]TilePlacement, error) {
	out := make([]TilePlacement, 0, l.columns*l.rows)
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.columns; col++ {
			p, err := l.cell(catalog, col, row)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	return out, nil
}

// CellsParallel produces the same output as Cells, computing cells
// concurrently. With a nil pool the work is spread over fresh goroutines.
func (l *Layout) CellsParallel(ctx context.Context, pool *parallel.WorkerPool, catalog *tiles.Catalog) ([]TilePlacement, error) {
	total := l.columns * l.rows
	out := make([]TilePlacement, total)
	errs := make([]error, total)

	fill := func(i int) {
		out[i], errs[i] = l.cell(catalog, i%l.columns, i/l.columns)
	}

	if pool != nil {
		pool.ParallelForWithContext(ctx, 0, total, fill)
	} else {
		indices := make([]int, total)
		for i := range indices {
			indices[i] = i
		}
		if _, err := parallel.MapWithContext(ctx, indices, func(i int) struct{} {
			fill(i)
			return struct{}{}
		}); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (l *Layout) cell(catalog *tiles.Catalog, col, row int) (TilePlacement, error) {
	t := l.grid[row][col]
	idx, err := catalog.Resolve(t)
	if err != nil {
		return TilePlacement{}, fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	return TilePlacement{
		Column:   col,
		Row:      row,
		Tile:     t,
		Index:    idx,
		Position: l.ToWorldCoordinates(float64(col)*l.tileSize, float64(row)*l.tileSize, 0),
	}, nil
}
