package battlefield

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"strategygame/internal/parallel"
	"strategygame/internal/tiles"
)

func referenceLayout(t *testing.T) *Layout {
	t.Helper()
	layout, err := New(DefaultGrid(), 16.0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return layout
}

func TestNewDerivesDimensions(t *testing.T) {
	layout := referenceLayout(t)
	if layout.Columns() != 13 || layout.Rows() != 6 {
		t.Errorf("dimensions = %dx%d, want 13x6", layout.Columns(), layout.Rows())
	}
	if layout.TileSize() != 16 {
		t.Errorf("TileSize = %v, want 16", layout.TileSize())
	}
}

func TestNewRejectsInvalidGrids(t *testing.T) {
	ragged := DefaultGrid()
	ragged[3] = ragged[3][:12]

	tests := []struct {
		name     string
		grid     Grid
		tileSize float64
		want     error
	}{
		{"nil grid", nil, 16, ErrInvalidGrid},
		{"no rows", Grid{}, 16, ErrInvalidGrid},
		{"empty first row", Grid{{}}, 16, ErrInvalidGrid},
		{"ragged row", ragged, 16, ErrInvalidGrid},
		{"zero tile size", DefaultGrid(), 0, ErrInvalidTileSize},
		{"negative tile size", DefaultGrid(), -16, ErrInvalidTileSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.grid, tt.tileSize); !errors.Is(err, tt.want) {
				t.Errorf("New error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewCopiesGrid(t *testing.T) {
	grid := DefaultGrid()
	layout, err := New(grid, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	grid[0][0] = tiles.Green4

	got, err := layout.TileAt(0, 0)
	if err != nil {
		t.Fatalf("TileAt: %v", err)
	}
	if got != tiles.Brown1 {
		t.Errorf("layout changed with caller's grid: got %s", got)
	}
}

func TestToWorldCoordinates(t *testing.T) {
	layout := referenceLayout(t)

	tests := []struct {
		x, y, z float64
		want    Vec3
	}{
		{0, 0, 0, Vec3{-96, -40, 0}},
		{12 * 16, 5 * 16, 0, Vec3{96, 40, 0}},
		{96, 40, 2.5, Vec3{0, 0, 2.5}},
		{72, 8, 1, Vec3{-24, -32, 1}},
	}
	for _, tt := range tests {
		got := layout.ToWorldCoordinates(tt.x, tt.y, tt.z)
		if got != tt.want {
			t.Errorf("ToWorldCoordinates(%v,%v,%v) = %+v, want %+v", tt.x, tt.y, tt.z, got, tt.want)
		}
		if again := layout.ToWorldCoordinates(tt.x, tt.y, tt.z); again != got {
			t.Errorf("ToWorldCoordinates not deterministic: %+v then %+v", got, again)
		}
	}
}

func TestToWorldCoordinatesSingleTile(t *testing.T) {
	layout, err := New(Grid{{tiles.Green1}}, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := layout.ToWorldCoordinates(0, 0, 0); got != (Vec3{}) {
		t.Errorf("single tile should sit on the origin, got %+v", got)
	}
}

func TestTileAt(t *testing.T) {
	layout := referenceLayout(t)

	got, err := layout.TileAt(12, 5)
	if err != nil {
		t.Fatalf("TileAt(12,5): %v", err)
	}
	if got != tiles.Brown2 {
		t.Errorf("TileAt(12,5) = %s, want Brown2", got)
	}

	got, err = layout.TileAt(8, 3)
	if err != nil || got != tiles.BrownGreenUpper7 {
		t.Errorf("TileAt(8,3) = %s, %v; want BrownGreenUpper7", got, err)
	}

	for _, pos := range [][2]int{{13, 0}, {0, 6}, {-1, 0}, {0, -1}} {
		if _, err := layout.TileAt(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%d,%d) error = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
	}
}

func TestCellsRowMajorAndIdempotent(t *testing.T) {
	layout := referenceLayout(t)
	catalog := tiles.MustNewCatalog(tiles.TileAtlas())

	first, err := layout.Cells(catalog)
	if err != nil {
		t.Fatalf("Cells: %v", err)
	}
	second, err := layout.Cells(catalog)
	if err != nil {
		t.Fatalf("Cells: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Cells returned different output on a second call")
	}

	if len(first) != 78 {
		t.Fatalf("len = %d, want 78", len(first))
	}

	grid := DefaultGrid()
	for i, p := range first {
		wantCol, wantRow := i%13, i/13
		if p.Column != wantCol || p.Row != wantRow {
			t.Fatalf("cell %d at (%d,%d), want (%d,%d)", i, p.Column, p.Row, wantCol, wantRow)
		}
		if p.Tile != grid[wantRow][wantCol] {
			t.Errorf("cell %d tile = %s, want %s", i, p.Tile, grid[wantRow][wantCol])
		}
		wantIdx, _ := catalog.Resolve(p.Tile)
		if p.Index != wantIdx {
			t.Errorf("cell %d index = %d, want %d", i, p.Index, wantIdx)
		}
	}

	if first[0].Position != (Vec3{-96, -40, 0}) {
		t.Errorf("first cell at %+v", first[0].Position)
	}
	if last := first[len(first)-1]; last.Position != (Vec3{96, 40, 0}) || last.Index != 1 {
		t.Errorf("last cell = %+v", last)
	}
}

func TestCellsParallelMatchesCells(t *testing.T) {
	layout := referenceLayout(t)
	catalog := tiles.MustNewCatalog(tiles.TileAtlas())

	want, err := layout.Cells(catalog)
	if err != nil {
		t.Fatalf("Cells: %v", err)
	}

	pool := parallel.NewStartedPool(4)
	defer pool.Stop()

	got, err := layout.CellsParallel(context.Background(), pool, catalog)
	if err != nil {
		t.Fatalf("CellsParallel(pool): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("CellsParallel with pool differs from Cells")
	}

	got, err = layout.CellsParallel(context.Background(), nil, catalog)
	if err != nil {
		t.Fatalf("CellsParallel(nil): %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("CellsParallel without pool differs from Cells")
	}
}

func TestCellsParallelCancelled(t *testing.T) {
	layout := referenceLayout(t)
	catalog := tiles.MustNewCatalog(tiles.TileAtlas())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := parallel.NewStartedPool(2)
	defer pool.Stop()

	if _, err := layout.CellsParallel(ctx, pool, catalog); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if _, err := layout.CellsParallel(ctx, nil, catalog); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCellsReportsUnknownTile(t *testing.T) {
	layout, err := New(Grid{{tiles.Green1, tiles.TileType(500)}}, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	catalog := tiles.MustNewCatalog(tiles.TileAtlas())
	if _, err := layout.Cells(catalog); !errors.Is(err, tiles.ErrUnknownTileIdentifier) {
		t.Errorf("Cells error = %v, want ErrUnknownTileIdentifier", err)
	}
	if _, err := layout.CellsParallel(context.Background(), nil, catalog); !errors.Is(err, tiles.ErrUnknownTileIdentifier) {
		t.Errorf("CellsParallel error = %v, want ErrUnknownTileIdentifier", err)
	}
}

func TestUnitPlacement(t *testing.T) {
	x, y := UnitLocalAnchor(2, 0, 32)
	if x != 72 || y != 8 {
		t.Errorf("UnitLocalAnchor(2,0,32) = (%v,%v), want (72,8)", x, y)
	}

	layout := referenceLayout(t)
	got := layout.PlaceUnit(PlacementRequest{Column: 0, Row: 0, Layer: 1}, 32)
	if want := (Vec3{-88, -32, 1}); got != want {
		t.Errorf("PlaceUnit(0,0) = %+v, want %+v", got, want)
	}

	got = layout.PlaceUnit(PlacementRequest{Column: 2, Row: 0, Layer: 1, FlipX: true}, 32)
	if want := layout.ToWorldCoordinates(72, 8, 1); got != want {
		t.Errorf("PlaceUnit(2,0) = %+v, want %+v", got, want)
	}

	got = layout.PlaceUnit(PlacementRequest{Column: 0.5, Row: 1.5, Layer: 3}, 32)
	if want := layout.ToWorldCoordinates(24, 56, 3); got != want {
		t.Errorf("fractional PlaceUnit = %+v, want %+v", got, want)
	}
}
