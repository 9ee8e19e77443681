package battlefield

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"strategygame/internal/tiles"
)

func loadTestLegend(t *testing.T) *tiles.Legend {
	t.Helper()
	legend, err := tiles.LoadLegend(filepath.Join("..", "..", "assets", "tiles.yaml"))
	if err != nil {
		t.Fatalf("load legend: %v", err)
	}
	return legend
}

func TestLoadGridMatchesDefault(t *testing.T) {
	legend := loadTestLegend(t)

	grid, err := LoadGrid(filepath.Join("..", "..", "assets", "battlefield.map"), legend)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if !reflect.DeepEqual(grid, DefaultGrid()) {
		t.Error("assets/battlefield.map does not match DefaultGrid")
	}
}

func TestReadGrid(t *testing.T) {
	legend := loadTestLegend(t)
	src := `
# two rows
G1 G2  G3

B1	B2 B3
`
	grid, err := ReadGrid(strings.NewReader(src), legend)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	want := Grid{
		{tiles.Green1, tiles.Green2, tiles.Green3},
		{tiles.Brown1, tiles.Brown2, tiles.Brown3},
	}
	if !reflect.DeepEqual(grid, want) {
		t.Errorf("grid = %v, want %v", grid, want)
	}
}

func TestReadGridErrors(t *testing.T) {
	legend := loadTestLegend(t)

	tests := []struct {
		name    string
		src     string
		wantIs  error
		wantMsg string
	}{
		{"unknown code", "G1 ZZ\n", tiles.ErrUnknownTileIdentifier, "line 1 column 2"},
		{"ragged", "G1 G2\nG1\n", ErrInvalidGrid, "line 2"},
		{"empty", "# nothing\n\n", ErrInvalidGrid, "no rows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGrid(strings.NewReader(tt.src), legend)
			if !errors.Is(err, tt.wantIs) {
				t.Fatalf("error = %v, want %v", err, tt.wantIs)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadGridMissingFile(t *testing.T) {
	legend := loadTestLegend(t)
	if _, err := LoadGrid(filepath.Join(t.TempDir(), "nope.map"), legend); err == nil {
		t.Error("expected error for missing map file")
	}
}
