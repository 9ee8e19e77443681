package battlefield

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"strategygame/internal/tiles"
)

// DefaultGrid returns the 13x6 reference battlefield.
func DefaultGrid() Grid {
	return Grid{
		{
			tiles.Brown1, tiles.BrownGreenLower1, tiles.BrownGreenLower2, tiles.BrownGreenLower2,
			tiles.BrownGreenLower3, tiles.BrownGreenLower5, tiles.Brown2, tiles.BrownGreenLower1,
			tiles.BrownGreenLower3, tiles.BrownGreenLower5, tiles.BrownGreenLower1, tiles.BrownGreenLower3,
			tiles.Brown4,
		},
		{
			tiles.Brown3, tiles.BrownGreenMiddle1, tiles.Green2, tiles.BrownGreenUpper2,
			tiles.Green1, tiles.Green3, tiles.BrownGreenLower2, tiles.Green3,
			tiles.Green2, tiles.Green1, tiles.BrownGreenMiddle3, tiles.BrownGreenMiddle1,
			tiles.BrownGreenLower3,
		},
		{
			tiles.BrownGreenMiddle4, tiles.Green3, tiles.BrownGreenMiddle3, tiles.BrownGreenLower5,
			tiles.BrownGreenMiddle1, tiles.Green3, tiles.Green4, tiles.Green1,
			tiles.Green2, tiles.Green3, tiles.Green1, tiles.Green2,
			tiles.BrownGreenUpper3,
		},
		{
			tiles.BrownGreenMiddle4, tiles.Green1, tiles.Green3, tiles.Green4,
			tiles.Green2, tiles.Green1, tiles.Green1, tiles.BrownGreenMiddle3,
			tiles.BrownGreenUpper7, tiles.BrownGreenUpper1, tiles.Green1, tiles.Green3,
			tiles.BrownGreenMiddle6,
		},
		{
			tiles.Brown2, tiles.BrownGreenUpper1, tiles.Green4, tiles.Green1,
			tiles.Green3, tiles.Green2, tiles.BrownGreenUpper2, tiles.Green1,
			tiles.Green3, tiles.BrownGreenLower2, tiles.Green4, tiles.Green2,
			tiles.BrownGreenMiddle6,
		},
		{
			tiles.Brown1, tiles.Brown4, tiles.BrownGreenUpper5, tiles.BrownGreenUpper1,
			tiles.BrownGreenUpper3, tiles.BrownGreenUpper1, tiles.BrownGreenLower7, tiles.BrownGreenUpper3,
			tiles.BrownGreenUpper5, tiles.BrownGreenUpper1, tiles.BrownGreenUpper2, tiles.BrownGreenUpper3,
			tiles.Brown2,
		},
	}
}

// LoadGrid reads a battlefield map file. See ReadGrid for the format.
func LoadGrid(mapPath string, legend *tiles.Legend) (Grid, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	grid, err := ReadGrid(file, legend)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	return grid, nil
}

// ReadGrid parses whitespace-separated tile codes, one grid row per line.
// Blank lines and lines starting with '#' are skipped. Every row must have
// the same number of codes.
func ReadGrid(r io.Reader, legend *tiles.Legend) (Grid, error) {
	var grid Grid
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		codes := strings.Fields(line)
		row := make([]tiles.TileType, len(codes))
		for col, code := range codes {
			t, err := legend.Lookup(code)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", lineNo, col+1, err)
			}
			row[col] = t
		}

		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d tiles, expected %d", ErrInvalidGrid, lineNo, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: map contains no rows", ErrInvalidGrid)
	}
	return grid, nil
}
