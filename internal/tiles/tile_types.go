package tiles

import (
	"fmt"
	"strings"
)

// TileType identifies one terrain tile's appearance in the tile atlas.
// The set is closed: every value below tileTypeCount has a cell in the catalog.
type TileType int

const (
	// Plain dirt
	Brown1 TileType = iota
	Brown2
	Brown3
	Brown4

	// Plain grass
	Green1
	Green2
	Green3
	Green4

	// Dirt-to-grass transition, upper band
	BrownGreenUpper1
	BrownGreenUpper2
	BrownGreenUpper3
	BrownGreenUpper5
	BrownGreenUpper7

	// Dirt-to-grass transition, middle band
	BrownGreenMiddle1
	BrownGreenMiddle3
	BrownGreenMiddle4
	BrownGreenMiddle6

	// Dirt-to-grass transition, lower band
	BrownGreenLower1
	BrownGreenLower2
	BrownGreenLower3
	BrownGreenLower5
	BrownGreenLower7

	tileTypeCount
)

var tileTypeNames = [...]string{
	Brown1:            "Brown1",
	Brown2:            "Brown2",
	Brown3:            "Brown3",
	Brown4:            "Brown4",
	Green1:            "Green1",
	Green2:            "Green2",
	Green3:            "Green3",
	Green4:            "Green4",
	BrownGreenUpper1:  "BrownGreenUpper1",
	BrownGreenUpper2:  "BrownGreenUpper2",
	BrownGreenUpper3:  "BrownGreenUpper3",
	BrownGreenUpper5:  "BrownGreenUpper5",
	BrownGreenUpper7:  "BrownGreenUpper7",
	BrownGreenMiddle1: "BrownGreenMiddle1",
	BrownGreenMiddle3: "BrownGreenMiddle3",
	BrownGreenMiddle4: "BrownGreenMiddle4",
	BrownGreenMiddle6: "BrownGreenMiddle6",
	BrownGreenLower1:  "BrownGreenLower1",
	BrownGreenLower2:  "BrownGreenLower2",
	BrownGreenLower3:  "BrownGreenLower3",
	BrownGreenLower5:  "BrownGreenLower5",
	BrownGreenLower7:  "BrownGreenLower7",
}

// Compile-time check that every tile type has a name.
var _ [len(tileTypeNames) - int(tileTypeCount)]struct{}
var _ [int(tileTypeCount) - len(tileTypeNames)]struct{}

// AllTileTypes returns every tile type in declaration order.
func AllTileTypes() []TileType {
	all := make([]TileType, 0, tileTypeCount)
	for t := TileType(0); t < tileTypeCount; t++ {
		all = append(all, t)
	}
	return all
}

// Valid reports whether t belongs to the closed tile set.
func (t TileType) Valid() bool {
	return t >= 0 && t < tileTypeCount
}

func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TileType(%d)", int(t))
	}
	return tileTypeNames[t]
}

// Key returns the snake_case configuration key, e.g. "brown_green_upper_5".
func (t TileType) Key() string {
	if !t.Valid() {
		return ""
	}
	return toSnake(tileTypeNames[t])
}

// ParseTileType accepts either the CamelCase name or the snake_case key.
func ParseTileType(s string) (TileType, error) {
	for t := TileType(0); t < tileTypeCount; t++ {
		if s == tileTypeNames[t] || s == t.Key() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTileIdentifier, s)
}

// toSnake splits CamelCase words and trailing digit runs with underscores.
func toSnake(name string) string {
	var b strings.Builder
	prevDigit := false
	for i, r := range name {
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if i > 0 && (isUpper || (isDigit && !prevDigit)) {
			b.WriteByte('_')
		}
		if isUpper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevDigit = isDigit
	}
	return b.String()
}
