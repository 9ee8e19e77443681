package tiles

import "fmt"

// atlasCell is a (column, row) position in the tileset.
type atlasCell struct {
	column, row int
}

// Tileset band rows.
const (
	brownRow            = 0
	greenRow            = 2
	brownGreenUpperRow  = 7
	brownGreenMiddleRow = 8
	brownGreenLowerRow  = 9
)

// tileCells pins each tile type to its cell in Tiles/FullTileset.png.
// These offsets index an external image and must not drift.
var tileCells = [...]atlasCell{
	Brown1: {0, brownRow},
	Brown2: {1, brownRow},
	Brown3: {2, brownRow},
	Brown4: {3, brownRow},

	Green1: {0, greenRow},
	Green2: {1, greenRow},
	Green3: {2, greenRow},
	Green4: {3, greenRow},

	BrownGreenUpper1: {0, brownGreenUpperRow},
	BrownGreenUpper2: {1, brownGreenUpperRow},
	BrownGreenUpper3: {2, brownGreenUpperRow},
	BrownGreenUpper5: {4, brownGreenUpperRow},
	BrownGreenUpper7: {6, brownGreenUpperRow},

	BrownGreenMiddle1: {0, brownGreenMiddleRow},
	BrownGreenMiddle3: {2, brownGreenMiddleRow},
	BrownGreenMiddle4: {3, brownGreenMiddleRow},
	BrownGreenMiddle6: {5, brownGreenMiddleRow},

	BrownGreenLower1: {0, brownGreenLowerRow},
	BrownGreenLower2: {1, brownGreenLowerRow},
	BrownGreenLower3: {2, brownGreenLowerRow},
	BrownGreenLower5: {4, brownGreenLowerRow},
	BrownGreenLower7: {6, brownGreenLowerRow},
}

// Adding a tile type without a cell fails to compile.
var _ [len(tileCells) - int(tileTypeCount)]struct{}
var _ [int(tileTypeCount) - len(tileCells)]struct{}

// Catalog resolves tile types to indices within one atlas. It is read-only
// after NewCatalog returns and safe for concurrent use.
type Catalog struct {
	atlas   Atlas
	indices [tileTypeCount]AtlasIndex
}

// NewCatalog computes the index of every tile type for the given atlas.
func NewCatalog(atlas Atlas) (*Catalog, error) {
	if err := atlas.Validate(); err != nil {
		return nil, err
	}
	c := &Catalog{atlas: atlas}
	for t, cell := range tileCells {
		if cell.column >= atlas.Columns || cell.row >= atlas.Rows {
			return nil, fmt.Errorf("%w: %s needs cell (%d,%d) in a %dx%d atlas",
				ErrInvalidAtlas, TileType(t), cell.column, cell.row, atlas.Columns, atlas.Rows)
		}
		c.indices[t] = atlas.Index(cell.column, cell.row)
	}
	return c, nil
}

// MustNewCatalog is NewCatalog that panics on error.
func MustNewCatalog(atlas Atlas) *Catalog {
	c, err := NewCatalog(atlas)
	if err != nil {
		panic("Failed to build tile catalog: " + err.Error())
	}
	return c
}

// Resolve returns the atlas index for a tile type.
func (c *Catalog) Resolve(t TileType) (AtlasIndex, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTileIdentifier, t)
	}
	return c.indices[t], nil
}

// Atlas returns the geometry the catalog was built for.
func (c *Catalog) Atlas() Atlas {
	return c.atlas
}

// All returns every tile type in declaration order.
func (c *Catalog) All() []TileType {
	return AllTileTypes()
}
