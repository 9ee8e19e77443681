// Package scene turns battlefield and unit placements into ECS entities and
// reads them back in draw order.
package scene

import (
	"sort"

	"strategygame/internal/battlefield"
	"strategygame/internal/tiles"
	"strategygame/internal/units"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// TransformData is an entity's world position.
type TransformData struct {
	Position battlefield.Vec3
}

// SpriteData selects one cell of a sprite sheet.
type SpriteData struct {
	Sheet string
	Atlas tiles.Atlas
	Frame tiles.AtlasIndex
	FlipX bool
	Seq   int // spawn order, breaks ties between equal Z
}

// TileCellData marks a terrain entity with its grid cell.
type TileCellData struct {
	Column int
	Row    int
	Tile   tiles.TileType
}

// UnitTagData marks a unit entity.
type UnitTagData struct {
	Name string
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Sprite    = donburi.NewComponentType[SpriteData]()
	TileCell  = donburi.NewComponentType[TileCellData]()
	UnitTag   = donburi.NewComponentType[UnitTagData]()
)

var (
	spriteQuery = donburi.NewQuery(filter.Contains(Transform, Sprite))
	tileQuery   = donburi.NewQuery(filter.Contains(TileCell))
	unitQuery   = donburi.NewQuery(filter.Contains(UnitTag))
)

// Drawable is a flattened sprite entity for the renderer.
type Drawable struct {
	Sheet    string
	Atlas    tiles.Atlas
	Frame    tiles.AtlasIndex
	Position battlefield.Vec3
	FlipX    bool
}

// SpawnBattlefield creates one entity per tile placement and returns how many
// were created.
func SpawnBattlefield(world donburi.World, placements []battlefield.TilePlacement, sheetPath string, atlas tiles.Atlas) int {
	seq := spriteQuery.Count(world)
	for _, p := range placements {
		entry := world.Entry(world.Create(Transform, Sprite, TileCell))
		Transform.Set(entry, &TransformData{Position: p.Position})
		Sprite.Set(entry, &SpriteData{
			Sheet: sheetPath,
			Atlas: atlas,
			Frame: p.Index,
			Seq:   seq,
		})
		TileCell.Set(entry, &TileCellData{Column: p.Column, Row: p.Row, Tile: p.Tile})
		seq++
	}
	return len(placements)
}

// SpawnUnits creates one entity per unit placement.
func SpawnUnits(world donburi.World, placements []units.Placement, sheet tiles.Atlas) int {
	seq := spriteQuery.Count(world)
	for _, p := range placements {
		entry := world.Entry(world.Create(Transform, Sprite, UnitTag))
		Transform.Set(entry, &TransformData{Position: p.Position})
		Sprite.Set(entry, &SpriteData{
			Sheet: p.Sheet,
			Atlas: sheet,
			Frame: p.Frame,
			FlipX: p.FlipX,
			Seq:   seq,
		})
		UnitTag.Set(entry, &UnitTagData{Name: p.Name})
		seq++
	}
	return len(placements)
}

// TileCount returns the number of terrain entities.
func TileCount(world donburi.World) int {
	return tileQuery.Count(world)
}

// UnitCount returns the number of unit entities.
func UnitCount(world donburi.World) int {
	return unitQuery.Count(world)
}

// DrawOrder returns every sprite entity sorted back to front: by Z, then by
// spawn order.
func DrawOrder(world donburi.World) []Drawable {
	type keyed struct {
		d   Drawable
		seq int
	}
	var items []keyed
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		tr := Transform.Get(entry)
		sp := Sprite.Get(entry)
		items = append(items, keyed{
			d: Drawable{
				Sheet:    sp.Sheet,
				Atlas:    sp.Atlas,
				Frame:    sp.Frame,
				Position: tr.Position,
				FlipX:    sp.FlipX,
			},
			seq: sp.Seq,
		})
	})

	sort.Slice(items, func(i, j int) bool {
		if items[i].d.Position.Z != items[j].d.Position.Z {
			return items[i].d.Position.Z < items[j].d.Position.Z
		}
		return items[i].seq < items[j].seq
	})

	out := make([]Drawable, len(items))
	for i, it := range items {
		out[i] = it.d
	}
	return out
}
