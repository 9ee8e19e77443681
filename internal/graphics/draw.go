// Package graphics draws scene sprites onto an ebiten screen.
package graphics

import (
	"strategygame/internal/battlefield"
	"strategygame/internal/logger"
	"strategygame/internal/scene"
	"strategygame/internal/tiles"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frame cuts one atlas cell out of a sheet.
func Frame(sheet *ebiten.Image, atlas tiles.Atlas, idx tiles.AtlasIndex) (*ebiten.Image, error) {
	rect, err := atlas.Rect(idx)
	if err != nil {
		return nil, err
	}
	return sheet.SubImage(rect).(*ebiten.Image), nil
}

// SpriteGeoM places a w×h sprite centered on pos. World space has its origin
// at the screen center with Y pointing up.
func SpriteGeoM(pos battlefield.Vec3, w, h float64, flipX bool, logicalW, logicalH int) ebiten.GeoM {
	var m ebiten.GeoM
	if flipX {
		m.Scale(-1, 1)
		m.Translate(w, 0)
	}
	m.Translate(
		float64(logicalW)/2+pos.X-w/2,
		float64(logicalH)/2-pos.Y-h/2,
	)
	return m
}

// DrawScene draws drawables in the given order. Entries whose frame is not
// in their atlas are skipped.
func DrawScene(screen *ebiten.Image, drawables []scene.Drawable, sprites *SpriteManager) int {
	bounds := screen.Bounds()
	drawn := 0
	for _, d := range drawables {
		sheet := sprites.Sheet(d.Sheet, d.Atlas)
		frame, err := Frame(sheet, d.Atlas, d.Frame)
		if err != nil {
			logger.Log.WithField("sheet", d.Sheet).Errorf("skip sprite: %v", err)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM = SpriteGeoM(d.Position,
			float64(d.Atlas.CellWidth), float64(d.Atlas.CellHeight),
			d.FlipX, bounds.Dx(), bounds.Dy())
		screen.DrawImage(frame, op)
		drawn++
	}
	return drawn
}
