package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"os"

	"strategygame/internal/logger"
	"strategygame/internal/tiles"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// SpriteManager loads sprite sheets by path and caches them.
type SpriteManager struct {
	sheets map[string]*ebiten.Image
}

func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		sheets: make(map[string]*ebiten.Image),
	}
}

// Sheet returns the image at path. A sheet that can't be read is replaced by
// a placeholder of the atlas size, cached so the warning is logged once.
func (sm *SpriteManager) Sheet(path string, atlas tiles.Atlas) *ebiten.Image {
	if img, ok := sm.sheets[path]; ok {
		return img
	}

	img, err := loadImage(path)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"sheet": path,
			"error": err,
		}).Warn("sprite sheet unavailable, using placeholder")
		img = createPlaceholder(atlas)
	}
	sm.sheets[path] = img
	return img
}

// Len reports how many sheets are cached.
func (sm *SpriteManager) Len() int {
	return len(sm.sheets)
}

func loadImage(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// createPlaceholder fills every atlas cell with its own shade so frames stay
// distinguishable without art.
func createPlaceholder(atlas tiles.Atlas) *ebiten.Image {
	w, h := atlas.PixelSize()
	img := ebiten.NewImage(w, h)
	for i := 0; i < atlas.Len(); i++ {
		rect, err := atlas.Rect(tiles.AtlasIndex(i))
		if err != nil {
			continue
		}
		img.SubImage(rect).(*ebiten.Image).Fill(placeholderColor(atlas, tiles.AtlasIndex(i)))
	}
	return img
}

func placeholderColor(atlas tiles.Atlas, idx tiles.AtlasIndex) color.RGBA {
	col, row, err := atlas.Cell(idx)
	if err != nil {
		return color.RGBA{128, 128, 128, 255} // Gray for unknown
	}
	shade := func(n, of int) uint8 {
		if of <= 1 {
			return 128
		}
		return uint8(64 + n*160/(of-1))
	}
	return color.RGBA{shade(col, atlas.Columns), shade(row, atlas.Rows), 96, 255}
}
