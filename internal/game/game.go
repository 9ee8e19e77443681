package game

import (
	"fmt"
	"image/color"

	"strategygame/internal/battlefield"
	"strategygame/internal/config"
	"strategygame/internal/graphics"
	"strategygame/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const debugMargin = 4

// BattleGame shows a static battlefield with its units.
type BattleGame struct {
	config  *config.Config
	world   donburi.World
	layout  *battlefield.Layout
	sprites *graphics.SpriteManager

	clear     color.RGBA
	showDebug bool
	lastDrawn int
}

// NewBattleGame wires a populated world into an ebiten.Game.
func NewBattleGame(cfg *config.Config, world donburi.World, layout *battlefield.Layout) *BattleGame {
	cc := cfg.Display.ClearColor
	return &BattleGame{
		config:    cfg,
		world:     world,
		layout:    layout,
		sprites:   graphics.NewSpriteManager(),
		clear:     color.RGBA{uint8(cc[0]), uint8(cc[1]), uint8(cc[2]), 255},
		showDebug: cfg.Display.ShowDebug,
	}
}

// Update has nothing to advance; the scene is static.
func (g *BattleGame) Update() error {
	return nil
}

func (g *BattleGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)

	g.lastDrawn = graphics.DrawScene(screen, scene.DrawOrder(g.world), g.sprites)

	if g.showDebug {
		g.drawDebug(screen)
	}
}

// Layout returns the logical resolution. The window scale stretches it.
func (g *BattleGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.LogicalSize()
}

func (g *BattleGame) drawDebug(screen *ebiten.Image) {
	face := basicfont.Face7x13
	width := screen.Bounds().Dx()
	y := debugMargin + face.Ascent
	for _, line := range g.debugLines() {
		x := rightAlignX(face, line, width)
		ebitext.Draw(screen, line, face, x, y, color.White)
		y += face.Height
	}
}

func (g *BattleGame) debugLines() []string {
	return []string{
		fmt.Sprintf("grid %dx%d", g.layout.Columns(), g.layout.Rows()),
		fmt.Sprintf("tiles %d units %d", scene.TileCount(g.world), scene.UnitCount(g.world)),
		fmt.Sprintf("drawn %d", g.lastDrawn),
	}
}

// rightAlignX returns the dot x that puts s flush against the right margin.
func rightAlignX(face font.Face, s string, width int) int {
	return width - debugMargin - font.MeasureString(face, s).Round()
}
