package main

import (
	"context"
	"log"

	"strategygame/internal/battlefield"
	"strategygame/internal/config"
	"strategygame/internal/game"
	"strategygame/internal/logger"
	"strategygame/internal/parallel"
	"strategygame/internal/scene"
	"strategygame/internal/tiles"
	"strategygame/internal/units"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	catalog, err := tiles.NewCatalog(cfg.TileAtlas())
	if err != nil {
		logger.Log.Fatalf("Tile catalog: %v", err)
	}

	grid := battlefield.DefaultGrid()
	if cfg.Battlefield.MapFile != "" {
		legend, err := tiles.LoadLegend(cfg.Battlefield.LegendFile)
		if err != nil {
			logger.Log.Fatalf("Tile legend: %v", err)
		}
		if grid, err = battlefield.LoadGrid(cfg.Battlefield.MapFile, legend); err != nil {
			logger.Log.Fatalf("Battlefield map: %v", err)
		}
	}

	layout, err := battlefield.New(grid, cfg.Battlefield.TileSize)
	if err != nil {
		logger.Log.Fatalf("Battlefield layout: %v", err)
	}

	pool := parallel.NewStartedPool(cfg.Threading.Workers)
	cells, err := layout.CellsParallel(context.Background(), pool, catalog)
	pool.Stop()
	if err != nil {
		logger.Log.Fatalf("Battlefield tiles: %v", err)
	}

	roster, err := units.FromConfig(cfg)
	if err != nil {
		logger.Log.Fatalf("Unit roster: %v", err)
	}
	placed, err := roster.Place(layout)
	if err != nil {
		logger.Log.Fatalf("Unit placement: %v", err)
	}

	world := donburi.NewWorld()
	scene.SpawnBattlefield(world, cells, cfg.Battlefield.Atlas.Image, cfg.TileAtlas())
	scene.SpawnUnits(world, placed, roster.Sheet())

	logger.Log.WithFields(logrus.Fields{
		"columns": layout.Columns(),
		"rows":    layout.Rows(),
		"tiles":   len(cells),
		"units":   len(placed),
		"workers": pool.NumWorkers(),
	}).Info("battlefield ready")

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewBattleGame(cfg, world, layout)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
