package main

import (
	"fmt"
	"log"

	"strategygame/internal/battlefield"
	"strategygame/internal/config"
	"strategygame/internal/tiles"
	"strategygame/internal/units"
)

func main() {
	// Run from debug/, like the other tools here
	cfg := config.MustLoadConfig("../config.yaml")

	legend, err := tiles.LoadLegend("../" + cfg.Battlefield.LegendFile)
	if err != nil {
		log.Fatalf("Failed to load tile legend: %v", err)
	}
	catalog, err := tiles.NewCatalog(cfg.TileAtlas())
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	fmt.Println("Tile Catalog")
	fmt.Println("============")
	for _, t := range catalog.All() {
		idx, _ := catalog.Resolve(t)
		col, row, _ := catalog.Atlas().Cell(idx)
		fmt.Printf("%-4s %-20s -> %3d (col %2d, row %2d)\n", legend.Code(t), t, idx, col, row)
	}

	grid := battlefield.DefaultGrid()
	if cfg.Battlefield.MapFile != "" {
		if grid, err = battlefield.LoadGrid("../"+cfg.Battlefield.MapFile, legend); err != nil {
			log.Fatalf("Failed to load map: %v", err)
		}
	}
	layout, err := battlefield.New(grid, cfg.Battlefield.TileSize)
	if err != nil {
		log.Fatalf("Invalid battlefield: %v", err)
	}
	cells, err := layout.Cells(catalog)
	if err != nil {
		log.Fatalf("Failed to place tiles: %v", err)
	}

	fmt.Printf("\nTile Placements (%dx%d):\n", layout.Columns(), layout.Rows())
	for _, c := range cells {
		fmt.Printf("(%2d,%d) %-4s idx %3d at (%6.1f, %6.1f, %.1f)\n",
			c.Column, c.Row, legend.Code(c.Tile), c.Index, c.Position.X, c.Position.Y, c.Position.Z)
	}

	roster, err := units.FromConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid roster: %v", err)
	}
	placed, err := roster.Place(layout)
	if err != nil {
		log.Fatalf("Failed to place units: %v", err)
	}

	fmt.Println("\nUnit Placements:")
	for _, p := range placed {
		fmt.Printf("- %s frame %d at (%.1f, %.1f, %.1f) flip=%v\n",
			p.Name, p.Frame, p.Position.X, p.Position.Y, p.Position.Z, p.FlipX)
	}
}
