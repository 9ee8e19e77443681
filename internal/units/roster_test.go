package units

import (
	"errors"
	"testing"

	"strategygame/internal/battlefield"
	"strategygame/internal/config"
	"strategygame/internal/tiles"
)

func TestRosterPlace(t *testing.T) {
	layout, err := battlefield.New(battlefield.DefaultGrid(), 16)
	if err != nil {
		t.Fatalf("New layout: %v", err)
	}
	roster, err := NewRoster(32, tiles.UnitSheet())
	if err != nil {
		t.Fatalf("NewRoster: %v", err)
	}

	roster.Add(Unit{
		Name:    "Archer",
		Sheet:   "Sprite Sheets/Archer/Archer_Blue1.png",
		Request: battlefield.PlacementRequest{Column: 0, Row: 0, Layer: 1},
	})
	roster.Add(Unit{
		Name:    "Knight",
		Sheet:   "Sprite Sheets/Knight/Knight_Red1.png",
		Frame:   4,
		Request: battlefield.PlacementRequest{Column: 2, Row: 0, Layer: 1, FlipX: true},
	})

	got, err := roster.Place(layout)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	archer := got[0]
	if archer.Name != "Archer" || archer.Frame != 0 || archer.FlipX {
		t.Errorf("archer = %+v", archer)
	}
	if archer.Position != (battlefield.Vec3{X: -88, Y: -32, Z: 1}) {
		t.Errorf("archer position = %+v", archer.Position)
	}

	knight := got[1]
	if !knight.FlipX || knight.Frame != 4 || knight.Layer != 1 {
		t.Errorf("knight = %+v", knight)
	}
	if knight.Position != (battlefield.Vec3{X: 72 - 96, Y: 8 - 40, Z: 1}) {
		t.Errorf("knight position = %+v", knight.Position)
	}
}

func TestRosterRejectsBadFrame(t *testing.T) {
	layout, _ := battlefield.New(battlefield.DefaultGrid(), 16)
	roster, _ := NewRoster(32, tiles.UnitSheet())
	roster.Add(Unit{Name: "Broken", Sheet: "x.png", Frame: 16})

	if _, err := roster.Place(layout); !errors.Is(err, tiles.ErrIndexOutOfRange) {
		t.Errorf("Place error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestNewRosterValidation(t *testing.T) {
	if _, err := NewRoster(0, tiles.UnitSheet()); !errors.Is(err, ErrInvalidSpriteSize) {
		t.Errorf("error = %v, want ErrInvalidSpriteSize", err)
	}
	if _, err := NewRoster(32, tiles.Atlas{}); !errors.Is(err, tiles.ErrInvalidAtlas) {
		t.Errorf("error = %v, want ErrInvalidAtlas", err)
	}
}

func TestFromConfig(t *testing.T) {
	cfg, err := config.ParseConfig([]byte(`
units:
  roster:
    - name: "Archer"
      sheet: "archer.png"
    - name: "Mage"
      sheet: "mage.png"
      column: 3
      row: 1
      layer: 2
      frame: 1
      flip: true
`))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	roster, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if roster.SpriteSize() != 32 || roster.Sheet() != tiles.UnitSheet() {
		t.Errorf("roster geometry = %v %+v", roster.SpriteSize(), roster.Sheet())
	}

	list := roster.Units()
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	mage := list[1]
	want := battlefield.PlacementRequest{Column: 3, Row: 1, Layer: 2, FlipX: true}
	if mage.Request != want || mage.Frame != 1 || mage.Sheet != "mage.png" {
		t.Errorf("mage = %+v", mage)
	}
	if list[0].Request.Layer != 1 {
		t.Errorf("archer layer = %v, want default 1", list[0].Request.Layer)
	}
}
