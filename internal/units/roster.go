package units

import (
	"errors"
	"fmt"

	"strategygame/internal/battlefield"
	"strategygame/internal/config"
	"strategygame/internal/tiles"
)

// ErrInvalidSpriteSize is returned for a non-positive sprite size.
var ErrInvalidSpriteSize = errors.New("invalid sprite size")

// Unit is a sprite to place on the battlefield.
type Unit struct {
	Name    string
	Sheet   string           // Sprite sheet image path
	Frame   tiles.AtlasIndex // Cell in the sheet; 0 is the idle pose
	Request battlefield.PlacementRequest
}

// Placement is what the renderer needs to draw one unit.
type Placement struct {
	Name     string
	Sheet    string
	Frame    tiles.AtlasIndex
	Position battlefield.Vec3
	FlipX    bool
	Layer    float64
}

// Roster is an ordered list of units sharing one sheet geometry.
type Roster struct {
	spriteSize float64
	sheet      tiles.Atlas
	units      []Unit
}

// NewRoster creates an empty roster.
func NewRoster(spriteSize float64, sheet tiles.Atlas) (*Roster, error) {
	if !(spriteSize > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpriteSize, spriteSize)
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return &Roster{spriteSize: spriteSize, sheet: sheet}, nil
}

// FromConfig builds a roster from the units section of the config.
func FromConfig(cfg *config.Config) (*Roster, error) {
	r, err := NewRoster(cfg.Units.SpriteSize, cfg.UnitSheet())
	if err != nil {
		return nil, err
	}
	for _, u := range cfg.Units.Roster {
		r.Add(Unit{
			Name:  u.Name,
			Sheet: u.Sheet,
			Frame: tiles.AtlasIndex(u.Frame),
			Request: battlefield.PlacementRequest{
				Column: u.Column,
				Row:    u.Row,
				Layer:  cfg.UnitLayer(u),
				FlipX:  u.Flip,
			},
		})
	}
	return r, nil
}

// Add appends a unit. Placement order follows insertion order.
func (r *Roster) Add(u Unit) {
	r.units = append(r.units, u)
}

// Units returns a copy of the roster entries.
func (r *Roster) Units() []Unit {
	return append([]Unit(nil), r.units...)
}

// SpriteSize returns the edge of one unit sprite in pixels.
func (r *Roster) SpriteSize() float64 {
	return r.spriteSize
}

// Sheet returns the sheet geometry shared by all units.
func (r *Roster) Sheet() tiles.Atlas {
	return r.sheet
}

// Place computes world positions for every unit on the layout.
func (r *Roster) Place(layout *battlefield.Layout) ([]Placement, error) {
	out := make([]Placement, 0, len(r.units))
	for _, u := range r.units {
		if !r.sheet.Contains(u.Frame) {
			return nil, fmt.Errorf("unit %s: %w: frame %d not in %dx%d sheet",
				u.Name, tiles.ErrIndexOutOfRange, u.Frame, r.sheet.Columns, r.sheet.Rows)
		}
		out = append(out, Placement{
			Name:     u.Name,
			Sheet:    u.Sheet,
			Frame:    u.Frame,
			Position: layout.PlaceUnit(u.Request, r.spriteSize),
			FlipX:    u.Request.FlipX,
			Layer:    u.Request.Layer,
		})
	}
	return out, nil
}
