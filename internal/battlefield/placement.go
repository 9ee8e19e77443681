package battlefield

// PlacementRequest asks for a unit sprite at a grid cell. Column and Row are
// in sprite-sized cells and may be fractional. FlipX is passed through to the
// renderer untouched.
type PlacementRequest struct {
	Column float64
	Row    float64
	Layer  float64
	FlipX  bool
}

// UnitLocalAnchor returns the local position of a sprite of the given size in
// cell (column, row), before centering. The quarter-sprite inset matches the
// reference layout and must stay exact.
func UnitLocalAnchor(column, row, spriteSize float64) (x, y float64) {
	return column*spriteSize + spriteSize/4, row*spriteSize + spriteSize/4
}

// PlaceUnit returns the world position of a unit sprite, using the same
// transform as the tiles so both stay aligned.
func (l *Layout) PlaceUnit(req PlacementRequest, spriteSize float64) Vec3 {
	x, y := UnitLocalAnchor(req.Column, req.Row, spriteSize)
	return l.ToWorldCoordinates(x, y, req.Layer)
}
