package life

// PaintRegion forces every cell selected by NeighborsInRadius around center
// to the given state. A center outside the board is a no-op.
func PaintRegion(b *Board, center Coord, radius int, alive bool) {
	if !b.Contains(center.X, center.Y) {
		return
	}
	for _, c := range NeighborsInRadius(b, center.X, center.Y, radius) {
		b.Set(c.X, c.Y, alive)
	}
}

// PaintSingle forces one cell to the given state. A coordinate outside the board is a no-op.
func PaintSingle(b *Board, c Coord, alive bool) {
	if !b.Contains(c.X, c.Y) {
		return
	}
	b.Set(c.X, c.Y, alive)
}
