package life

// Span selects how a radius maps onto an offset range along each axis.
type Span uint8

const (
	// SpanClosed covers offsets [-r, r].
	SpanClosed Span = iota
	// SpanHalfOpen covers offsets [-r, r).
	SpanHalfOpen
)

// Neighbour counting scans a closed square while the paint brush selects a
// half-open one, so a brush of radius r covers (2r)^2 cells.
const (
	CountSpan = SpanClosed
	PaintSpan = SpanHalfOpen
)

// bounds returns the inclusive offset range for radius r. The range is empty
// (lo > hi) when r admits no offsets.
func (s Span) bounds(r int) (lo, hi int) {
	if s == SpanHalfOpen {
		return -r, r - 1
	}
	return -r, r
}

// CountAliveNeighbors counts live cells in the closed square of the given
// radius around (x, y), wrapping each axis independently and excluding the
// centre cell once. Coordinates outside the board alias onto it. Radius 0
// and negative radii yield 0.
func CountAliveNeighbors(b *Board, x, y, radius int) int {
	if b.Empty() || radius <= 0 {
		return 0
	}
	w, h := b.Shape()
	x, y = b.grid.Wrap(x, y)
	cells := b.grid.Cells()

	lo, hi := CountSpan.bounds(radius)
	n := 0
	for j := lo; j <= hi; j++ {
		row := ((y+j)%h + h) % h
		base := row * w
		for i := lo; i <= hi; i++ {
			col := ((x+i)%w + w) % w
			n += int(cells[base+col])
		}
	}
	return n - int(cells[y*w+x])
}

// NeighborsInRadius returns the wrapped coordinates of the half-open square
// of the given radius around (x, y), x offsets outermost. The result holds
// (2*radius)^2 entries and may contain duplicates when the square is wider
// than the board.
func NeighborsInRadius(b *Board, x, y, radius int) []Coord {
	if b.Empty() || radius <= 0 {
		return nil
	}
	lo, hi := PaintSpan.bounds(radius)
	out := make([]Coord, 0, (hi-lo+1)*(hi-lo+1))
	for i := lo; i <= hi; i++ {
		for j := lo; j <= hi; j++ {
			nx, ny := b.grid.Wrap(x+i, y+j)
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}
