package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// A grid with zero width or height is valid and holds no cells.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Negative dimensions
// are treated as zero.
func NewByteGrid(w, h int) *ByteGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates panic; use Wrap
// first when toroidal addressing is intended.
func (g *ByteGrid) At(x, y int) uint8 {
	g.mustContain(x, y)
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-range coordinates panic.
func (g *ByteGrid) Set(x, y int, v uint8) {
	g.mustContain(x, y)
	g.data[y*g.W+x] = v
}

// Wrap applies toroidal wrapping to the provided coordinates. The grid must
// not be empty.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CountNonZero returns the number of cells holding a non-zero value.
func (g *ByteGrid) CountNonZero() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

func (g *ByteGrid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: coordinate (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
