package life

import "torus-life/internal/core"

const (
	cellDead  uint8 = 0
	cellAlive uint8 = 1
)

// Coord addresses a cell on the board.
type Coord struct {
	X, Y int
}

// SeedFunc decides the initial state of one cell.
type SeedFunc func(rng *core.RNG) bool

// FairCoin seeds each cell alive with probability one half.
func FairCoin(rng *core.RNG) bool { return rng.Bool() }

// AllDead seeds an empty board without consuming the RNG.
func AllDead(*core.RNG) bool { return false }

// Board owns the alive/dead state of every cell in a flat row-major store.
type Board struct {
	grid *core.ByteGrid
}

// NewBoard allocates a w*h board and seeds every cell in row-major order.
// A nil seed function uses FairCoin.
func NewBoard(w, h int, rng *core.RNG, seed SeedFunc) *Board {
	if seed == nil {
		seed = FairCoin
	}
	b := &Board{grid: core.NewByteGrid(w, h)}
	cells := b.grid.Cells()
	for i := range cells {
		if seed(rng) {
			cells[i] = cellAlive
		}
	}
	return b
}

// Shape returns the board dimensions.
func (b *Board) Shape() (w, h int) { return b.grid.W, b.grid.H }

// Empty reports whether the board has no cells at all.
func (b *Board) Empty() bool { return b.grid.Len() == 0 }

// Contains reports whether (x, y) is a direct, unwrapped coordinate.
func (b *Board) Contains(x, y int) bool { return b.grid.InBounds(x, y) }

// Get returns the state of (x, y). It panics when the coordinate is out of range.
func (b *Board) Get(x, y int) bool { return b.grid.At(x, y) == cellAlive }

// Set stores the state of (x, y). It panics when the coordinate is out of range.
func (b *Board) Set(x, y int, alive bool) {
	v := cellDead
	if alive {
		v = cellAlive
	}
	b.grid.Set(x, y, v)
}

// Cells exposes the committed generation as 0/1 bytes. Callers must treat the
// slice as read-only.
func (b *Board) Cells() []uint8 { return b.grid.Cells() }

// Population returns the number of live cells.
func (b *Board) Population() int { return b.grid.CountNonZero() }

// Clear kills every cell.
func (b *Board) Clear() { b.grid.Clear() }

// Equal reports whether both boards have the same shape and state.
func (b *Board) Equal(o *Board) bool {
	if b.grid.W != o.grid.W || b.grid.H != o.grid.H {
		return false
	}
	a, c := b.grid.Cells(), o.grid.Cells()
	for i := range a {
		if a[i] != c[i] {
			return false
		}
	}
	return true
}

func (b *Board) commit(next []uint8) {
	copy(b.grid.Cells(), next)
}
