package life

import (
	"torus-life/internal/core"

	"golang.org/x/sync/errgroup"
)

// StepParams holds the rule parameters applied uniformly across the board.
type StepParams struct {
	Radius           int
	SpawnProbability float64
	Workers          int
}

// Stepper computes generations for a Board. It owns the scratch buffers and
// the RNG used for spontaneous births.
type Stepper struct {
	params StepParams
	rng    *core.RNG

	counts []int32
	next   []uint8
}

// NewStepper returns a Stepper drawing from rng.
func NewStepper(rng *core.RNG, params StepParams) *Stepper {
	if params.Workers <= 0 {
		params.Workers = 1
	}
	return &Stepper{params: params, rng: rng}
}

// Params returns the active rule parameters.
func (s *Stepper) Params() StepParams { return s.params }

// SetParams replaces the rule parameters used by subsequent steps.
func (s *Stepper) SetParams(params StepParams) {
	if params.Workers <= 0 {
		params.Workers = 1
	}
	s.params = params
}

// Step advances b by one generation. Neighbour counts are staged from the
// committed generation first, the rule is then applied in row-major order so
// RNG consumption does not depend on the worker count, and the result is
// copied back into b in one pass.
func (s *Stepper) Step(b *Board) {
	if b.Empty() {
		return
	}
	total := b.grid.Len()
	if len(s.counts) != total {
		s.counts = make([]int32, total)
		s.next = make([]uint8, total)
	}

	s.stageCounts(b)

	cells := b.Cells()
	for i, n := range s.counts {
		s.next[i] = cellDead
		if s.nextState(cells[i] == cellAlive, int(n)) {
			s.next[i] = cellAlive
		}
	}

	b.commit(s.next)
}

func (s *Stepper) nextState(alive bool, n int) bool {
	switch {
	case !alive && n == 3:
		return true
	case alive && (n < 2 || n > 3):
		return false
	case alive:
		return true
	default:
		return s.rng.Float64() < s.params.SpawnProbability
	}
}

// stageCounts fills s.counts for every cell. Rows are split into bands, one
// goroutine per band, each writing only its own slots.
func (s *Stepper) stageCounts(b *Board) {
	_, h := b.Shape()
	workers := min(s.params.Workers, h)
	if workers <= 1 {
		s.countRows(b, 0, h)
		return
	}

	band := (h + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			s.countRows(b, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Stepper) countRows(b *Board, y0, y1 int) {
	w, _ := b.Shape()
	radius := s.params.Radius
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			s.counts[y*w+x] = int32(CountAliveNeighbors(b, x, y, radius))
		}
	}
}
