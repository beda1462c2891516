package life

import (
	"fmt"

	"torus-life/internal/core"
)

// Life drives a stochastic toroidal Game of Life board. It is not safe for
// concurrent use: steps, paints and queries must come from one goroutine.
type Life struct {
	cfg  Config
	w, h int
	seed int64

	rng     *core.RNG
	board   *Board
	stepper *Stepper

	paused     bool
	generation int
}

// New validates cfg and builds a seeded board.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Life{paused: cfg.StartPaused}
	if err := l.rebuild(cfg, seedFor(cfg)); err != nil {
		return nil, err
	}
	return l, nil
}

func seedFor(cfg Config) int64 {
	if cfg.UseSeed {
		return cfg.Seed
	}
	return core.EntropySeed()
}

func (l *Life) rebuild(cfg Config, seed int64) error {
	w, h, err := ComputeShape(cfg.BoardWidth, cfg.BoardHeight, cfg.CellSize)
	if err != nil {
		return err
	}
	rng := core.NewRNG(seed)
	l.cfg = cfg
	l.w, l.h = w, h
	l.seed = seed
	l.rng = rng
	l.board = NewBoard(w, h, rng, FairCoin)
	l.stepper = NewStepper(rng, StepParams{
		Radius:           cfg.Radius,
		SpawnProbability: cfg.SpawnProbability,
		Workers:          cfg.Workers,
	})
	l.generation = 0
	return nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Shape returns the grid dimensions.
func (l *Life) Shape() (w, h int) { return l.w, l.h }

// Cells exposes the committed generation as 0/1 bytes.
func (l *Life) Cells() []uint8 { return l.board.Cells() }

// Board exposes the live board.
func (l *Life) Board() *Board { return l.board }

// Config returns the active configuration, including runtime parameter edits.
func (l *Life) Config() Config { return l.cfg }

// Seed returns the seed the current board was built from.
func (l *Life) Seed() int64 { return l.seed }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.board.Population() }

// Reset reallocates and reseeds the board from seed, keeping all parameters.
func (l *Life) Reset(seed int64) {
	// cfg was validated when it was accepted.
	_ = l.rebuild(l.cfg, seed)
}

// Restart reseeds using the configured seed policy.
func (l *Life) Restart() {
	l.Reset(seedFor(l.cfg))
}

// Reconfigure validates cfg and rebuilds the board from it. On error the
// current board and parameters are left untouched.
func (l *Life) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return l.rebuild(cfg, seedFor(cfg))
}

// Step advances one generation regardless of the pause flag.
func (l *Life) Step() {
	l.stepper.Step(l.board)
	l.generation++
}

// ForceStep advances one generation regardless of the pause flag.
func (l *Life) ForceStep() { l.Step() }

// Tick advances one generation unless paused and reports whether it did.
func (l *Life) Tick() bool {
	if l.paused {
		return false
	}
	l.Step()
	return true
}

// Pause stops Tick from advancing the board.
func (l *Life) Pause() { l.paused = true }

// Resume lets Tick advance the board again.
func (l *Life) Resume() { l.paused = false }

// Paused reports the pause flag.
func (l *Life) Paused() bool { return l.paused }

// PaintAt forces cells at (x, y) to the given state. Region mode uses the
// configured paint radius. Coordinates outside the board are ignored.
func (l *Life) PaintAt(x, y int, mode core.PaintMode, alive bool) {
	c := Coord{X: x, Y: y}
	switch mode {
	case core.PaintSingle:
		PaintSingle(l.board, c, alive)
	case core.PaintRegion:
		PaintRegion(l.board, c, l.cfg.PaintRadius, alive)
	}
}

// CellState returns the state of (x, y). It panics when the coordinate is out of range.
func (l *Life) CellState(x, y int) bool { return l.board.Get(x, y) }

// DescribeCell formats the coordinate, physical position and state of a cell.
func (l *Life) DescribeCell(x, y int) string {
	if !l.board.Contains(x, y) {
		return fmt.Sprintf("cell (%d,%d) out of range %dx%d", x, y, l.w, l.h)
	}
	px, py := CellCenter(x, y, l.cfg.CellSize, l.cfg.BoardWidth, l.cfg.BoardHeight)
	return fmt.Sprintf("cell (%d,%d) pos=(%g, %g) alive=%t", x, y, px, py, l.board.Get(x, y))
}

// SetIntParameter updates radius, paint_radius or workers. Invalid values are
// rejected.
func (l *Life) SetIntParameter(key string, value int) bool {
	cfg := l.cfg
	switch key {
	case "radius":
		cfg.Radius = value
	case "paint_radius":
		cfg.PaintRadius = value
	case "workers":
		cfg.Workers = value
	default:
		return false
	}
	return l.applyParams(cfg)
}

// SetFloatParameter updates spawn_probability. Invalid values are rejected.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	cfg := l.cfg
	switch key {
	case "spawn_probability":
		cfg.SpawnProbability = value
	default:
		return false
	}
	return l.applyParams(cfg)
}

func (l *Life) applyParams(cfg Config) bool {
	if cfg.Validate() != nil {
		return false
	}
	l.cfg = cfg
	l.stepper.SetParams(StepParams{
		Radius:           cfg.Radius,
		SpawnProbability: cfg.SpawnProbability,
		Workers:          cfg.Workers,
	})
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
