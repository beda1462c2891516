package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Driver is implemented by sims that own a pause flag. Tick advances one
// generation unless paused and reports whether it did.
type Driver interface {
	Tick() bool
	Pause()
	Resume()
	Paused() bool
	ForceStep()
}

// PaintMode selects how a paint request maps onto cells.
type PaintMode uint8

const (
	// PaintSingle edits only the addressed cell.
	PaintSingle PaintMode = iota
	// PaintRegion edits the brush region around the addressed cell.
	PaintRegion
)

func (m PaintMode) String() string {
	switch m {
	case PaintSingle:
		return "single"
	case PaintRegion:
		return "region"
	default:
		return "unknown"
	}
}

// ResolvePaint maps pointer buttons onto a paint request: the primary button
// paints a region, the secondary a single cell, and the erase modifier paints
// dead cells. ok is false when neither button is held.
func ResolvePaint(primary, secondary, erase bool) (mode PaintMode, alive bool, ok bool) {
	switch {
	case primary:
		return PaintRegion, !erase, true
	case secondary:
		return PaintSingle, !erase, true
	default:
		return 0, false, false
	}
}

// Painter accepts already-resolved cell coordinates from an input layer.
type Painter interface {
	PaintAt(x, y int, mode PaintMode, alive bool)
}

// CellDescriber produces a human readable line for inspection tooling.
type CellDescriber interface {
	DescribeCell(x, y int) string
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
