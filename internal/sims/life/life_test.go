package life

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	"torus-life/internal/core"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.BoardWidth = 12
	cfg.BoardHeight = 9
	cfg.CellSize = 1
	cfg.Seed = 99
	cfg.UseSeed = true
	return cfg
}

func mustNew(t *testing.T, cfg Config) *Life {
	t.Helper()
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"cell size", func(c *Config) { c.CellSize = 0 }, ErrInvalidCellSize},
		{"negative board", func(c *Config) { c.BoardHeight = -3 }, ErrNegativeBoard},
		{"radius", func(c *Config) { c.Radius = -1 }, ErrInvalidRadius},
		{"spawn high", func(c *Config) { c.SpawnProbability = 1 }, ErrInvalidSpawnProbability},
		{"spawn low", func(c *Config) { c.SpawnProbability = -0.1 }, ErrInvalidSpawnProbability},
		{"paint radius", func(c *Config) { c.PaintRadius = -2 }, ErrInvalidPaintRadius},
		{"workers", func(c *Config) { c.Workers = 0 }, ErrInvalidWorkers},
		{"NaN cell size", func(c *Config) { c.CellSize = math.NaN() }, ErrInvalidCellSize},
		{"infinite width", func(c *Config) { c.BoardWidth = math.Inf(1) }, ErrNegativeBoard},
		{"NaN height", func(c *Config) { c.BoardHeight = math.NaN() }, ErrNegativeBoard},
		{"NaN spawn", func(c *Config) { c.SpawnProbability = math.NaN() }, ErrInvalidSpawnProbability},
		{"oversized board", func(c *Config) {
			c.BoardWidth, c.BoardHeight, c.CellSize = 1<<33, 1<<31, 1
		}, ErrBoardTooLarge},
	}
	for _, tc := range cases {
		cfg := testConfig()
		tc.mutate(&cfg)
		if _, err := New(cfg); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := testConfig()
	cfg.CellSize = -1
	cfg.Radius = -1
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidCellSize) || !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("expected both errors, got %v", err)
	}
}

func TestRadiusZeroIsValid(t *testing.T) {
	cfg := testConfig()
	cfg.Radius = 0
	cfg.SpawnProbability = 0
	l := mustNew(t, cfg)
	l.Step()
	if l.Population() != 0 {
		t.Fatalf("radius 0 leaves every cell lonely; population %d", l.Population())
	}
}

func TestZeroSizedBoardSimulatesNothing(t *testing.T) {
	cfg := testConfig()
	cfg.BoardWidth = 0.5
	l := mustNew(t, cfg)
	if w, h := l.Shape(); w != 0 || h != 9 {
		t.Fatalf("shape %dx%d, want 0x9", w, h)
	}
	l.Tick()
	l.PaintAt(0, 0, core.PaintRegion, true)
	if len(l.Cells()) != 0 {
		t.Fatal("zero-width board must hold no cells")
	}
}

func TestSameSeedSameHistory(t *testing.T) {
	cfg := testConfig()
	cfg.SpawnProbability = 0.05
	a := mustNew(t, cfg)
	b := mustNew(t, cfg)
	for gen := 0; gen < 20; gen++ {
		if gen%5 == 2 {
			a.PaintAt(gen%12, gen%9, core.PaintRegion, true)
			b.PaintAt(gen%12, gen%9, core.PaintRegion, true)
		}
		if gen%7 == 3 {
			a.PaintAt(3, 4, core.PaintSingle, false)
			b.PaintAt(3, 4, core.PaintSingle, false)
		}
		a.Tick()
		b.Tick()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("generation %d diverged", gen)
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	l := mustNew(t, testConfig())
	initial := slices.Clone(l.Cells())
	l.Step()
	l.Step()
	l.Reset(99)
	if !slices.Equal(initial, l.Cells()) {
		t.Fatal("Reset with the construction seed must rebuild the same board")
	}
	if l.Generation() != 0 {
		t.Fatalf("generation after reset = %d", l.Generation())
	}
	l.Reset(100)
	if slices.Equal(initial, l.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestPauseResumeAndForceStep(t *testing.T) {
	cfg := testConfig()
	cfg.StartPaused = true
	l := mustNew(t, cfg)
	if !l.Paused() {
		t.Fatal("StartPaused must pause the controller")
	}
	before := slices.Clone(l.Cells())
	if l.Tick() {
		t.Fatal("Tick must not step while paused")
	}
	if !slices.Equal(before, l.Cells()) || l.Generation() != 0 {
		t.Fatal("paused tick changed the board")
	}
	l.ForceStep()
	if l.Generation() != 1 {
		t.Fatalf("ForceStep generation = %d, want 1", l.Generation())
	}
	l.Resume()
	if !l.Tick() || l.Generation() != 2 {
		t.Fatal("Tick must step after Resume")
	}
	l.Pause()
	if l.Tick() {
		t.Fatal("Tick must not step after Pause")
	}
}

func TestPaintAtModes(t *testing.T) {
	cfg := testConfig()
	cfg.PaintRadius = 1
	l := mustNew(t, cfg)
	l.Board().Clear()

	l.PaintAt(5, 5, core.PaintRegion, true)
	for _, c := range []Coord{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		if !l.CellState(c.X, c.Y) {
			t.Fatalf("region paint missed %v", c)
		}
	}
	if l.Population() != 4 {
		t.Fatalf("region paint population = %d, want 4", l.Population())
	}

	l.PaintAt(4, 4, core.PaintSingle, false)
	if l.CellState(4, 4) || l.Population() != 3 {
		t.Fatal("single paint must clear exactly one cell")
	}

	l.PaintAt(-1, 3, core.PaintRegion, true)
	l.PaintAt(12, 0, core.PaintSingle, true)
	if l.Population() != 3 {
		t.Fatal("out-of-range paints must be no-ops")
	}
}

func TestCellStatePanicsOutOfRange(t *testing.T) {
	l := mustNew(t, testConfig())
	defer func() {
		if recover() == nil {
			t.Fatal("expected CellState outside the board to panic")
		}
	}()
	l.CellState(12, 0)
}

func TestDescribeCell(t *testing.T) {
	cfg := testConfig()
	cfg.BoardWidth = 4
	cfg.BoardHeight = 2
	l := mustNew(t, cfg)
	l.Board().Clear()
	l.PaintAt(1, 0, core.PaintSingle, true)

	if got, want := l.DescribeCell(1, 0), "cell (1,0) pos=(-0.5, 0.5) alive=true"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := l.DescribeCell(9, 9); !strings.Contains(got, "out of range 4x2") {
		t.Fatalf("unexpected out-of-range description %q", got)
	}
}

func TestReconfigureKeepsBoardOnError(t *testing.T) {
	l := mustNew(t, testConfig())
	before := slices.Clone(l.Cells())
	bad := testConfig()
	bad.CellSize = 0
	if err := l.Reconfigure(bad); !errors.Is(err, ErrInvalidCellSize) {
		t.Fatalf("got %v", err)
	}
	if !slices.Equal(before, l.Cells()) {
		t.Fatal("failed reconfigure must not touch the board")
	}
	huge := testConfig()
	huge.BoardWidth, huge.BoardHeight = 1<<33, 1<<31
	if err := l.Reconfigure(huge); !errors.Is(err, ErrBoardTooLarge) {
		t.Fatalf("oversized board: got %v", err)
	}
	if w, h := l.Shape(); w != 12 || h != 9 {
		t.Fatalf("shape %dx%d after rejected reconfigure", w, h)
	}

	good := testConfig()
	good.BoardWidth = 20
	if err := l.Reconfigure(good); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	if w, h := l.Shape(); w != 20 || h != 9 {
		t.Fatalf("shape %dx%d after reconfigure", w, h)
	}
}

func TestParameterSetters(t *testing.T) {
	l := mustNew(t, testConfig())
	if !l.SetIntParameter("radius", 3) || l.Config().Radius != 3 {
		t.Fatal("expected radius to be adjustable")
	}
	if l.SetIntParameter("radius", -1) || l.Config().Radius != 3 {
		t.Fatal("negative radius must be rejected")
	}
	if !l.SetFloatParameter("spawn_probability", 0.2) {
		t.Fatal("expected spawn probability to be adjustable")
	}
	if l.SetFloatParameter("spawn_probability", 1.5) {
		t.Fatal("spawn probability above range must be rejected")
	}
	if l.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	p, ok := l.Parameters().Lookup("spawn_probability")
	if !ok || p.Value != "0.2" {
		t.Fatalf("snapshot spawn_probability = %+v", p)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"board_w":           "30",
		"cell_size":         "2.5",
		"radius":            "2",
		"spawn_probability": "0.1",
		"paint_radius":      "x",
		"interval":          "250ms",
		"seed":              "7",
		"paused":            "true",
	})
	if c.BoardWidth != 30 || c.CellSize != 2.5 || c.Radius != 2 || c.SpawnProbability != 0.1 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.PaintRadius != DefaultConfig().PaintRadius {
		t.Fatal("unparsable values must keep the default")
	}
	if c.Interval != 250*time.Millisecond || !c.UseSeed || c.Seed != 7 || !c.StartPaused {
		t.Fatalf("unexpected driver settings %+v", c)
	}
	if err := FromMap(map[string]string{"radius": "-4"}).Validate(); !errors.Is(err, ErrInvalidRadius) {
		t.Fatalf("negative radius must reach Validate, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life must register itself")
	}
	sim, err := factory(map[string]string{"board_w": "8", "board_h": "6"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if s := sim.Size(); s.W != 8 || s.H != 6 {
		t.Fatalf("size %+v", s)
	}
	if _, err := factory(map[string]string{"cell_size": "0"}); err == nil {
		t.Fatal("factory must surface configuration errors")
	}
}
