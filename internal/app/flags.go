package app

import (
	"flag"
	"strconv"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	HUDWidth int

	BoardW, BoardH   float64
	CellSize         float64
	Radius           int
	SpawnProbability float64
	PaintRadius      int
	Interval         time.Duration
	Paused           bool
	Seed             int64
	RandomSeed       bool
	Workers          int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:              "life",
		Scale:            8,
		HUDWidth:         220,
		BoardW:           96,
		BoardH:           72,
		CellSize:         1,
		Radius:           1,
		SpawnProbability: 0.01,
		PaintRadius:      4,
		Interval:         100 * time.Millisecond,
		Seed:             42,
		Workers:          1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Float64Var(&c.BoardW, "board-w", c.BoardW, "physical board width")
	fs.Float64Var(&c.BoardH, "board-h", c.BoardH, "physical board height")
	fs.Float64Var(&c.CellSize, "cell-size", c.CellSize, "physical size of one cell")
	fs.IntVar(&c.Radius, "radius", c.Radius, "neighbour radius")
	fs.Float64Var(&c.SpawnProbability, "spawn", c.SpawnProbability, "spontaneous birth probability in [0,1)")
	fs.IntVar(&c.PaintRadius, "paint-radius", c.PaintRadius, "brush radius for region paints")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations (0 = every frame)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.RandomSeed, "random-seed", c.RandomSeed, "ignore -seed and seed from the clock")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to count neighbours")
}

// SimOptions renders the simulation-facing options as a factory map.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"board_w":           strconv.FormatFloat(c.BoardW, 'f', -1, 64),
		"board_h":           strconv.FormatFloat(c.BoardH, 'f', -1, 64),
		"cell_size":         strconv.FormatFloat(c.CellSize, 'f', -1, 64),
		"radius":            strconv.Itoa(c.Radius),
		"spawn_probability": strconv.FormatFloat(c.SpawnProbability, 'f', -1, 64),
		"paint_radius":      strconv.Itoa(c.PaintRadius),
		"interval":          c.Interval.String(),
		"paused":            strconv.FormatBool(c.Paused),
		"workers":           strconv.Itoa(c.Workers),
	}
	if c.RandomSeed {
		opts["use_seed"] = "false"
	} else {
		opts["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return opts
}
