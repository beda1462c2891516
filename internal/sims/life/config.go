package life

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Configuration errors reported by Validate, New and Reconfigure.
var (
	ErrInvalidCellSize         = errors.New("cell size must be positive and finite")
	ErrNegativeBoard           = errors.New("board extent must be finite and not negative")
	ErrBoardTooLarge           = fmt.Errorf("board must hold at most %d cells", MaxCells)
	ErrInvalidRadius           = errors.New("neighbour radius must not be negative")
	ErrInvalidSpawnProbability = errors.New("spawn probability must be in [0, 1)")
	ErrInvalidPaintRadius      = errors.New("paint radius must not be negative")
	ErrInvalidWorkers          = errors.New("worker count must be positive")
)

// Config controls board geometry, the generation rule and editing.
type Config struct {
	// BoardWidth and BoardHeight are the physical extent of the board.
	BoardWidth  float64
	BoardHeight float64
	CellSize    float64

	// Radius is the Chebyshev radius scanned when counting neighbours.
	Radius int
	// SpawnProbability is the chance a dead cell in the stasis band comes alive.
	SpawnProbability float64
	// PaintRadius sizes the brush used by region paints.
	PaintRadius int

	// Interval is the wall-clock time between ticks. Zero ticks every frame.
	Interval    time.Duration
	StartPaused bool

	// UseSeed selects Seed for the RNG; otherwise wall-clock entropy is used.
	UseSeed bool
	Seed    int64

	// Workers bounds the goroutines used to count neighbours during a step.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		BoardWidth:       64,
		BoardHeight:      64,
		CellSize:         1,
		Radius:           1,
		SpawnProbability: 0.01,
		PaintRadius:      4,
		Interval:         0,
		UseSeed:          true,
		Seed:             0,
		Workers:          1,
	}
}

// Validate reports every configuration error found in c.
func (c Config) Validate() error {
	var errs []error
	shapeOK := true
	if !validCellSize(c.CellSize) {
		errs = append(errs, fmt.Errorf("cell size %v: %w", c.CellSize, ErrInvalidCellSize))
		shapeOK = false
	}
	if !validExtent(c.BoardWidth) || !validExtent(c.BoardHeight) {
		errs = append(errs, fmt.Errorf("board %vx%v: %w", c.BoardWidth, c.BoardHeight, ErrNegativeBoard))
		shapeOK = false
	}
	if shapeOK {
		if _, _, err := ComputeShape(c.BoardWidth, c.BoardHeight, c.CellSize); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius %d: %w", c.Radius, ErrInvalidRadius))
	}
	if math.IsNaN(c.SpawnProbability) || c.SpawnProbability < 0 || c.SpawnProbability >= 1 {
		errs = append(errs, fmt.Errorf("spawn probability %v: %w", c.SpawnProbability, ErrInvalidSpawnProbability))
	}
	if c.PaintRadius < 0 {
		errs = append(errs, fmt.Errorf("paint radius %d: %w", c.PaintRadius, ErrInvalidPaintRadius))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidWorkers))
	}
	return errors.Join(errs...)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults; parsed values are kept as
// given so that Validate can reject them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["board_w"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BoardWidth = parsed
		}
	}
	if v, ok := cfg["board_h"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.BoardHeight = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["spawn_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.SpawnProbability = parsed
		}
	}
	if v, ok := cfg["paint_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PaintRadius = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.StartPaused = parsed
		}
	}
	if v, ok := cfg["use_seed"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.UseSeed = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
			c.UseSeed = true
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	return c
}
