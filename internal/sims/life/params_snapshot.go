package life

import (
	"strconv"

	"torus-life/internal/core"
)

func (l *Life) Parameters() core.ParameterSnapshot {
	cfg := l.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				floatParam("board_w", "Board width", cfg.BoardWidth),
				floatParam("board_h", "Board height", cfg.BoardHeight),
				floatParam("cell_size", "Cell size", cfg.CellSize),
				intParam("w", "Columns", l.w),
				intParam("h", "Rows", l.h),
				int64Param("seed", "Seed", l.seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("radius", "Neighbour radius", cfg.Radius),
				floatParam("spawn_probability", "Spawn probability", cfg.SpawnProbability),
				intParam("workers", "Count workers", cfg.Workers),
			},
		},
		{
			Name: "Editing",
			Params: []core.Parameter{
				intParam("paint_radius", "Paint radius", cfg.PaintRadius),
			},
		},
		{
			Name: "Driver",
			Params: []core.Parameter{
				{Key: "interval", Label: "Tick interval", Type: core.ParamTypeDuration, Value: cfg.Interval.String()},
				boolParam("paused", "Paused", l.paused),
				intParam("generation", "Generation", l.generation),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
