package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	ParamTypeInt      ParamType = "int"
	ParamTypeFloat    ParamType = "float"
	ParamTypeBool     ParamType = "bool"
	ParamTypeDuration ParamType = "duration"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterProvider is implemented by sims that expose a snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// AdjustIntParameter shifts the integer parameter key by delta on sims that
// both expose and accept it. It returns the value after the call and whether
// the setter accepted the change.
func AdjustIntParameter(sim any, key string, delta int) (int, bool) {
	provider, ok := sim.(ParameterProvider)
	if !ok {
		return 0, false
	}
	setter, ok := sim.(IntParameterSetter)
	if !ok {
		return 0, false
	}
	p, ok := provider.Parameters().Lookup(key)
	if !ok || p.Type != ParamTypeInt {
		return 0, false
	}
	current, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	if !setter.SetIntParameter(key, current+delta) {
		return current, false
	}
	return current + delta, true
}
