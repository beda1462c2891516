package ui

import (
	"fmt"

	"torus-life/internal/core"
)

// Line is one row of HUD text. Headers are drawn without a value column.
type Line struct {
	Label  string
	Value  string
	Header bool
}

// Status carries driver state that is not part of the parameter snapshot.
type Status struct {
	Generation int
	Population int
	Paused     bool
}

// BuildLines flattens a parameter snapshot into HUD rows, status first.
func BuildLines(title string, st Status, snap core.ParameterSnapshot) []Line {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []Line{
		{Label: title, Header: true},
		{Label: "State", Value: state},
		{Label: "Generation", Value: fmt.Sprint(st.Generation)},
		{Label: "Population", Value: fmt.Sprint(st.Population)},
	}
	for _, g := range snap.Groups {
		lines = append(lines, Line{Label: g.Name, Header: true})
		for _, p := range g.Params {
			// generation and paused are already in the status rows
			if p.Key == "generation" || p.Key == "paused" {
				continue
			}
			lines = append(lines, Line{Label: p.Label, Value: p.Value})
		}
	}
	return lines
}
