package ui

import (
	"testing"

	"torus-life/internal/core"
)

func TestBuildLinesSkipsStatusParams(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Driver",
		Params: []core.Parameter{
			{Key: "interval", Label: "Tick interval", Value: "1s"},
			{Key: "paused", Label: "Paused", Value: "true"},
			{Key: "generation", Label: "Generation", Value: "4"},
		},
	}}}
	lines := BuildLines("life", Status{Generation: 4, Population: 17, Paused: true}, snap)

	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %+v", len(lines), lines)
	}
	if !lines[0].Header || lines[0].Label != "life" {
		t.Fatalf("unexpected title line %+v", lines[0])
	}
	if lines[1].Value != "paused" || lines[3].Value != "17" {
		t.Fatalf("unexpected status lines %+v", lines[1:4])
	}
	if last := lines[5]; last.Label != "Tick interval" || last.Value != "1s" {
		t.Fatalf("unexpected parameter line %+v", last)
	}
}
