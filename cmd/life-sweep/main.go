package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"torus-life/internal/sims/life"

	"gonum.org/v1/gonum/stat"
)

type paramSet struct {
	radius int
	spawn  float64
	seed   int64
}

type scenarioResult struct {
	params   paramSet
	mean     float64
	stddev   float64
	final    int
	cells    int
	err      error
	duration time.Duration
}

func (p paramSet) String() string {
	return fmt.Sprintf("radius=%d spawn=%.4f seed=%d", p.radius, p.spawn, p.seed)
}

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Float64("width", 128, "physical board width; cells across = width / cell-size")
	height := flag.Float64("height", 128, "physical board height; cells down = height / cell-size")
	cellSize := flag.Float64("cell-size", 1, "physical edge length of one cell")
	seeds := flag.Int("seeds", 3, "seeds per parameter set")
	radii := flag.String("radii", "1,2,3", "comma separated neighbour radii")
	spawns := flag.String("spawns", "0,0.001,0.01,0.05", "comma separated spawn probabilities")
	flag.Parse()

	radiusOptions, err := parseInts(*radii)
	if err != nil {
		log.Fatalf("-radii: %v", err)
	}
	spawnOptions, err := parseFloats(*spawns)
	if err != nil {
		log.Fatalf("-spawns: %v", err)
	}

	base := life.DefaultConfig()
	base.BoardWidth = *width
	base.BoardHeight = *height
	base.CellSize = *cellSize
	base.UseSeed = true
	if err := base.Validate(); err != nil {
		log.Fatalf("board: %v", err)
	}

	var sets []paramSet
	for _, r := range radiusOptions {
		for _, s := range spawnOptions {
			for seed := 0; seed < *seeds; seed++ {
				sets = append(sets, paramSet{radius: r, spawn: s, seed: int64(seed + 1)})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].params, all[j].params
		if a.radius != b.radius {
			return a.radius < b.radius
		}
		if a.spawn != b.spawn {
			return a.spawn < b.spawn
		}
		return a.seed < b.seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		density := 0.0
		if res.cells > 0 {
			density = float64(res.final) / float64(res.cells)
		}
		fmt.Printf("%s  mean=%.1f sd=%.1f final=%d density=%.3f (%s)\n",
			res.params, res.mean, res.stddev, res.final, density, res.duration.Round(time.Millisecond))
	}
}

func runScenario(base life.Config, params paramSet, steps int) scenarioResult {
	cfg := base
	cfg.Radius = params.radius
	cfg.SpawnProbability = params.spawn
	cfg.Seed = params.seed

	started := time.Now()
	sim, err := life.New(cfg)
	if err != nil {
		return scenarioResult{params: params, err: err}
	}

	population := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		sim.Step()
		population = append(population, float64(sim.Population()))
	}

	res := scenarioResult{
		params:   params,
		final:    sim.Population(),
		cells:    len(sim.Cells()),
		duration: time.Since(started),
	}
	if len(population) > 0 {
		res.mean, res.stddev = stat.MeanStdDev(population, nil)
	}
	return res
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
