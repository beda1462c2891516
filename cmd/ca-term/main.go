package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/core"
	"torus-life/internal/sims/life"
	"torus-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BoardW, cfg.BoardH = 40, 24
	cfg.Interval = 150 * time.Millisecond
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file (default: discard)")
	fps := flag.Int("fps", 30, "screen refresh rate")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	if cfg.RandomSeed {
		cfg.Seed = core.EntropySeed()
		cfg.RandomSeed = false
	}

	sim, err := life.New(life.FromMap(cfg.SimOptions()))
	if err != nil {
		log.Fatalf("configure life: %v", err)
	}
	logger.Printf("life: %dx%d cells, seed %d", sim.Size().W, sim.Size().H, cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame := time.Second / 30
	if *fps > 0 {
		frame = time.Second / time.Duration(*fps)
	}
	session := term.NewSession(screen, sim, cfg.Interval, cfg.Seed, logger)
	err = session.Run(ctx, frame)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
