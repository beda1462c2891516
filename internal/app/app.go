//go:build ebiten

package app

import (
	"image/color"
	"log"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim      core.Sim
	painter  *render.GridPainter
	hud      *ui.HUD
	interval *core.Interval

	scale int
	seed  int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(render.NewPalette(color.Black, color.White)),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		interval: core.NewInterval(cfg.Interval),
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	driver, hasDriver := g.sim.(core.Driver)
	if hasDriver {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if driver.Paused() {
				driver.Resume()
			} else {
				driver.Pause()
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			driver.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(core.EntropySeed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.logCellUnderCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		g.adjustPaintRadius(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		g.adjustPaintRadius(1)
	}

	g.paint()

	if g.interval.ShouldStep() {
		if hasDriver {
			driver.Tick()
		} else {
			g.sim.Step()
		}
	}

	g.hud.Update()
	return nil
}

func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	return render.PickCell(mx, my, g.scale, size.W, size.H)
}

func (g *Game) paint() {
	painter, ok := g.sim.(core.Painter)
	if !ok {
		return
	}
	erase := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	mode, alive, pressed := core.ResolvePaint(
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		erase,
	)
	if !pressed {
		return
	}
	x, y, inside := g.cursorCell()
	if !inside {
		return
	}
	painter.PaintAt(x, y, mode, alive)
}

func (g *Game) logCellUnderCursor() {
	describer, ok := g.sim.(core.CellDescriber)
	if !ok {
		return
	}
	x, y, inside := g.cursorCell()
	if !inside {
		log.Printf("cursor is outside the board")
		return
	}
	log.Print(describer.DescribeCell(x, y))
}

func (g *Game) adjustPaintRadius(delta int) {
	if r, ok := core.AdjustIntParameter(g.sim, "paint_radius", delta); ok {
		log.Printf("paint radius %d", r)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
