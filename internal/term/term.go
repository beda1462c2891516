// Package term runs a simulation inside a terminal using tcell. Every cell is
// drawn two columns wide; the last row carries a status line.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"torus-life/internal/core"

	"github.com/gdamore/tcell/v2"
)

const cellCols = 2

// Sim is the surface the terminal frontend drives.
type Sim interface {
	core.Sim
	core.Driver
	core.Painter
	core.CellDescriber
	Generation() int
	Population() int
}

// Session binds a simulation to a tcell screen. All simulation calls happen
// on the goroutine running Run.
type Session struct {
	screen   tcell.Screen
	sim      Sim
	interval *core.Interval
	logger   *log.Logger

	seed    int64
	cursorX int
	cursorY int
	message string

	aliveStyle tcell.Style
	deadStyle  tcell.Style
	textStyle  tcell.Style
}

// NewSession prepares a session. The screen must already be initialised.
func NewSession(screen tcell.Screen, sim Sim, interval time.Duration, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		screen:     screen,
		sim:        sim,
		interval:   core.NewInterval(interval),
		logger:     logger,
		seed:       seed,
		cursorX:    -1,
		cursorY:    -1,
		aliveStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		deadStyle:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack),
		textStyle:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}
}

// Run polls input and advances the simulation at frame until ctx is done or
// the user quits.
func (s *Session) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = time.Second / 30
	}
	s.screen.EnableMouse()
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if s.handle(ev) {
				return nil
			}
			s.draw()
		case now := <-ticker.C:
			if s.interval.ShouldStepAt(now) {
				s.sim.Tick()
			}
			s.draw()
		}
	}
}

// handle applies one event and reports whether the session should end.
func (s *Session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		if s.sim.Paused() {
			s.sim.Resume()
		} else {
			s.sim.Pause()
		}
	case 'n':
		s.sim.ForceStep()
	case 'r':
		s.sim.Reset(s.seed)
	case 's':
		s.seed = core.EntropySeed()
		s.sim.Reset(s.seed)
	case 'l':
		s.describeCursor()
	case '[':
		s.adjustPaintRadius(-1)
	case ']':
		s.adjustPaintRadius(1)
	}
	return false
}

func (s *Session) adjustPaintRadius(delta int) {
	if r, ok := core.AdjustIntParameter(s.sim, "paint_radius", delta); ok {
		s.message = fmt.Sprintf("paint radius %d", r)
	}
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y, inside := s.pick(col, row)
	if inside {
		s.cursorX, s.cursorY = x, y
	}
	buttons := ev.Buttons()
	erase := ev.Modifiers()&tcell.ModCtrl != 0
	mode, alive, pressed := core.ResolvePaint(buttons&tcell.ButtonPrimary != 0, buttons&tcell.ButtonSecondary != 0, erase)
	if !pressed || !inside {
		return
	}
	s.sim.PaintAt(x, y, mode, alive)
}

func (s *Session) pick(col, row int) (int, int, bool) {
	size := s.sim.Size()
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	x, y := col/cellCols, row
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func (s *Session) describeCursor() {
	if s.cursorX < 0 {
		s.message = "no cell under cursor"
		return
	}
	s.message = s.sim.DescribeCell(s.cursorX, s.cursorY)
	s.logger.Print(s.message)
}

func (s *Session) draw() {
	size := s.sim.Size()
	cells := s.sim.Cells()
	s.screen.Clear()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			ch, style := ' ', s.deadStyle
			if cells[y*size.W+x] != 0 {
				ch, style = '█', s.aliveStyle
			}
			for c := 0; c < cellCols; c++ {
				s.screen.SetContent(x*cellCols+c, y, ch, nil, style)
			}
		}
	}
	s.drawStatus(size.H)
	s.screen.Show()
}

func (s *Session) drawStatus(row int) {
	state := "running"
	if s.sim.Paused() {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d  pop %d  %s  [space] pause [n] step [r] reset [s] reseed [l] log [q] quit",
		s.sim.Generation(), s.sim.Population(), state)
	if s.message != "" {
		line += "  | " + s.message
	}
	for i, r := range line {
		s.screen.SetContent(i, row, r, nil, s.textStyle)
	}
}
