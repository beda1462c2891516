//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// StatusProvider is implemented by sims that report driver state.
type StatusProvider interface {
	Generation() int
	Population() int
	Paused() bool
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	lines []Line
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached rows from the simulation.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	var st Status
	if sp, ok := h.sim.(StatusProvider); ok {
		st = Status{Generation: sp.Generation(), Population: sp.Population(), Paused: sp.Paused()}
	}
	var snap core.ParameterSnapshot
	if pp, ok := h.sim.(core.ParameterProvider); ok {
		snap = pp.Parameters()
	}
	h.lines = BuildLines(h.sim.Name(), st, snap)
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		if y > height {
			break
		}
		if line.Header {
			y += lineHeight / 2
			text.Draw(h.panel, line.Label, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
			y += lineHeight
			continue
		}
		text.Draw(h.panel, line.Label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		bounds := text.BoundString(face, line.Value)
		valueX := h.width - panelPadding - bounds.Dx()
		text.Draw(h.panel, line.Value, face, valueX, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
