//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/internal/core"
)

// GridPainter keeps an offscreen image with one pixel per cell and draws it
// scaled. The image follows the board when its shape changes.
type GridPainter struct {
	palette Palette
	size    core.Size
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter returns a painter using palette. The image is allocated on
// the first Blit.
func NewGridPainter(palette Palette) *GridPainter {
	return &GridPainter{palette: palette}
}

func (gp *GridPainter) resize(size core.Size) {
	gp.img = nil
	gp.size = size
	gp.buf = make([]byte, 4*size.W*size.H)
	if size.W > 0 && size.H > 0 {
		gp.img = ebiten.NewImage(size.W, size.H)
	}
}

// Blit renders the sim's cells onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	size := sim.Size()
	if size != gp.size || (gp.img == nil && size.W > 0 && size.H > 0) {
		gp.resize(size)
	}
	cells := sim.Cells()
	if gp.img == nil || len(cells) != size.W*size.H {
		return
	}
	gp.palette.Fill(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, &op)
}

// Size returns the shape the image was last allocated for.
func (gp *GridPainter) Size() core.Size { return gp.size }
