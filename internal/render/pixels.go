package render

import "image/color"

// Palette holds the premultiplied RGBA bytes for live and dead cells.
type Palette struct {
	Alive [4]byte
	Dead  [4]byte
}

// NewPalette converts a pair of colours into pixel bytes once so that frames
// only copy.
func NewPalette(alive, dead color.Color) Palette {
	return Palette{Alive: rgbaBytes(alive), Dead: rgbaBytes(dead)}
}

func rgbaBytes(c color.Color) [4]byte {
	px := color.RGBAModel.Convert(c).(color.RGBA)
	return [4]byte{px.R, px.G, px.B, px.A}
}

// Fill writes one pixel per cell into buf, which must hold 4*len(cells) bytes.
func (p Palette) Fill(buf []byte, cells []uint8) {
	for i, c := range cells {
		px := &p.Dead
		if c != 0 {
			px = &p.Alive
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
