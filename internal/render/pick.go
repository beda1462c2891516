package render

// PickCell maps a screen position to a cell on a w*h grid drawn at the given
// integer scale from the origin. ok is false when the position falls outside
// the grid.
func PickCell(sx, sy, scale, w, h int) (x, y int, ok bool) {
	if scale <= 0 || sx < 0 || sy < 0 {
		return 0, 0, false
	}
	x, y = sx/scale, sy/scale
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}
