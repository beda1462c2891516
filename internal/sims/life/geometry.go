package life

import (
	"fmt"
	"math"
)

// MaxCells bounds the number of cells a board may hold.
const MaxCells = 1 << 26

func validCellSize(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// NaN fails v >= 0.
func validExtent(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// ComputeShape converts a physical board extent into a cell count by
// truncating boardSize/cellSize on each axis.
func ComputeShape(boardW, boardH, cellSize float64) (w, h int, err error) {
	if !validCellSize(cellSize) {
		return 0, 0, fmt.Errorf("cell size %v: %w", cellSize, ErrInvalidCellSize)
	}
	if !validExtent(boardW) || !validExtent(boardH) {
		return 0, 0, fmt.Errorf("board %vx%v: %w", boardW, boardH, ErrNegativeBoard)
	}
	// Compare in float space so the int conversion below cannot overflow.
	fw, fh := math.Floor(boardW/cellSize), math.Floor(boardH/cellSize)
	if fw > MaxCells || fh > MaxCells || fw*fh > MaxCells {
		return 0, 0, fmt.Errorf("board %vx%v at cell size %v: %w", boardW, boardH, cellSize, ErrBoardTooLarge)
	}
	return int(fw), int(fh), nil
}

// CellCenter returns the physical centre of cell (x, y) for a board centred on
// the origin. Cell (0,0) sits at the top-left corner, so physical y decreases
// as the row index grows.
func CellCenter(x, y int, cellSize, boardW, boardH float64) (px, py float64) {
	px = float64(x)*cellSize - boardW/2 + cellSize/2
	py = -float64(y)*cellSize + boardH/2 - cellSize/2
	return px, py
}
