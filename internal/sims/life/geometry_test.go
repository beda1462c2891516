package life

import (
	"errors"
	"math"
	"testing"
)

func TestComputeShapeTruncates(t *testing.T) {
	w, h, err := ComputeShape(10.9, 7.2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 5 || h != 3 {
		t.Fatalf("got %dx%d, want 5x3", w, h)
	}
}

func TestComputeShapeZeroBoard(t *testing.T) {
	w, h, err := ComputeShape(0, 4, 1)
	if err != nil {
		t.Fatalf("zero-width board must be valid: %v", err)
	}
	if w != 0 || h != 4 {
		t.Fatalf("got %dx%d, want 0x4", w, h)
	}
}

func TestComputeShapeRejectsBadInput(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	cases := []struct {
		name           string
		boardW, boardH float64
		cellSize       float64
		want           error
	}{
		{"cell size 0", 10, 10, 0, ErrInvalidCellSize},
		{"negative cell size", 10, 10, -1, ErrInvalidCellSize},
		{"NaN cell size", 10, 10, nan, ErrInvalidCellSize},
		{"infinite cell size", 10, 10, inf, ErrInvalidCellSize},
		{"negative board", -1, 10, 1, ErrNegativeBoard},
		{"NaN board", nan, 10, 1, ErrNegativeBoard},
		{"infinite board", 10, inf, 1, ErrNegativeBoard},
		{"oversized board", 1 << 33, 1 << 31, 1, ErrBoardTooLarge},
		{"oversized axis", MaxCells + 1, 1, 1, ErrBoardTooLarge},
		{"tiny cell size", 1, 1, 1e-300, ErrBoardTooLarge},
	}
	for _, tc := range cases {
		if _, _, err := ComputeShape(tc.boardW, tc.boardH, tc.cellSize); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestComputeShapeAtCellLimit(t *testing.T) {
	w, h, err := ComputeShape(1<<13, 1<<13, 1)
	if err != nil {
		t.Fatalf("board of exactly MaxCells must be valid: %v", err)
	}
	if w*h != MaxCells {
		t.Fatalf("got %dx%d, want %d cells", w, h, MaxCells)
	}
}

func TestCellCenterOrientation(t *testing.T) {
	px, py := CellCenter(0, 0, 2, 10, 6)
	if px != -4 || py != 2 {
		t.Fatalf("cell (0,0) centre = (%v,%v), want (-4,2)", px, py)
	}
	px, py = CellCenter(4, 2, 2, 10, 6)
	if px != 4 || py != -2 {
		t.Fatalf("cell (4,2) centre = (%v,%v), want (4,-2)", px, py)
	}
}
