// Package mines implements the minesweeper rules: a rectangular board of
// cells addressed by (row, col), uniform random mine layout, cascade reveal
// of connected mine-free regions, flag and question marks, and the win/loss
// queries. The board is a pure in-memory state machine with no I/O and no
// internal locking; callers running it from multiple goroutines must
// serialize access themselves.
package mines

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MineDensity is the fraction of cells that receive a mine, rounded to the
// nearest whole mine (half away from zero).
const MineDensity = 0.15

type Point struct {
	Row int
	Col int
}

type Board struct {
	rows  int
	cols  int
	cells []Cell // row-major, index = row*cols + col
}

// New creates a rows x cols board with every cell hidden and mines laid out
// uniformly at random using r. The board is playable as soon as New returns.
func New(rows, cols int, r *rand.Rand) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	b.layMines(r.Perm(len(b.cells))[:b.TotalMines()])
	return b, nil
}

// layMines plants a mine at every index and recounts cell neighbourhoods.
func (b *Board) layMines(indices []int) {
	for _, i := range indices {
		b.cells[i].kind = Mine
	}
	for i, c := range b.cells {
		if c.kind != Mine {
			continue
		}
		for _, j := range b.adjacent(i) {
			b.cells[j].adjacent++
		}
	}
}

// adjacent returns the indices of the up to 8 neighbours of cell i,
// clamped at the board edges.
func (b *Board) adjacent(i int) []int {
	var (
		row = i / b.cols
		col = i % b.cols
		adj = make([]int, 0, 8)
	)
	for r := max(row-1, 0); r <= min(row+1, b.rows-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, b.cols-1); c++ {
			if j := b.index(r, c); j != i {
				adj = append(adj, j)
			}
		}
	}
	return adj
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// checkBounds resolves (row, col) to a flat index or fails without touching
// any state.
func (b *Board) checkBounds(row, col int) (int, error) {
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return b.index(row, col), nil
}

func (b *Board) Dimensions() (rows, cols int) {
	return b.rows, b.cols
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

// TotalMines is the number of mines the board was laid out with.
func (b *Board) TotalMines() int {
	return int(math.Round(float64(b.rows*b.cols) * MineDensity))
}

// CellAt returns a copy of the cell at (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	i, err := b.checkBounds(row, col)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// MinePositions lists every mined cell in row-major order.
func (b *Board) MinePositions() []Point {
	pts := make([]Point, 0, b.TotalMines())
	for i, c := range b.cells {
		if c.kind == Mine {
			pts = append(pts, Point{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return pts
}

// Won reports whether every mine carries a flag. Marking safe cells neither
// helps nor hurts; only mined cells are inspected.
func (b *Board) Won() bool {
	for _, c := range b.cells {
		if c.kind == Mine && (c.vis != Marked || c.marker != Flagged) {
			return false
		}
	}
	return true
}

// Lost reports whether any mine has been revealed. Once true it stays true;
// there is no way to hide a revealed cell.
func (b *Board) Lost() bool {
	for _, c := range b.cells {
		if c.kind == Mine && c.vis == Revealed {
			return true
		}
	}
	return false
}
