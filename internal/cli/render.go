package cli

import (
	"strings"

	"github.com/strohs/minesweeper/internal/mines"
)

// Rows renders the board one glyph per cell, as the player sees it.
func Rows(b *mines.Board) []string {
	return rows(b, false)
}

// DebugRows renders the board with every mine and neighbour count exposed.
func DebugRows(b *mines.Board) []string {
	return rows(b, true)
}

func rows(b *mines.Board, debug bool) []string {
	nrows, ncols := b.Dimensions()
	out := make([]string, nrows)
	for row := range nrows {
		var sb strings.Builder
		for col := range ncols {
			cell, _ := b.CellAt(row, col)
			if col > 0 {
				sb.WriteByte(' ')
			}
			if debug {
				sb.WriteRune(cell.DebugGlyph())
			} else {
				sb.WriteRune(cell.Glyph())
			}
		}
		out[row] = sb.String()
	}
	return out
}

// Render joins [Rows] into a printable grid.
func Render(b *mines.Board) string {
	return strings.Join(Rows(b), "\n") + "\n"
}

// DebugRender joins [DebugRows] into a printable grid.
func DebugRender(b *mines.Board) string {
	return strings.Join(DebugRows(b), "\n") + "\n"
}
