package mines

// FlagCell puts a flag on the cell at (row, col), replacing a question mark
// if one is there. Revealed cells are left alone.
func (b *Board) FlagCell(row, col int) error {
	return b.mark(row, col, Flagged)
}

// QuestionCell puts a question mark on the cell at (row, col), replacing a
// flag if one is there. Revealed cells are left alone.
func (b *Board) QuestionCell(row, col int) error {
	return b.mark(row, col, Questioned)
}

func (b *Board) mark(row, col int, m Marker) error {
	i, err := b.checkBounds(row, col)
	if err != nil {
		return err
	}
	if b.cells[i].vis == Revealed {
		return nil
	}
	b.cells[i].vis = Marked
	b.cells[i].marker = m
	return nil
}

// UnmarkCell clears any mark from the cell at (row, col), returning it to
// hidden. Revealed cells are left alone.
func (b *Board) UnmarkCell(row, col int) error {
	i, err := b.checkBounds(row, col)
	if err != nil {
		return err
	}
	if b.cells[i].vis == Revealed {
		return nil
	}
	b.cells[i].vis = Hidden
	return nil
}

// ToggleMark flips the cell at (row, col) between hidden and marked with m.
// A cell carrying either mark toggles back to hidden; a hidden cell takes
// the mark; a revealed cell is left alone.
func (b *Board) ToggleMark(row, col int, m Marker) error {
	i, err := b.checkBounds(row, col)
	if err != nil {
		return err
	}
	switch b.cells[i].vis {
	case Revealed:
	case Marked:
		b.cells[i].vis = Hidden
	default:
		b.cells[i].vis = Marked
		b.cells[i].marker = m
	}
	return nil
}
