package mines

import "github.com/gammazero/deque"

// RevealCell opens the cell at (row, col), clearing any mark it carried.
// Opening a mine loses the game. Opening a lone cell opens its whole
// connected lone region plus the numbered fringe around it. Opening an
// already revealed cell does nothing.
func (b *Board) RevealCell(row, col int) error {
	i, err := b.checkBounds(row, col)
	if err != nil {
		return err
	}
	if b.cells[i].vis == Revealed {
		return nil
	}
	b.cells[i].vis = Revealed
	if b.cells[i].Lone() {
		b.cascade(i)
	}
	return nil
}

// cascade reveals every lone cell connected to start and every neighbour of
// that region. A single pass with an explicit visited set suffices: fringe
// cells are never lone, so no traversal can continue through them, and a
// lone cell has no mined neighbours, so no mine is ever revealed here.
func (b *Board) cascade(start int) {
	var (
		visited  = make([]bool, len(b.cells))
		frontier deque.Deque[int]
	)
	visited[start] = true
	frontier.PushBack(start)
	for frontier.Len() > 0 {
		i := frontier.PopFront()
		b.cells[i].vis = Revealed
		for _, j := range b.adjacent(i) {
			if visited[j] {
				continue
			}
			visited[j] = true
			if b.cells[j].Lone() {
				frontier.PushBack(j)
			} else {
				b.cells[j].vis = Revealed
			}
		}
	}
}
