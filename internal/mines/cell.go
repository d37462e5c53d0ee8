package mines

type CellKind uint8

const (
	Empty CellKind = iota
	Mine
)

type Visibility uint8

const (
	Hidden Visibility = iota
	Revealed
	Marked
)

type Marker uint8

const (
	Flagged Marker = iota
	Questioned
)

const (
	GlyphHidden   = '□' // white square
	GlyphMine     = '●' // black circle
	GlyphFlag     = '⚑' // black flag
	GlyphQuestion = '?'
)

type Cell struct {
	kind     CellKind
	vis      Visibility
	marker   Marker
	adjacent int
}

func (c Cell) Kind() CellKind { return c.kind }

func (c Cell) Visibility() Visibility { return c.vis }

// Marker reports which mark sits on the cell. ok is false unless the cell
// is currently Marked.
func (c Cell) Marker() (m Marker, ok bool) {
	if c.vis != Marked {
		return 0, false
	}
	return c.marker, true
}

// AdjacentMines is the number of mined neighbours, 0 to 8. Counts are kept
// for mined cells too but are never displayed for them.
func (c Cell) AdjacentMines() int { return c.adjacent }

// Lone reports whether the cell is mine-free and has no mined neighbours.
// Revealing a lone cell cascades to its whole connected region.
func (c Cell) Lone() bool {
	return c.kind == Empty && c.adjacent == 0
}

// Glyph renders the cell as the player sees it.
func (c Cell) Glyph() rune {
	switch c.vis {
	case Revealed:
		if c.kind == Mine {
			return GlyphMine
		}
		return rune('0' + c.adjacent)
	case Marked:
		if c.marker == Questioned {
			return GlyphQuestion
		}
		return GlyphFlag
	default:
		return GlyphHidden
	}
}

// DebugGlyph renders the cell as if it were revealed, exposing mines and
// neighbour counts regardless of visibility.
func (c Cell) DebugGlyph() rune {
	if c.kind == Mine {
		return GlyphMine
	}
	return rune('0' + c.adjacent)
}
