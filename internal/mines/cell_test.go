package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellGlyph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell Cell
		want rune
	}{
		{"hidden", Cell{}, GlyphHidden},
		{"hidden mine", Cell{kind: Mine}, GlyphHidden},
		{"flagged", Cell{vis: Marked, marker: Flagged}, GlyphFlag},
		{"flagged mine", Cell{kind: Mine, vis: Marked, marker: Flagged}, GlyphFlag},
		{"questioned", Cell{vis: Marked, marker: Questioned}, GlyphQuestion},
		{"revealed lone", Cell{vis: Revealed}, '0'},
		{"revealed with neighbours", Cell{vis: Revealed, adjacent: 3}, '3'},
		{"revealed mine", Cell{kind: Mine, vis: Revealed}, GlyphMine},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, string(test.want), string(test.cell.Glyph()))
		})
	}
}

func TestCellDebugGlyph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell Cell
		want rune
	}{
		{"hidden mine", Cell{kind: Mine}, GlyphMine},
		{"flagged mine", Cell{kind: Mine, vis: Marked, marker: Flagged}, GlyphMine},
		{"hidden lone", Cell{}, '0'},
		{"hidden with neighbours", Cell{adjacent: 8}, '8'},
		{"questioned with neighbours", Cell{vis: Marked, marker: Questioned, adjacent: 2}, '2'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, string(test.want), string(test.cell.DebugGlyph()))
		})
	}
}

func TestCellLone(t *testing.T) {
	t.Parallel()

	assert.True(t, Cell{}.Lone())
	assert.False(t, Cell{adjacent: 1}.Lone())
	assert.False(t, Cell{kind: Mine}.Lone())
}

func TestCellMarker(t *testing.T) {
	t.Parallel()

	_, ok := Cell{}.Marker()
	assert.False(t, ok)

	_, ok = Cell{vis: Revealed}.Marker()
	assert.False(t, ok)

	m, ok := Cell{vis: Marked, marker: Questioned}.Marker()
	assert.True(t, ok)
	assert.Equal(t, Questioned, m)
}
