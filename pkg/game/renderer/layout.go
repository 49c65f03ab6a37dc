package renderer

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"stationhud/pkg/engine/screentext"
	"stationhud/pkg/engine/terminal"
	"stationhud/pkg/game/state"
)

// Placement is one entry mapped onto a character grid.
type Placement struct {
	Row, Col int
	Text     string // Truncated to the grid width
	Category screentext.Category
	Entry    screentext.Entry
}

// Grid maps the virtual screen onto rows x cols character cells.
type Grid struct {
	Rows, Cols                int
	ScreenWidth, ScreenHeight float64
}

// PlaceAll lays out every live entry of g, category by category in
// registration order. Each row holds at most one entry; an entry whose row is
// taken moves down to the next free row and is dropped when none is left.
func (gr Grid) PlaceAll(g *state.Game) []Placement {
	var out []Placement
	used := mapset.New[int]()
	for _, cat := range g.Screen.Categories() {
		for _, e := range g.Screen.Text(cat) {
			if p, ok := gr.place(cat, e, used); ok {
				out = append(out, p)
			}
		}
	}
	return out
}

func (gr Grid) place(cat screentext.Category, e screentext.Entry, used mapset.Set[int]) (Placement, bool) {
	if gr.Rows <= 0 || gr.Cols <= 0 {
		return Placement{}, false
	}

	row := gr.scale(e.Position.Y, gr.ScreenHeight, gr.Rows)
	for used.Has(row) {
		row++
	}
	if row >= gr.Rows {
		return Placement{}, false
	}
	used.Put(row)

	text := terminal.Truncate(e.Text, gr.Cols)
	n := terminal.VisibleLen(text)
	anchor := gr.scale(e.Position.X, gr.ScreenWidth, gr.Cols)

	var col int
	switch e.Alignment {
	case screentext.AlignCenter:
		col = terminal.CenterColumn(anchor, n)
	case screentext.AlignRight:
		col = terminal.RightColumn(anchor, n)
	default:
		col = anchor
	}
	if col+n > gr.Cols {
		col = gr.Cols - n
	}

	return Placement{Row: row, Col: col, Text: text, Category: cat, Entry: e}, true
}

// scale maps v in [0, extent) onto [0, cells).
func (gr Grid) scale(v, extent float64, cells int) int {
	if extent <= 0 {
		return 0
	}
	i := int(math.Round(v / extent * float64(cells)))
	if i < 0 {
		return 0
	}
	if i >= cells {
		return cells - 1
	}
	return i
}
