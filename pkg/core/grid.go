package core

import (
	"fmt"
	"slices"
)

// Grid stores a fixed W*H matrix of live/dead cells in row-major order.
// Rows run along H and columns along W.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// At reports whether the cell at (row, col) is alive. It panics when the
// coordinates are out of range.
func (g *Grid) At(row, col int) bool {
	g.mustContain(row, col)
	return g.data[g.Index(row, col)]
}

// Set stores the state of the cell at (row, col). It panics when the
// coordinates are out of range.
func (g *Grid) Set(row, col int, alive bool) {
	g.mustContain(row, col)
	g.data[g.Index(row, col)] = alive
}

func (g *Grid) mustContain(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.W, g.H))
	}
}

// Alive counts the live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: slices.Clone(g.data)}
}

// CopyFrom overwrites g with the cells of src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.W != src.W || g.H != src.H {
		panic(fmt.Sprintf("core: copy %dx%d grid into %dx%d grid", src.W, src.H, g.W, g.H))
	}
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.W == other.W && g.H == other.H && slices.Equal(g.data, other.data)
}
