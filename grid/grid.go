// Package grid lays elements out on the fixed periodic table grid.
//
// The grid has Rows x Columns cells. Rows 0-6 are the seven periods, row 7
// holds the lanthanides and row 8 the actinides, both displaced out of their
// nominal period. A cell is either occupied by exactly one element or empty;
// empty cells are real gaps of the table (period 1 has only two elements).
package grid

import "ptable/core"

// Grid dimensions of the standard layout.
const (
	Rows    = 9
	Columns = 18
)

// Rows of the displaced f-block.
const (
	LanthanideRow = 7
	ActinideRow   = 8
)

// Atomic number ranges of the f-block rows.
const (
	LanthanideFirst = 57
	LanthanideLast  = 71
	ActinideFirst   = 89
	ActinideLast    = 103
)

// Grid is a dense Rows x Columns matrix of optional elements.
// Its dimensions never change, and occupancy is fixed once Place returns.
type Grid struct {
	cells [Rows][Columns]*core.Element
	count int
}

// Size returns the number of rows and columns.
func (g *Grid) Size() (rows, cols int) {
	return Rows, Columns
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p core.Position) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Columns
}

// Get returns the element at p. ok is false for empty or out of bounds cells.
func (g *Grid) Get(p core.Position) (el core.Element, ok bool) {
	if !g.InBounds(p) {
		return core.Element{}, false
	}
	cell := g.cells[p.Row][p.Col]
	if cell == nil {
		return core.Element{}, false
	}
	return *cell, true
}

// Occupied reports whether p is in bounds and holds an element.
func (g *Grid) Occupied(p core.Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] != nil
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	return g.count
}

// Each calls fn for every occupied cell in row-major order.
func (g *Grid) Each(fn func(p core.Position, el core.Element)) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if cell := g.cells[r][c]; cell != nil {
				fn(core.Position{Row: r, Col: c}, *cell)
			}
		}
	}
}

// Find returns the position of the element with the given atomic number.
func (g *Grid) Find(number int) (core.Position, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if cell := g.cells[r][c]; cell != nil && cell.Number() == number {
				return core.Position{Row: r, Col: c}, true
			}
		}
	}
	return core.Position{}, false
}

// set stores el at p, refusing to overwrite an occupied cell.
func (g *Grid) set(p core.Position, el core.Element) error {
	if !g.InBounds(p) {
		return &PlacementError{Kind: Unplaceable, Symbol: el.Symbol(), Row: p.Row, Col: p.Col}
	}
	if g.cells[p.Row][p.Col] != nil {
		return &PlacementError{Kind: Collision, Symbol: el.Symbol(), Row: p.Row, Col: p.Col}
	}
	stored := el
	g.cells[p.Row][p.Col] = &stored
	g.count++
	return nil
}
