// Package core contains the fundamental types used throughout the ptable viewer.
package core

// Position addresses a cell of the periodic table grid.
// Row and Col are 0-based.
type Position struct {
	Row, Col int
}

// Direction represents one of the four navigation directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Step returns the position one cell away in direction d.
// The result may be out of any grid's bounds; callers check.
func (p Position) Step(d Direction) Position {
	switch d {
	case Up:
		return Position{p.Row - 1, p.Col}
	case Down:
		return Position{p.Row + 1, p.Col}
	case Left:
		return Position{p.Row, p.Col - 1}
	case Right:
		return Position{p.Row, p.Col + 1}
	default:
		return p
	}
}

// Rect represents a rectangular area of a character surface.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the rect shrunk by one cell on every side (the inside of a border).
func (r Rect) Inner() Rect {
	if r.Width < 2 || r.Height < 2 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, Width: r.Width - 2, Height: r.Height - 2}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// CenterRow returns a rect of the given height centered vertically in r.
func (r Rect) CenterRow(height int) Rect {
	if height > r.Height {
		height = r.Height
	}
	return Rect{X: r.X, Y: r.Y + (r.Height-height)/2, Width: r.Width, Height: height}
}
