package viewer

import "ptable/core"

// Focus is the cursor over the grid. The zero value has no focus.
type Focus struct {
	pos core.Position
	set bool
}

// FocusAt returns a focus on p.
func FocusAt(p core.Position) Focus {
	return Focus{pos: p, set: true}
}

// At returns the focused cell; ok is false when nothing has focus.
func (f Focus) At() (p core.Position, ok bool) {
	return f.pos, f.set
}

// Is reports whether the focus is on p.
func (f Focus) Is(p core.Position) bool {
	return f.set && f.pos == p
}

// Move applies a directional input to the focus.
//
// Without focus, any direction focuses (0,0), whether or not that cell is
// occupied. With focus, the neighbouring cell in dir becomes focused only if
// it is inside the grid and holds an element; otherwise the input is absorbed
// and the focus stays where it was. Move reports whether the focus changed.
func (v *Viewer) Move(dir core.Direction) bool {
	cur, ok := v.focus.At()
	if !ok {
		v.focus = FocusAt(core.Position{})
		return true
	}

	next := cur.Step(dir)
	if !v.grid.Occupied(next) {
		v.logger.Debug("move blocked", "from", cur, "direction", dir.String())
		return false
	}

	v.focus = FocusAt(next)
	return true
}
