package viewer

import "ptable/core"

// Key is an input event as classified for the viewer.
// Raw key codes are translated by the terminal layer.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

// String returns the key name for logs.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyQuit:
		return "Quit"
	default:
		return "Other"
	}
}

// Direction returns the navigation direction of a directional key.
func (k Key) Direction() (core.Direction, bool) {
	switch k {
	case KeyUp:
		return core.Up, true
	case KeyDown:
		return core.Down, true
	case KeyLeft:
		return core.Left, true
	case KeyRight:
		return core.Right, true
	}
	return 0, false
}
