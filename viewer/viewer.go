// Package viewer holds the interactive state of the periodic table: the
// placed grid, the focus cursor and the exit confirmation.
//
// All state lives in one Viewer value updated synchronously by HandleKey;
// renderers only read State snapshots.
package viewer

import (
	"log/slog"
	"ptable/core"
	"ptable/grid"
)

// Viewer is the application state aggregate.
type Viewer struct {
	grid   *grid.Grid
	focus  Focus
	mode   Mode
	logger *slog.Logger

	// Terminal state
	width  int
	height int
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithFocus starts the viewer focused on p.
func WithFocus(p core.Position) Option {
	return func(v *Viewer) {
		v.focus = FocusAt(p)
	}
}

// New creates a viewer over a placed grid.
func New(g *grid.Grid, opts ...Option) *Viewer {
	v := &Viewer{
		grid:   g,
		mode:   ModeNormal,
		logger: slog.Default(),
		width:  MinWidth,
		height: MinHeight,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// HandleKey processes one classified input event and reports whether the
// application should terminate.
//
// A quit key in normal mode asks for confirmation; a quit key while
// confirming terminates. Other keys never reset a pending confirmation, and
// directional keys keep moving the focus in either mode.
func (v *Viewer) HandleKey(k Key) bool {
	v.logger.Debug("key", "key", k.String(), "mode", v.mode.String())

	if k == KeyQuit {
		if v.mode == ModeConfirmExit {
			return true
		}
		v.mode = ModeConfirmExit
		return false
	}

	if dir, ok := k.Direction(); ok {
		v.Move(dir)
	}
	return false
}

// Grid returns the placed grid.
func (v *Viewer) Grid() *grid.Grid {
	return v.grid
}

// Focus returns the current focus.
func (v *Viewer) Focus() Focus {
	return v.focus
}

// Mode returns the exit-confirmation mode.
func (v *Viewer) Mode() Mode {
	return v.mode
}

// SetSize updates the rendering surface dimensions.
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Size returns the rendering surface dimensions.
func (v *Viewer) Size() (width, height int) {
	return v.width, v.height
}

// State is a read-only snapshot handed to renderers each frame.
type State struct {
	Grid   *grid.Grid
	Focus  Focus
	Mode   Mode
	Width  int
	Height int
}

// Focused returns the focused element, if the focus is on an occupied cell.
func (s State) Focused() (core.Element, bool) {
	p, ok := s.Focus.At()
	if !ok || s.Grid == nil {
		return core.Element{}, false
	}
	return s.Grid.Get(p)
}

// Confirming reports whether the exit prompt should be shown.
func (s State) Confirming() bool {
	return s.Mode == ModeConfirmExit
}

// GetState extracts the current state for stateless rendering
func (v *Viewer) GetState() State {
	return State{
		Grid:   v.grid,
		Focus:  v.focus,
		Mode:   v.mode,
		Width:  v.width,
		Height: v.height,
	}
}
