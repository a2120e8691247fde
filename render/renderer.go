package render

import (
	"fmt"
	"log/slog"
	"ptable/canvas"
	"ptable/core"
	"ptable/viewer"
)

// The information block covers grid columns 3-12 of periods 1 and 2, which
// hold no elements.
const (
	infoCol  = 2
	infoCols = 10
	infoRows = 2
)

// Renderer turns a viewer.State into a canvas. It keeps no per-frame state,
// so the same Renderer can draw any number of states.
type Renderer struct {
	theme  Theme
	logger *slog.Logger
}

// NewRenderer creates a renderer using the given theme.
func NewRenderer(theme Theme, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{theme: theme, logger: logger}
}

// Theme returns the renderer's theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Render draws the state onto a canvas sized to the state's surface.
//
// A surface smaller than the table gets only the dimension error. A pending
// exit confirmation replaces the table with the prompt. Otherwise the table
// is drawn centered, with the focused element highlighted and described in
// the information block.
func (r *Renderer) Render(state viewer.State) (*canvas.MatrixCanvas, error) {
	c, err := canvas.NewMatrixCanvas(max(state.Width, 1), max(state.Height, 1))
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	bounds := c.Bounds()

	if err := viewer.CheckDimensions(state.Width, state.Height); err != nil {
		r.logger.Debug("surface too small", "width", state.Width, "height", state.Height)
		return c, Message{Text: err.Error(), Style: r.theme.Error}.Draw(c, bounds)
	}

	if state.Confirming() {
		return c, Message{Text: ConfirmExitText, Style: r.theme.Prompt}.Draw(c, bounds)
	}

	if state.Grid == nil {
		return c, nil
	}

	origin := TableOrigin(state.Width, state.Height)
	var drawErr error
	state.Grid.Each(func(p core.Position, el core.Element) {
		if drawErr != nil {
			return
		}
		cell := ElementCell{Element: el, Focused: state.Focus.Is(p), Theme: r.theme}
		if err := cell.Draw(c, CellRect(origin, p)); err != nil {
			drawErr = fmt.Errorf("draw %s: %w", el, err)
		}
	})
	if drawErr != nil {
		return nil, drawErr
	}

	if el, ok := state.Focused(); ok {
		p, _ := state.Focus.At()
		info := InfoBlock{Element: el, Position: p, Theme: r.theme}
		if err := info.Draw(c, InfoRect(origin)); err != nil {
			return nil, fmt.Errorf("draw info block: %w", err)
		}
	}

	return c, nil
}

// TableOrigin returns the top-left corner of the table centered on a
// width x height surface.
func TableOrigin(width, height int) core.Position {
	return core.Position{
		Row: max((height-viewer.MinHeight)/2, 0),
		Col: max((width-viewer.MinWidth)/2, 0),
	}
}

// CellRect returns the screen area of grid cell p for a table at origin.
func CellRect(origin, p core.Position) core.Rect {
	return core.Rect{
		X:      origin.Col + p.Col*viewer.MinCellWidth,
		Y:      origin.Row + p.Row*viewer.MinCellHeight,
		Width:  viewer.MinCellWidth,
		Height: viewer.MinCellHeight,
	}
}

// InfoRect returns the screen area of the information block.
func InfoRect(origin core.Position) core.Rect {
	r := CellRect(origin, core.Position{Col: infoCol})
	r.Width = infoCols * viewer.MinCellWidth
	r.Height = infoRows * viewer.MinCellHeight
	return r
}
