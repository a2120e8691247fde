package render

import (
	"io"
	"log/slog"
	"ptable/core"
	"ptable/elements"
	"ptable/grid"
	"ptable/viewer"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(caps Capabilities) *Renderer {
	return NewRenderer(DefaultTheme().WithCapabilities(caps), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fullGrid(t *testing.T) *grid.Grid {
	t.Helper()
	entries, err := elements.LoadDefault()
	require.NoError(t, err)
	g, err := grid.Place(entries)
	require.NoError(t, err)
	return g
}

func state(g *grid.Grid, width, height int) viewer.State {
	return viewer.State{Grid: g, Mode: viewer.ModeNormal, Width: width, Height: height}
}

func TestRender_TooSmall(t *testing.T) {
	r := testRenderer(ForceUnicode())
	g := fullGrid(t)

	tests := []struct {
		name          string
		width, height int
	}{
		{"narrow", 215, 54},
		{"short", 216, 53},
		{"tiny", 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.Render(state(g, tt.width, tt.height))
			require.NoError(t, err)

			w, h := c.Size()
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.height, h)

			out := c.String()
			assert.Contains(t, out, "insufficient dimensions")
			assert.NotContains(t, out, "Hydrogen")
		})
	}
}

func TestRender_DimensionMessage(t *testing.T) {
	r := testRenderer(ForceUnicode())
	c, err := r.Render(state(fullGrid(t), 100, 20))
	require.NoError(t, err)

	assert.Equal(t,
		"insufficient dimensions: is 100x20 but should be at least 216x54",
		strings.TrimSpace(c.Line(9)))
}

func TestRender_ZeroSurface(t *testing.T) {
	r := testRenderer(ForceUnicode())
	c, err := r.Render(state(fullGrid(t), 0, 0))
	require.NoError(t, err)
	w, h := c.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestRender_Table(t *testing.T) {
	r := testRenderer(ForceUnicode())
	c, err := r.Render(state(fullGrid(t), viewer.MinWidth, viewer.MinHeight))
	require.NoError(t, err)

	// Hydrogen at the top-left corner
	assert.Equal(t, "╭──────────╮", c.Line(0)[:len("╭──────────╮")])
	assert.Equal(t, '1', c.Get(1, 1).Ch)
	assert.Equal(t, 'H', c.Get(5, 2).Ch)
	assert.Contains(t, c.Line(3), "Hydrogen")
	assert.Contains(t, c.Line(4), "1.007")

	// Helium in the last column
	assert.Equal(t, '╭', c.Get(17*viewer.MinCellWidth, 0).Ch)
	assert.Equal(t, 'H', c.Get(17*viewer.MinCellWidth+5, 2).Ch)
	assert.Equal(t, 'e', c.Get(17*viewer.MinCellWidth+6, 2).Ch)

	// Empty cells stay blank, and no info block without focus
	assert.Equal(t, ' ', c.Get(2*viewer.MinCellWidth, 0).Ch)
	assert.Equal(t, ' ', c.Get(2*viewer.MinCellWidth, 5*viewer.MinCellHeight).Ch)

	// Actinide row
	assert.Contains(t, c.Line(8*viewer.MinCellHeight+3), "Actinium")
	assert.Contains(t, c.Line(8*viewer.MinCellHeight+3), "Lawrencium")
}

func TestRender_Centered(t *testing.T) {
	r := testRenderer(ForceUnicode())
	c, err := r.Render(state(fullGrid(t), viewer.MinWidth+15, viewer.MinHeight+6))
	require.NoError(t, err)

	origin := TableOrigin(viewer.MinWidth+15, viewer.MinHeight+6)
	assert.Equal(t, core.Position{Row: 3, Col: 7}, origin)
	assert.Equal(t, '╭', c.Get(7, 3).Ch)
	assert.Equal(t, ' ', c.Get(6, 3).Ch)
}

func TestRender_Focus(t *testing.T) {
	r := testRenderer(ForceUnicode())
	g := fullGrid(t)
	fe := core.Position{Row: 3, Col: 7}

	s := state(g, viewer.MinWidth, viewer.MinHeight)
	s.Focus = viewer.FocusAt(fe)

	c, err := r.Render(s)
	require.NoError(t, err)

	cell := CellRect(core.Position{}, fe)
	assert.Equal(t, '╔', c.Get(cell.X, cell.Y).Ch)
	assert.Equal(t, 'F', c.Get(cell.X+5, cell.Y+2).Ch)
	assert.Equal(t, r.Theme().Focused(core.ClassTransitionMetal), c.Get(cell.X+1, cell.Y+1).Style)

	// Unfocused neighbour keeps the rounded border
	assert.Equal(t, '╭', c.Get(cell.X+viewer.MinCellWidth, cell.Y).Ch)

	info := InfoRect(core.Position{})
	assert.Equal(t, '╭', c.Get(info.X, info.Y).Ch)
	out := c.String()
	assert.Contains(t, out, "Fe  Iron")
	assert.Contains(t, out, "Atomic number:  26")
	assert.Contains(t, out, "Classification: Transition Metal")
	assert.Contains(t, out, "Atomic mass:    55.845")
	assert.Contains(t, out, "Phase:          solid")
}

func TestRender_FocusOnEmptyCell(t *testing.T) {
	r := testRenderer(ForceUnicode())
	s := state(fullGrid(t), viewer.MinWidth, viewer.MinHeight)
	s.Focus = viewer.FocusAt(core.Position{Row: 0, Col: 1})

	c, err := r.Render(s)
	require.NoError(t, err)
	assert.NotContains(t, c.String(), "Atomic number:")
}

func TestRender_Confirming(t *testing.T) {
	r := testRenderer(ForceUnicode())
	s := state(fullGrid(t), viewer.MinWidth, viewer.MinHeight)
	s.Mode = viewer.ModeConfirmExit
	s.Focus = viewer.FocusAt(core.Position{})

	c, err := r.Render(s)
	require.NoError(t, err)

	out := c.String()
	assert.Contains(t, c.Line(viewer.MinHeight/2-1), ConfirmExitText)
	assert.NotContains(t, out, "Hydrogen")
}

func TestRender_ASCII(t *testing.T) {
	r := testRenderer(ForceASCII())
	s := state(fullGrid(t), viewer.MinWidth, viewer.MinHeight)
	s.Focus = viewer.FocusAt(core.Position{})

	c, err := r.Render(s)
	require.NoError(t, err)

	assert.Equal(t, "+----------+", c.Line(0)[:12])
	assert.Equal(t, tcell.StyleDefault.Reverse(true), c.Get(1, 1).Style)
	assert.NotContains(t, c.String(), "╭")
	assert.NotContains(t, c.String(), "╔")
}

func TestRender_NilGrid(t *testing.T) {
	r := testRenderer(ForceUnicode())
	c, err := r.Render(state(nil, viewer.MinWidth, viewer.MinHeight))
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(c.String()))
}

func TestRender_DimensionMessageWraps(t *testing.T) {
	r := testRenderer(ForceUnicode())
	c, err := r.Render(state(fullGrid(t), 24, 9))
	require.NoError(t, err)

	assert.Equal(t, "insufficient dimensions:", c.Line(3))
	assert.Equal(t, "is 24x9 but should be at", c.Line(4))
	assert.Equal(t, "      least 216x54", c.Line(5))
}
