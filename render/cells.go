package render

import (
	"fmt"
	"ptable/canvas"
	"ptable/core"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Renderable is a piece of the screen that draws itself into an area.
type Renderable interface {
	Draw(c *canvas.MatrixCanvas, area core.Rect) error
}

// ElementCell draws one element as a bordered box:
//
//	╭──────────╮
//	│26        │
//	│    Fe    │
//	│   Iron   │
//	│  55.845  │
//	╰──────────╯
type ElementCell struct {
	Element core.Element
	Focused bool
	Theme   Theme
}

func (e ElementCell) Draw(c *canvas.MatrixCanvas, area core.Rect) error {
	class := e.Element.Classification()
	box, border, text, symbol := e.Theme.Box, e.Theme.CellBorder(class), e.Theme.Text, e.Theme.Symbol(class)
	if e.Focused {
		focus := e.Theme.Focused(class)
		c.Fill(area, ' ', focus)
		box, border, text, symbol = e.Theme.FocusBox, focus, focus, focus.Bold(true)
	}

	if err := c.DrawBox(area, box, border); err != nil {
		return err
	}

	inner := area.Inner()
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{e.Element.Symbol(), symbol},
		{e.Element.Name(), text},
		{e.Element.Details().AtomicMass, text},
	}

	if _, err := c.DrawText(inner.X, inner.Y, strconv.Itoa(e.Element.Number()), text); err != nil {
		return err
	}
	for i, line := range lines {
		y := inner.Y + 1 + i
		if y >= inner.Y+inner.Height {
			break
		}
		if err := c.DrawTextCentered(inner, y, line.text, line.style); err != nil {
			return err
		}
	}
	return nil
}

// InfoBlock describes the focused element in a larger box.
type InfoBlock struct {
	Element  core.Element
	Position core.Position
	Theme    Theme
}

func (b InfoBlock) Draw(c *canvas.MatrixCanvas, area core.Rect) error {
	class := b.Element.Classification()
	if err := c.DrawBox(area, b.Theme.Box, b.Theme.Border); err != nil {
		return err
	}

	inner := area.Inner()
	x := inner.X + 1
	width := inner.Width - 2

	title := fmt.Sprintf("%s  %s", b.Element.Symbol(), b.Element.Name())
	if _, err := c.DrawText(x, inner.Y, canvas.Truncate(title, width), b.Theme.Symbol(class)); err != nil {
		return err
	}

	d := b.Element.Details()
	rows := [][2]string{
		{"Atomic number", strconv.Itoa(b.Element.Number())},
		{"Classification", class.String()},
		{"Atomic mass", orDash(d.AtomicMass)},
		{"Phase", orDash(d.Phase)},
		{"Cell", fmt.Sprintf("row %d, column %d", b.Position.Row+1, b.Position.Col+1)},
	}
	for i, row := range rows {
		y := inner.Y + 2 + i
		if y >= inner.Y+inner.Height {
			break
		}
		line := canvas.Pad(row[0]+":", 16) + row[1]
		if _, err := c.DrawText(x, y, canvas.Truncate(line, width), b.Theme.Text); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Message draws text centered in its area, wrapped at word boundaries when
// wider than the area. It is used for the exit prompt and the dimension
// error.
type Message struct {
	Text  string
	Style tcell.Style
}

// ConfirmExitText is shown while an exit confirmation is pending.
const ConfirmExitText = "press q again to confirm exit"

func (m Message) Draw(c *canvas.MatrixCanvas, area core.Rect) error {
	lines := canvas.WrapText(m.Text, area.Width)
	block := area.CenterRow(len(lines))
	for i := 0; i < block.Height; i++ {
		if err := c.DrawTextCentered(block, block.Y+i, lines[i], m.Style); err != nil {
			return err
		}
	}
	return nil
}
