package canvas

import (
	"errors"
	"ptable/core"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// continuation marks the second column of a wide character.
const continuation = '\x00'

// Cell is one character of the canvas with its style.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// MatrixCanvas is a styled character matrix with box and text primitives.
//
// MatrixCanvas is NOT thread-safe. The viewer renders a fresh canvas per
// frame from a single goroutine, so no locking is done.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells
//
// Wide characters (CJK, emoji) take two cells; the second one holds a
// continuation marker that String renders as nothing and Blit skips.
type MatrixCanvas struct {
	cells  [][]Cell
	width  int
	height int
}

// NewMatrixCanvas creates a new canvas with the specified dimensions.
func NewMatrixCanvas(width, height int) (*MatrixCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}

	return &MatrixCanvas{
		cells:  cells,
		width:  width,
		height: height,
	}, nil
}

// Size returns the width and height of the canvas.
func (c *MatrixCanvas) Size() (width, height int) {
	return c.width, c.height
}

// Bounds returns the whole canvas as a rect.
func (c *MatrixCanvas) Bounds() core.Rect {
	return core.Rect{Width: c.width, Height: c.height}
}

func (c *MatrixCanvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the cell at the given position.
// Returns a blank default cell if the position is out of bounds.
func (c *MatrixCanvas) Get(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{Ch: ' ', Style: tcell.StyleDefault}
	}
	return c.cells[y][x]
}

// Set places a character at the given position.
func (c *MatrixCanvas) Set(x, y int, ch rune, style tcell.Style) error {
	if !c.inBounds(x, y) {
		return ErrOutOfBounds
	}
	c.cells[y][x] = Cell{Ch: ch, Style: style}
	return nil
}

// Fill paints every cell of r, clipped to the canvas.
func (c *MatrixCanvas) Fill(r core.Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if c.inBounds(x, y) {
				c.cells[y][x] = Cell{Ch: ch, Style: style}
			}
		}
	}
}

// Clear resets the canvas to blank default cells.
func (c *MatrixCanvas) Clear() {
	c.Fill(c.Bounds(), ' ', tcell.StyleDefault)
}

// DrawBox draws the border of r with the given box characters.
func (c *MatrixCanvas) DrawBox(r core.Rect, box BoxStyle, style tcell.Style) error {
	if r.Width < 2 || r.Height < 2 {
		return ErrInvalidSize
	}
	if r.X < 0 || r.Y < 0 || r.X+r.Width > c.width || r.Y+r.Height > c.height {
		return ErrOutOfBounds
	}

	right := r.X + r.Width - 1
	bottom := r.Y + r.Height - 1

	// Top and bottom lines
	for x := r.X + 1; x < right; x++ {
		c.cells[r.Y][x] = Cell{Ch: box.Horizontal, Style: style}
		c.cells[bottom][x] = Cell{Ch: box.Horizontal, Style: style}
	}

	// Vertical lines
	for y := r.Y + 1; y < bottom; y++ {
		c.cells[y][r.X] = Cell{Ch: box.Vertical, Style: style}
		c.cells[y][right] = Cell{Ch: box.Vertical, Style: style}
	}

	c.cells[r.Y][r.X] = Cell{Ch: box.TopLeft, Style: style}
	c.cells[r.Y][right] = Cell{Ch: box.TopRight, Style: style}
	c.cells[bottom][r.X] = Cell{Ch: box.BottomLeft, Style: style}
	c.cells[bottom][right] = Cell{Ch: box.BottomRight, Style: style}

	return nil
}

// DrawText renders text starting at (x, y) and returns the number of
// columns written. Characters falling outside the canvas are clipped.
func (c *MatrixCanvas) DrawText(x, y int, text string, style tcell.Style) (int, error) {
	if y < 0 || y >= c.height {
		return 0, ErrOutOfBounds
	}

	currentX := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)

		// Skip zero-width characters
		if w == 0 {
			continue
		}

		// Wide character that does not fully fit
		if w == 2 && currentX+1 >= c.width {
			break
		}

		if currentX >= 0 && currentX < c.width {
			c.cells[y][currentX] = Cell{Ch: r, Style: style}
			if w == 2 {
				c.cells[y][currentX+1] = Cell{Ch: continuation, Style: style}
			}
		}

		currentX += w
		if currentX >= c.width {
			break
		}
	}

	return currentX - x, nil
}

// DrawTextCentered renders text horizontally centered in r on row y,
// truncated to fit the rect's width.
func (c *MatrixCanvas) DrawTextCentered(r core.Rect, y int, text string, style tcell.Style) error {
	text = Truncate(text, r.Width)
	x := r.X + (r.Width-StringWidth(text))/2
	_, err := c.DrawText(x, y, text, style)
	return err
}

// Blit copies the canvas onto a tcell screen at the given offset.
func (c *MatrixCanvas) Blit(screen tcell.Screen, offsetX, offsetY int) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cell := c.cells[y][x]
			if cell.Ch == continuation {
				continue
			}
			screen.SetContent(offsetX+x, offsetY+y, cell.Ch, nil, cell.Style)
		}
	}
}

// String returns the canvas as plain text, one line per row, without styles.
func (c *MatrixCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if r := c.cells[y][x].Ch; r != continuation {
				sb.WriteRune(r)
			}
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// Line returns row y as plain text with trailing spaces removed.
func (c *MatrixCanvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		if r := c.cells[y][x].Ch; r != continuation {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
