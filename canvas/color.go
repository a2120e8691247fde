package canvas

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ANSI style codes
const (
	ColorReset   = "\033[0m"
	StyleBold    = "1"
	StyleDim     = "2"
	StyleReverse = "7"
)

// sgr returns the escape sequence selecting style, or "" for the default style.
func sgr(style tcell.Style) string {
	if style == tcell.StyleDefault {
		return ""
	}
	fg, bg, attrs := style.Decompose()

	var codes []string
	if attrs&tcell.AttrBold != 0 {
		codes = append(codes, StyleBold)
	}
	if attrs&tcell.AttrDim != 0 {
		codes = append(codes, StyleDim)
	}
	if attrs&tcell.AttrReverse != 0 {
		codes = append(codes, StyleReverse)
	}
	if r, g, b := fg.RGB(); fg != tcell.ColorDefault && r >= 0 {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", r, g, b))
	}
	if r, g, b := bg.RGB(); bg != tcell.ColorDefault && r >= 0 {
		codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", r, g, b))
	}
	if len(codes) == 0 {
		return ""
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}

// ColoredString returns the canvas as a string with ANSI escape sequences
// reproducing each cell's style in 24-bit color.
func (c *MatrixCanvas) ColoredString() string {
	var sb strings.Builder

	for y := 0; y < c.height; y++ {
		current := ""
		for x := 0; x < c.width; x++ {
			cell := c.cells[y][x]
			if cell.Ch == continuation {
				continue
			}

			// Change color if needed
			if code := sgr(cell.Style); code != current {
				if current != "" {
					sb.WriteString(ColorReset)
				}
				sb.WriteString(code)
				current = code
			}
			sb.WriteRune(cell.Ch)
		}

		// Reset color at end of line if needed
		if current != "" {
			sb.WriteString(ColorReset)
		}

		// Add newline except for last line
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}
