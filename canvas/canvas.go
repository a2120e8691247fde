// Package canvas provides a styled 2D character grid for rendering the table.
package canvas

// BoxStyle defines the characters used to draw a box.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Predefined box styles
var (
	// DefaultBoxStyle uses rounded corners
	DefaultBoxStyle = BoxStyle{
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Horizontal:  '─',
		Vertical:    '│',
	}

	// SimpleBoxStyle uses ASCII characters
	SimpleBoxStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
	}

	// DoubleBoxStyle uses double-line characters
	DoubleBoxStyle = BoxStyle{
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	}
)

// BoxStyleByName returns a predefined box style: "rounded", "ascii" or "double".
func BoxStyleByName(name string) (BoxStyle, bool) {
	switch name {
	case "", "rounded":
		return DefaultBoxStyle, true
	case "ascii":
		return SimpleBoxStyle, true
	case "double":
		return DoubleBoxStyle, true
	}
	return BoxStyle{}, false
}
