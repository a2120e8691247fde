package viewer

import (
	"fmt"
	"ptable/grid"
)

// Smallest area, in character cells, an element needs including its border.
const (
	MinCellWidth  = 12
	MinCellHeight = 6
)

// Minimum surface size for the whole table.
const (
	MinWidth  = grid.Columns * MinCellWidth
	MinHeight = grid.Rows * MinCellHeight
)

// DimensionError reports a rendering surface too small for the table.
type DimensionError struct {
	Width, Height       int
	MinWidth, MinHeight int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("insufficient dimensions: is %dx%d but should be at least %dx%d",
		e.Width, e.Height, e.MinWidth, e.MinHeight)
}

// CheckDimensions reports whether a width x height surface can hold the table.
// It has no side effects and is meant to run before every render pass.
func CheckDimensions(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return &DimensionError{Width: width, Height: height, MinWidth: MinWidth, MinHeight: MinHeight}
	}
	return nil
}
