package grid

import (
	"errors"
	"fmt"
	"ptable/core"
	"ptable/elements"
)

// Sentinel errors selecting the kind of a PlacementError with errors.Is.
var (
	ErrUnplaceable = errors.New("element has no cell")
	ErrCollision   = errors.New("cell already occupied")
)

// PlacementKind classifies a PlacementError.
type PlacementKind int

const (
	Unplaceable PlacementKind = iota
	Collision
)

// PlacementError reports an element that could not be put on the grid.
type PlacementError struct {
	Kind     PlacementKind
	Symbol   string
	Row, Col int
}

func (e *PlacementError) Error() string {
	switch e.Kind {
	case Collision:
		return fmt.Sprintf("placement collision at row %d column %d (element %s)", e.Row, e.Col, e.Symbol)
	default:
		return fmt.Sprintf("element %s cannot be placed on the grid", e.Symbol)
	}
}

// Is matches the sentinel for the error's kind.
func (e *PlacementError) Is(target error) bool {
	switch target {
	case ErrUnplaceable:
		return e.Kind == Unplaceable
	case ErrCollision:
		return e.Kind == Collision
	}
	return false
}

// Locate computes the cell of an element from its atomic number, period and
// group (0 = none):
//
//   - 57-71 go to the lanthanide row, column number-57
//   - 89-103 go to the actinide row, column number-89
//   - otherwise an explicit group gives (period-1, group-1)
//
// Anything else has no deterministic cell and ok is false.
func Locate(number, period, group int) (p core.Position, ok bool) {
	switch {
	case number >= LanthanideFirst && number <= LanthanideLast:
		return core.Position{Row: LanthanideRow, Col: number - LanthanideFirst}, true
	case number >= ActinideFirst && number <= ActinideLast:
		return core.Position{Row: ActinideRow, Col: number - ActinideFirst}, true
	case group > 0 && period > 0:
		return core.Position{Row: period - 1, Col: group - 1}, true
	}
	return core.Position{}, false
}

// Place builds a populated grid from loaded entries.
// An entry without a cell fails with Unplaceable rather than being dropped,
// and two entries mapping to the same cell fail with Collision.
func Place(entries []elements.Entry) (*Grid, error) {
	g := &Grid{}
	for _, entry := range entries {
		el := entry.Element
		p, ok := Locate(el.Number(), entry.Period, entry.Group)
		if !ok {
			return nil, &PlacementError{Kind: Unplaceable, Symbol: el.Symbol()}
		}
		if err := g.set(p, el); err != nil {
			return nil, err
		}
	}
	return g, nil
}
