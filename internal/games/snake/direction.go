package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction is a unit step on the grid. Only the four values below exist;
// the fields are unexported so callers cannot build diagonal headings.
type Direction struct {
	dx, dy int
}

// The four headings. Y grows downwards.
var (
	Up    = Direction{dx: 0, dy: -1}
	Down  = Direction{dx: 0, dy: 1}
	Left  = Direction{dx: -1, dy: 0}
	Right = Direction{dx: 1, dy: 0}
)

// Vector returns the cell offset of one step in this direction.
func (d Direction) Vector() core.Point {
	return core.Point{X: d.dx, Y: d.dy}
}

// Opposite returns the reverse heading. It is vector negation, so
// d.Opposite().Opposite() == d for every direction.
func (d Direction) Opposite() Direction {
	v := d.Vector().Neg()
	return Direction{dx: v.X, dy: v.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a steering action to a heading.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return Direction{}, false
}
