package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is one grid position.
type Cell = core.Point

// InitialLength is the number of segments after a reset.
const InitialLength = 3

// Snake holds the body path, the heading and the growth debt.
// The body is ordered head first.
type Snake struct {
	body        []Cell
	direction   Direction
	growPending int // Ticks on which the tail is kept
}

// NewSnake creates a snake in its starting position on the grid.
func NewSnake(grid core.Rect) *Snake {
	s := &Snake{}
	s.Reset(grid)
	return s
}

// Reset places a three-segment horizontal snake at the grid center,
// heading right.
func (s *Snake) Reset(grid core.Rect) {
	c := grid.Center()
	s.body = make([]Cell, 0, InitialLength)
	for i := range InitialLength {
		s.body = append(s.body, Cell{X: c.X - i, Y: c.Y})
	}
	s.direction = Right
	s.growPending = 0
}

// Move advances the head one cell along the heading. The tail is dropped
// unless growth is pending, in which case one unit of debt is spent.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.direction.Vector())
	s.body = append([]Cell{newHead}, s.body...)

	if s.growPending > 0 {
		s.growPending--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// ChangeDirection sets the heading for the next move. Reversing into
// the neck is ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// CheckCollision reports whether the head left the grid or overlaps the body.
func (s *Snake) CheckCollision(grid core.Rect) bool {
	head := s.Head()
	if !grid.ContainsPoint(head) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// EatFood schedules one segment of growth.
func (s *Snake) EatFood() {
	s.growPending++
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// GrowPending returns the outstanding growth debt.
func (s *Snake) GrowPending() int {
	return s.growPending
}
