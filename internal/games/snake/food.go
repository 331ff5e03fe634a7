package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by Relocate when the snake covers every cell.
var ErrBoardFull = errors.New("snake: no free cell left for food")

// maxRelocateAttempts bounds rejection sampling before falling back to
// enumerating free cells.
const maxRelocateAttempts = 64

// Food is the single food cell on the grid.
type Food struct {
	position Cell
	grid     core.Rect
	rng      *rand.Rand
}

// NewFood creates food at a random cell of the grid.
func NewFood(grid core.Rect, rng *rand.Rand) *Food {
	f := &Food{grid: grid, rng: rng}
	f.position = f.GeneratePosition()
	return f
}

// Position returns the food cell.
func (f *Food) Position() Cell {
	return f.position
}

// GeneratePosition returns a uniformly random cell of the grid.
func (f *Food) GeneratePosition() Cell {
	return Cell{
		X: f.grid.X + f.rng.Intn(f.grid.W),
		Y: f.grid.Y + f.rng.Intn(f.grid.H),
	}
}

// Relocate moves the food to a random cell not covered by body.
// The position is left unchanged and ErrBoardFull returned when no such
// cell exists.
func (f *Food) Relocate(body []Cell) error {
	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		if f.grid.ContainsPoint(c) {
			occupied[c] = struct{}{}
		}
	}
	if len(occupied) >= f.grid.Area() {
		return ErrBoardFull
	}

	for range maxRelocateAttempts {
		p := f.GeneratePosition()
		if _, taken := occupied[p]; !taken {
			f.position = p
			return nil
		}
	}

	// Crowded board: draw directly from the free cells.
	free := make([]Cell, 0, f.grid.Area()-len(occupied))
	for y := f.grid.Y; y < f.grid.Bottom(); y++ {
		for x := f.grid.X; x < f.grid.Right(); x++ {
			p := Cell{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	f.position = free[f.rng.Intn(len(free))]
	return nil
}
