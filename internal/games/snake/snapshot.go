package snake

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick         uint64
	State        State
	GridW        int
	GridH        int
	Body         []Cell // Head first
	Dir          Direction
	Food         Cell
	HasFood      bool // False once the board is full
	Score        int
	HighScore    int
	Length       int
	GamesPlayed  int
	NewHighScore bool // The last game set the current high score
}

// Snapshot returns the current game snapshot. The body is copied, so the
// caller may keep it across ticks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		State:        g.state,
		GridW:        g.grid.W,
		GridH:        g.grid.H,
		Body:         g.snake.Body(),
		Dir:          g.snake.Direction(),
		Food:         g.food.Position(),
		HasFood:      g.state != StateBoardFull,
		Score:        g.score,
		HighScore:    g.highScore,
		Length:       g.snake.Len(),
		GamesPlayed:  g.played,
		NewHighScore: g.state.Ended() && g.score > 0 && g.score == g.highScore,
	}
}

// Head returns the head cell of the captured body.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}
