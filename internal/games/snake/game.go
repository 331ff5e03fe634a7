// Package snake implements the classic single-player Snake game: a snake
// moves on a fixed grid, eats food to grow and dies on walls or itself.
package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid limits. The starting body spans three cells left of the center,
// so the grid must be at least four cells wide.
const (
	MinGridWidth  = 4
	MinGridHeight = 1
)

// DefaultFoodPoints is the score for one food when the config has none.
const DefaultFoodPoints = 10

// Game is the context of one run: the live snake and food, the score,
// the best score so far and the current screen. Nothing is global; two
// Games never share state.
type Game struct {
	rng        *rand.Rand
	grid       core.Rect
	foodPoints int
	tick       uint64

	// Screen the game is drawn on; zero means headless
	screenW int
	screenH int

	snake *Snake
	food  *Food
	state State

	score     int
	highScore int
	played    int // Finished games this run
	quit      bool
}

// New creates a Snake game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh run on the menu screen. The high score is cleared;
// restarting from the game over screen keeps it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = core.NewRect(0, 0, max(cfg.GridW, MinGridWidth), max(cfg.GridH, MinGridHeight))
	g.foodPoints = cfg.FoodPoints
	if g.foodPoints <= 0 {
		g.foodPoints = DefaultFoodPoints
	}
	g.tick = 0
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH
	g.snake = NewSnake(g.grid)
	g.food = NewFood(g.grid, g.rng)
	g.state = StateMenu
	g.score = 0
	g.highScore = 0
	g.played = 0
	g.quit = false
}

// Resize records the size of the screen the game is drawn on. The game
// state is kept.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW, g.screenH = screenW, screenH
}

// FitsScreen reports whether the playfield fits the current screen.
// A game without a screen size always fits.
func (g *Game) FitsScreen() bool {
	if g.screenW <= 0 && g.screenH <= 0 {
		return true
	}
	reqW, reqH := RequiredScreen(g.grid.W, g.grid.H)
	return g.screenW >= reqW && g.screenH >= reqH
}

// Step handles the frame's actions in arrival order, then runs one
// simulation tick if a game is in progress. The tick is held back while
// the playfield does not fit the screen.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range input.Actions() {
		if g.quit {
			break
		}
		g.dispatch(EventFor(a), a)
	}

	if !g.quit && g.state == StatePlaying && g.FitsScreen() {
		g.dispatch(EventTick, core.ActionNone)
	}

	return core.StepResult{State: g.State()}
}

// dispatch runs one transition and its command.
func (g *Game) dispatch(e Event, a core.Action) {
	if e == EventNone {
		return
	}

	next, cmd := Transition(g.state, e)
	g.state = next

	switch cmd {
	case CmdTerminate:
		g.quit = true
	case CmdNewGame:
		g.startNewGame()
	case CmdSteer:
		if d, ok := DirectionFor(a); ok {
			g.snake.ChangeDirection(d)
		}
	case CmdSimulate:
		g.dispatch(g.simulate(), core.ActionNone)
	case CmdEndGame:
		g.endGame()
	}
}

// startNewGame resets the snake and food and zeroes the score.
func (g *Game) startNewGame() {
	g.snake.Reset(g.grid)
	g.score = 0
	if errors.Is(g.food.Relocate(g.snake.body), ErrBoardFull) {
		g.dispatch(EventBoardFull, core.ActionNone)
	}
}

// simulate advances one tick and returns the event it produced, if any.
// Food is checked before collision, so a crash on the eating tick still
// counts the food.
func (g *Game) simulate() Event {
	g.snake.Move()

	full := false
	if g.snake.Head() == g.food.Position() {
		g.snake.EatFood()
		g.score += g.foodPoints
		full = errors.Is(g.food.Relocate(g.snake.body), ErrBoardFull)
	}

	switch {
	case g.snake.CheckCollision(g.grid):
		return EventCrash
	case full:
		return EventBoardFull
	}
	return EventNone
}

// endGame records the finished game.
func (g *Game) endGame() {
	g.played++
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.state.Ended(),
		Quit:      g.quit,
	}
}

// Phase returns the state machine's current state.
func (g *Game) Phase() State {
	return g.state
}

// Grid returns the playfield bounds.
func (g *Game) Grid() core.Rect {
	return g.grid
}
