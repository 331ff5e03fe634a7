package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    36,
		GridW:      40,
		GridH:      30,
		TickRate:   12,
		FoodPoints: 10,
		Seed:       seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

// onBody reports whether c is one of the body cells.
func onBody(body []Cell, c Cell) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}

func newPlayingGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() after start = %v, expected playing", g.Phase())
	}
	return g
}

func TestStartsInMenu(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.Phase() != StateMenu {
		t.Fatalf("Phase() = %v, expected menu", g.Phase())
	}

	// Ticks and steering do nothing on the menu
	before := g.Snapshot()
	g.Step(frame(core.ActionUp))
	g.Step(frame())
	after := g.Snapshot()

	if g.Phase() != StateMenu {
		t.Errorf("Phase() = %v, expected menu", g.Phase())
	}
	if !reflect.DeepEqual(before.Body, after.Body) {
		t.Errorf("snake moved on the menu: %v -> %v", before.Body, after.Body)
	}
}

func TestStartRunsFirstTick(t *testing.T) {
	// A game with the same seed, started without a tick, shows where the
	// start frame puts the food
	twin := New()
	twin.Reset(testConfig(1))
	twin.dispatch(EventStart, core.ActionConfirm)
	if twin.snake.Head() != (Cell{X: 20, Y: 15}) {
		t.Fatalf("twin head = %v, expected (20, 15)", twin.snake.Head())
	}
	food := twin.food.Position()
	if food == (Cell{X: 21, Y: 15}) {
		t.Fatalf("seed 1 puts food on the first head cell, pick another seed")
	}

	g := newPlayingGame(t, 1)

	// The start frame is followed by one simulation tick
	snap := g.Snapshot()
	if snap.Head() != (Cell{X: 21, Y: 15}) {
		t.Errorf("Head() = %v, expected (21, 15)", snap.Head())
	}
	if snap.Food != food {
		t.Errorf("Food = %v, expected %v", snap.Food, food)
	}
	if snap.Score != 0 || snap.Length != InitialLength {
		t.Errorf("after one tick score = %d, length = %d; expected 0, %d", snap.Score, snap.Length, InitialLength)
	}
}

func TestTickHeldWhileScreenTooSmall(t *testing.T) {
	cfg := testConfig(21)
	cfg.ScreenW, cfg.ScreenH = 80, 24 // The 40x30 grid needs 42x34

	g := New()
	g.Reset(cfg)
	if g.FitsScreen() {
		t.Fatal("FitsScreen() = true on 80x24")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Phase())
	}
	for i := 0; i < 40; i++ {
		g.Step(frame())
	}
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v after ticks on a small screen, expected playing", g.Phase())
	}
	if g.snake.Head() != (Cell{X: 20, Y: 15}) {
		t.Errorf("Head() = %v, the snake should not move on a small screen", g.snake.Head())
	}

	// Input is still handled while paused
	g.Step(frame(core.ActionUp))
	if g.snake.Direction() != Up {
		t.Errorf("Direction() = %v, expected up", g.snake.Direction())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Window too small") || !strings.Contains(out, "Resize to continue") {
		t.Errorf("small screen missing the resize notice:\n%s", out)
	}

	g.Resize(80, 36)
	if !g.FitsScreen() {
		t.Fatal("FitsScreen() = false on 80x36")
	}
	g.food.position = Cell{X: 0, Y: 0}
	g.Step(frame())
	if g.snake.Head() != (Cell{X: 20, Y: 14}) {
		t.Errorf("Head() = %v after resize, expected (20, 14)", g.snake.Head())
	}
}

func TestHeadlessGameAlwaysFits(t *testing.T) {
	cfg := testConfig(22)
	cfg.ScreenW, cfg.ScreenH = 0, 0

	g := New()
	g.Reset(cfg)
	if !g.FitsScreen() {
		t.Error("a game without a screen size should always fit")
	}
}

func TestFoodNeverOnSnakeWhilePlaying(t *testing.T) {
	g := newPlayingGame(t, 99)

	turns := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}
	for i := 0; i < 400 && g.Phase() == StatePlaying; i++ {
		var f core.InputFrame
		if i%7 == 0 {
			f = frame(turns[(i/7)%len(turns)])
		}
		g.Step(f)

		if g.Phase() == StatePlaying && onBody(g.snake.Body(), g.food.Position()) {
			t.Fatalf("tick %d: food %v is on the snake %v", i, g.food.Position(), g.snake.Body())
		}
	}
}

func TestEatingScoresAndGrows(t *testing.T) {
	g := newPlayingGame(t, 2)
	g.score = 0
	g.snake.growPending = 0
	g.food.position = Cell{X: 22, Y: 15}

	g.Step(frame())
	if g.score != 10 {
		t.Fatalf("score = %d, expected 10", g.score)
	}
	if g.snake.GrowPending() != 1 {
		t.Errorf("growPending = %d, expected 1", g.snake.GrowPending())
	}
	if g.snake.Len() != InitialLength {
		t.Errorf("Len() on the eating tick = %d, expected %d", g.snake.Len(), InitialLength)
	}
	if onBody(g.snake.Body(), g.food.Position()) {
		t.Errorf("food was not relocated off the snake: %v", g.food.Position())
	}

	// Growth lands one tick later
	g.food.position = Cell{X: 0, Y: 0}
	g.Step(frame())
	if g.snake.Len() != InitialLength+1 {
		t.Errorf("Len() after growth tick = %d, expected %d", g.snake.Len(), InitialLength+1)
	}
}

func TestCustomFoodPoints(t *testing.T) {
	cfg := testConfig(2)
	cfg.FoodPoints = 25
	g := New()
	g.Reset(cfg)
	g.Step(frame(core.ActionConfirm))
	g.score = 0
	g.food.position = g.snake.Head().Add(Right.Vector())

	g.Step(frame())
	if g.score != 25 {
		t.Errorf("score = %d, expected 25", g.score)
	}
}

func TestWallCrash(t *testing.T) {
	g := newPlayingGame(t, 3)

	// Head is at x=21 after the start tick; x=40 is the first cell outside
	for i := 0; i < 18; i++ {
		g.Step(frame())
		if g.Phase() != StatePlaying {
			t.Fatalf("crashed early at step %d, head %v", i, g.snake.Head())
		}
	}

	res := g.Step(frame())
	if g.Phase() != StateGameOver {
		t.Fatalf("Phase() = %v, expected game over with head %v", g.Phase(), g.snake.Head())
	}
	if !res.State.GameOver {
		t.Error("StepResult should report game over")
	}

	// The snake is frozen after the crash
	head := g.snake.Head()
	g.Step(frame(core.ActionUp))
	if g.snake.Head() != head {
		t.Errorf("snake moved after game over: %v -> %v", head, g.snake.Head())
	}
}

func TestHighScoreUpdatedOnCrash(t *testing.T) {
	tests := []struct {
		name              string
		score, high, want int
	}{
		{"new record", 30, 20, 30},
		{"below record", 10, 30, 30},
		{"tie", 20, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newPlayingGame(t, 4)
			g.snake = &Snake{
				body:      []Cell{{X: 39, Y: 15}, {X: 38, Y: 15}, {X: 37, Y: 15}},
				direction: Right,
			}
			g.food.position = Cell{X: 0, Y: 0}
			g.score = tc.score
			g.highScore = tc.high

			res := g.Step(frame())
			if g.Phase() != StateGameOver {
				t.Fatalf("Phase() = %v, expected game over", g.Phase())
			}
			if g.highScore != tc.want {
				t.Errorf("highScore = %d, expected %d", g.highScore, tc.want)
			}
			if res.State.HighScore != tc.want {
				t.Errorf("StepResult.HighScore = %d, expected %d", res.State.HighScore, tc.want)
			}
		})
	}
}

func TestFoodCountedOnCrashTick(t *testing.T) {
	g := newPlayingGame(t, 5)
	g.score = 0
	g.highScore = 0

	// Turning left drives the head into (4,5), which is also a body cell
	g.snake = &Snake{
		body:      []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		direction: Left,
	}
	g.food.position = Cell{X: 4, Y: 5}

	g.Step(frame())
	if g.Phase() != StateGameOver {
		t.Fatalf("Phase() = %v, expected game over", g.Phase())
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected the food on the crash tick to count", g.score)
	}
	if g.snake.GrowPending() != 1 {
		t.Errorf("growPending = %d, expected 1", g.snake.GrowPending())
	}
	if g.highScore != 10 {
		t.Errorf("highScore = %d, expected 10", g.highScore)
	}
}

func TestSteeringDuringPlay(t *testing.T) {
	g := newPlayingGame(t, 6)
	g.food.position = Cell{X: 0, Y: 0}

	g.Step(frame(core.ActionUp))
	if g.snake.Head() != (Cell{X: 21, Y: 14}) {
		t.Errorf("Head() = %v, expected (21, 14)", g.snake.Head())
	}
}

func TestActionsApplyInArrivalOrder(t *testing.T) {
	g := newPlayingGame(t, 6)
	g.food.position = Cell{X: 0, Y: 0}

	// Left is rejected against the rightward heading; Up then applies
	g.Step(frame(core.ActionLeft, core.ActionUp))
	if g.snake.Direction() != Up {
		t.Errorf("Direction() = %v, expected up", g.snake.Direction())
	}
	if g.snake.Head() != (Cell{X: 21, Y: 14}) {
		t.Errorf("Head() = %v, expected (21, 14)", g.snake.Head())
	}
}

func TestCancelReturnsToMenu(t *testing.T) {
	g := newPlayingGame(t, 7)
	head := g.snake.Head()

	g.Step(frame(core.ActionBack))
	if g.Phase() != StateMenu {
		t.Fatalf("Phase() = %v, expected menu", g.Phase())
	}
	if g.snake.Head() != head {
		t.Errorf("no tick should run after leaving to the menu: %v -> %v", head, g.snake.Head())
	}
	if g.State().Quit {
		t.Error("cancel during play must not quit")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name   string
		prep   []core.Action
		action core.Action
	}{
		{"escape on menu", nil, core.ActionBack},
		{"quit on menu", nil, core.ActionQuit},
		{"quit while playing", []core.Action{core.ActionConfirm}, core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			g.Reset(testConfig(8))
			if len(tc.prep) > 0 {
				g.Step(frame(tc.prep...))
			}

			// Actions after the quit are not processed
			res := g.Step(frame(tc.action, core.ActionConfirm))
			if !res.State.Quit {
				t.Error("StepResult should report quit")
			}
			if len(tc.prep) == 0 && g.Phase() != StateMenu {
				t.Errorf("Phase() = %v, expected menu", g.Phase())
			}
		})
	}
}

func TestRestartKeepsHighScore(t *testing.T) {
	g := newPlayingGame(t, 9)
	g.snake = &Snake{
		body:      []Cell{{X: 39, Y: 15}, {X: 38, Y: 15}, {X: 37, Y: 15}},
		direction: Right,
	}
	g.food.position = Cell{X: 0, Y: 0}
	g.score = 40
	g.Step(frame())

	snap := g.Snapshot()
	if !snap.NewHighScore {
		t.Error("NewHighScore should be set after beating the record")
	}
	if snap.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, expected 1", snap.GamesPlayed)
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Fatalf("Phase() = %v, expected playing", g.Phase())
	}
	if g.highScore != 40 {
		t.Errorf("highScore = %d, expected 40 to survive a restart", g.highScore)
	}
	if g.snake.Len() != InitialLength || g.snake.Direction() != Right {
		t.Errorf("snake not reset: len=%d dir=%v", g.snake.Len(), g.snake.Direction())
	}
	if g.score > 10 {
		t.Errorf("score = %d, expected a fresh score", g.score)
	}

	// Back to the menu and in again from there
	g.Step(frame(core.ActionBack))
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlaying || g.highScore != 40 {
		t.Errorf("Phase() = %v highScore = %d after menu round trip", g.Phase(), g.highScore)
	}
}

func TestBoardFull(t *testing.T) {
	cfg := testConfig(10)
	cfg.GridW, cfg.GridH = 4, 2
	g := New()
	g.Reset(cfg)
	g.state = StatePlaying

	// Seven of eight cells covered, one growth pending, food on the last cell
	g.snake = &Snake{
		body: []Cell{
			{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 2, Y: 1},
		},
		direction:   Right,
		growPending: 1,
	}
	g.food.position = Cell{X: 1, Y: 1}

	res := g.Step(frame())
	if g.Phase() != StateBoardFull {
		t.Fatalf("Phase() = %v, expected board full", g.Phase())
	}
	if !res.State.GameOver {
		t.Error("board full should end the game")
	}
	if g.snake.Len() != 8 {
		t.Errorf("Len() = %d, expected 8", g.snake.Len())
	}
	if g.highScore != 10 {
		t.Errorf("highScore = %d, expected 10", g.highScore)
	}
	if g.Snapshot().HasFood {
		t.Error("no food should be shown on a full board")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Errorf("Phase() = %v, expected playing after restart", g.Phase())
	}
	if g.highScore != 10 {
		t.Errorf("highScore = %d, expected 10", g.highScore)
	}
}

func TestResetNormalizesGrid(t *testing.T) {
	cfg := testConfig(11)
	cfg.GridW, cfg.GridH = 1, 0
	cfg.FoodPoints = 0

	g := New()
	g.Reset(cfg)
	if g.Grid().W != MinGridWidth || g.Grid().H != MinGridHeight {
		t.Errorf("Grid() = %dx%d, expected %dx%d", g.Grid().W, g.Grid().H, MinGridWidth, MinGridHeight)
	}
	if g.foodPoints != DefaultFoodPoints {
		t.Errorf("foodPoints = %d, expected %d", g.foodPoints, DefaultFoodPoints)
	}

	// The starting body fits the smallest grid
	for _, c := range g.snake.Body() {
		if !g.Grid().ContainsPoint(c) {
			t.Errorf("segment %v outside the grid", c)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	script := map[int]core.Action{
		0:  core.ActionConfirm,
		5:  core.ActionDown,
		12: core.ActionLeft,
		20: core.ActionUp,
		31: core.ActionRight,
	}

	for i := 0; i < 150; i++ {
		var f core.InputFrame
		if a, ok := script[i]; ok {
			f = frame(a)
		}
		g1.Step(f)
		g2.Step(f)

		if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
			t.Fatalf("tick %d: snapshots diverged:\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}
}

func TestSnapshotIsReadOnly(t *testing.T) {
	g := newPlayingGame(t, 13)
	snap := g.Snapshot()
	snap.Body[0] = Cell{X: -1, Y: -1}

	if g.snake.Head() == (Cell{X: -1, Y: -1}) {
		t.Error("mutating a snapshot changed the game")
	}
	if snap.Length != g.snake.Len() {
		t.Errorf("Length = %d, expected %d", snap.Length, g.snake.Len())
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newPlayingGame(t, 14)
	g.food.position = Cell{X: 0, Y: 0}

	screen := core.NewScreen(80, 36)
	g.Render(screen)

	// 42-wide box centered on 80 columns starts at x=19; cells start at (20, 3)
	head := g.snake.Head()
	if got := screen.Get(20+head.X, 3+head.Y); got != glyphHead {
		t.Errorf("head glyph = %q, expected %q", got, glyphHead)
	}
	if got := screen.GetCell(20+head.X, 3+head.Y).Color; got != core.ColorBrightYellow {
		t.Errorf("head color = %v, expected bright yellow", got)
	}
	if got := screen.Get(20+head.X-1, 3+head.Y); got != glyphBody {
		t.Errorf("body glyph = %q, expected %q", got, glyphBody)
	}
	if got := screen.Get(20, 3); got != glyphFood {
		t.Errorf("food glyph = %q, expected %q", got, glyphFood)
	}
	if got := screen.Get(19, 2); got != '┌' {
		t.Errorf("border corner = %q, expected '┌'", got)
	}
	if hud := strings.Split(screen.String(), "\n")[0]; !strings.Contains(hud, "Length: 3") {
		t.Errorf("HUD = %q, expected the snake length", hud)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newPlayingGame(t, 15)

	screen := core.NewScreen(30, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small notice")
	}
}

func TestRenderMenuAndGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(16))

	screen := core.NewScreen(80, 36)
	g.Render(screen)
	if !strings.Contains(screen.String(), "SNAKE GAME") || !strings.Contains(screen.String(), "High Score: 0") {
		t.Errorf("menu screen missing title or high score:\n%s", screen.String())
	}

	g.Step(frame(core.ActionConfirm))
	g.snake = &Snake{
		body:      []Cell{{X: 39, Y: 15}, {X: 38, Y: 15}, {X: 37, Y: 15}},
		direction: Right,
	}
	g.food.position = Cell{X: 0, Y: 0}
	g.score = 20
	g.Step(frame())

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "Final Score: 20", "NEW HIGH SCORE!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}
