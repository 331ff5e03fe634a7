package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the playfield.
const hudHeight = 2

// Glyphs for the playfield.
const (
	glyphHead = '@'
	glyphBody = 'o'
	glyphFood = '*'
)

// RequiredScreen returns the smallest screen that fits the playfield,
// its border and the HUD.
func RequiredScreen(gridW, gridH int) (w, h int) {
	return gridW + 2, gridH + 2 + hudHeight
}

// RenderSnapshot draws a snapshot to the screen.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	switch snap.State {
	case StateMenu:
		renderMenu(dst, snap)
	case StatePlaying:
		renderPlayfield(dst, snap)
	case StateGameOver:
		renderEnd(dst, snap, "GAME OVER", core.ColorRed)
	case StateBoardFull:
		renderEnd(dst, snap, "BOARD FULL - YOU WIN!", core.ColorBrightGreen)
	}
}

func renderMenu(dst *core.Screen, snap Snapshot) {
	h := dst.Height()
	dst.DrawTextCentered(h/3, "SNAKE GAME", core.ColorBrightGreen)
	dst.DrawTextCentered(h/2, "Press SPACE to Start", core.ColorWhite)
	dst.DrawTextCentered(h/2+2, "Use ARROW KEYS or WASD to move", core.ColorWhite)
	dst.DrawTextCentered(h/2+4, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorYellow)
	dst.DrawTextCentered(h-3, "Press ESC to Quit", core.ColorWhite)
}

func renderEnd(dst *core.Screen, snap Snapshot, title string, color core.Color) {
	h := dst.Height()
	dst.DrawTextCentered(h/3, title, color)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Final Score: %d", snap.Score), core.ColorWhite)
	if snap.NewHighScore {
		dst.DrawTextCentered(h/2+2, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}
	dst.DrawTextCentered(h/2+4, "Press SPACE to Play Again", core.ColorWhite)
	dst.DrawTextCentered(h/2+6, "Press ESC for Menu", core.ColorWhite)
}

func renderPlayfield(dst *core.Screen, snap Snapshot) {
	reqW, reqH := RequiredScreen(snap.GridW, snap.GridH)
	if dst.Width() < reqW || dst.Height() < reqH {
		h := dst.Height()
		dst.DrawTextCentered(h/2-1, "Window too small", core.ColorRed)
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d, have %dx%d", reqW, reqH, dst.Width(), dst.Height()), core.ColorWhite)
		dst.DrawTextCentered(h/2+3, "Resize to continue", core.ColorGray)
		return
	}

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d   Length: %d   High: %d", snap.Score, snap.Length, snap.HighScore))
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)

	// Border around the grid; cell (x, y) is drawn at origin + (x, y)
	box := core.NewRect((dst.Width()-reqW)/2, hudHeight, reqW, snap.GridH+2)
	dst.DrawBox(box, core.ColorGray)
	origin := core.Point{X: box.X + 1, Y: box.Y + 1}

	if snap.HasFood {
		p := origin.Add(snap.Food)
		dst.SetColored(p.X, p.Y, glyphFood, core.ColorRed)
	}

	// Tail first so the head wins on overlap
	for i := len(snap.Body) - 1; i >= 0; i-- {
		seg := snap.Body[i]
		if seg.X < 0 || seg.X >= snap.GridW || seg.Y < 0 || seg.Y >= snap.GridH {
			continue
		}
		p := origin.Add(seg)
		if i == 0 {
			dst.SetColored(p.X, p.Y, glyphHead, core.ColorBrightYellow)
		} else {
			dst.SetColored(p.X, p.Y, glyphBody, core.ColorGreen)
		}
	}
}
