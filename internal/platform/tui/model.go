// Package tui provides the Bubble Tea frontend for the snake game.
// It owns the tick clock, maps keys to actions, renders snapshots and
// records finished games in the session scoreboard.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// scoreboardHint is drawn at the bottom of the menu when a store is attached.
const scoreboardHint = "TAB: scoreboard"

// sessionBestFormat shows the best score of every player this run.
const sessionBestFormat = "Session best: %d"

// Model is the Bubble Tea model for one snake run.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	phase      snake.State
	saved      int // Finished games already written to the store
	best       int // Best stored score, all players
	scores     *ScoreboardModel
	quitting   bool
}

// NewModel creates a model with a fresh game on the menu screen.
// store and logger may be nil.
func NewModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = "player"
	}

	game := snake.New()
	game.Reset(cfg)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		phase:      game.Phase(),
	}
	m.refreshBest()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("run started", "game", m.game.Title(), "player", m.player, "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. The scoreboard
// takes every key while it is open. It only opens with no actions
// pending, so keys pressed just before Tab are not lost.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScoreboard(msg)
	}

	switch msg.String() {
	case "tab":
		if m.phase == snake.StateMenu && m.store != nil && m.inputFrame.Len() == 0 {
			sb := NewScoreboardModel(m.store, m.player, m.config.ScreenW, m.config.ScreenH)
			m.scores = &sb
		}
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// updateScoreboard forwards a message to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scores.Update(msg)
	switch {
	case sb.IsQuitting():
		m.scores = nil
		m.quitting = true
		return m, tea.Quit
	case sb.Closed():
		m.scores = nil
		m.refreshBest()
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// handleResize tracks the terminal size. The grid stays fixed; the game
// holds its clock while the playfield does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	if m.scores != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick runs one game step with the actions gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The game is paused while the scoreboard is open
	if m.scores != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if phase := m.game.Phase(); phase != m.phase {
		m.logger.Debug("state changed", "from", m.phase, "to", phase, "score", result.State.Score)
		m.phase = phase
		if phase == snake.StateMenu {
			// Other sessions may have finished games meanwhile
			m.refreshBest()
		}
	}
	m.recordResult()

	if result.State.Quit {
		m.logger.Debug("run ended", "player", m.player, "high_score", result.State.HighScore)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult saves the game that just finished, once.
func (m *Model) recordResult() {
	snap := m.game.Snapshot()
	if snap.GamesPlayed <= m.saved {
		return
	}
	m.saved = snap.GamesPlayed

	m.logger.Info("game finished",
		"player", m.player,
		"outcome", snap.State,
		"score", snap.Score,
		"length", snap.Length,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Player:  m.player,
		Score:   snap.Score,
		Length:  snap.Length,
		Outcome: snap.State.String(),
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.refreshBest()
}

// refreshBest reloads the best stored score.
func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not load session best", "error", err)
		return
	}
	m.best = best
}

// saveScreenshot writes the current screen to ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	if m.phase == snake.StateMenu && m.store != nil {
		footer := scoreboardHint + "   " + fmt.Sprintf(sessionBestFormat, m.best)
		m.screen.DrawTextCentered(m.screen.Height()-1, footer, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Game exposes the running game, mainly for tests.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts a local Bubble Tea program on the current terminal.
func Run(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewModel(store, logger, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
