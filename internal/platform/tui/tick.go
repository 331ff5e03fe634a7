package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the runtime config carries no rate.
const defaultTickRate = 12

// TickMsg drives one game step.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to the wait between ticks.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg. Bubble Tea ticks fire once, so every
// handled tick schedules its successor.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
