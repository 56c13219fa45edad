// Package tui provides the Bubble Tea frontend for the game.
// The pixel playfield is scaled onto the terminal and redrawn every tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one interval after now.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval returns the duration of one tick at rate ticks per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(rate)
}
