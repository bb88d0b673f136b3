// Package tui provides the Bubble Tea front-end for gridsnake.
// It maps terminal input to session events and draws each frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// rate in ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
