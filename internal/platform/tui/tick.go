// Package tui provides the Bubble Tea integration for fledge.
// It handles the terminal UI loop, input mapping, suspend/resume signals,
// and rendering of simulation snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock timestamp of one frame. The simulation's
// clock turns consecutive timestamps into bounded dt steps.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
