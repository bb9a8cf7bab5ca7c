// Package tui provides the Bubble Tea integration for Pollo Run.
// It handles the terminal UI loop, input mapping, and the help footer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to step and redraw the game once.
type FrameMsg time.Time

// frameCmd schedules the next frame one interval from now. The interval
// only paces rendering; the game converts it into fixed simulation ticks.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
