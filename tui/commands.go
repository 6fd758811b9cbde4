package tui

import (
	"context"
	"time"

	"message-dispatch/dispatch"

	tea "github.com/charmbracelet/bubbletea"
)

// DispatchResultMsg carries the outcome of one transmission attempt
type DispatchResultMsg struct {
	Attempt *dispatch.Attempt
	Err     error
	Latency time.Duration
}

// dispatchCmd runs the attempt off the update loop. The attempt applies its
// own timeout, so the background context is enough here.
func dispatchCmd(attempt *dispatch.Attempt) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := attempt.Run(context.Background())
		return DispatchResultMsg{
			Attempt: attempt,
			Err:     err,
			Latency: time.Since(start),
		}
	}
}
