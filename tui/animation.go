package tui

import (
	"time"

	"message-dispatch/overlay"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per animation frame while the overlay is active
type FrameMsg time.Time

// OverlayCompleteMsg is sent when the overlay countdown expires
type OverlayCompleteMsg struct{}

// frameCmd returns a command that sends the next animation frame
func frameCmd() tea.Cmd {
	return tea.Tick(overlay.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForOverlayCmd blocks until the overlay reports completion
func waitForOverlayCmd(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return OverlayCompleteMsg{}
	}
}
