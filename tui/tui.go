package tui

import (
	"fmt"

	"message-dispatch/dispatch"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run starts the TUI application around controller
func Run(controller *dispatch.Controller, opts ...Option) error {
	m := NewModel(controller, opts...)

	// Alt screen and mouse support keep the TUI isolated from the shell
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	if fm, ok := finalModel.(Model); ok {
		fm.overlay.Deactivate()
		fm.logger.Info("session ended",
			zap.Int("delivered", fm.sentCount),
			zap.Int("failed", fm.failedCount))
	}

	return nil
}
