package tui

import (
	"strings"

	"message-dispatch/utils"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Confirmation dialog handlers
func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if m.dialogCursor == dialogConfirm {
			m.dialogCursor = dialogCancel
		} else {
			m.dialogCursor = dialogConfirm
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelDialog()
	case msg.String() == "enter" && m.dialogCursor == dialogCancel:
		return m.cancelDialog()
	case key.Matches(msg, m.keys.Confirm):
		return m.confirmDialog()
	}
	return m, nil
}

func (m Model) cancelDialog() (Model, tea.Cmd) {
	if err := m.controller.Cancel(); err != nil {
		return m, nil
	}
	cmd := m.textarea.Focus()
	return m, cmd
}

func (m Model) confirmDialog() (Model, tea.Cmd) {
	attempt, err := m.controller.Confirm()
	if err != nil {
		return m, nil
	}

	m.showRightPane = true
	m.layoutPanes()
	m.addFormattedAction("Dispatch " + shortID(attempt.ID))
	m.addFormattedStatusIndented("Sent at", attempt.Payload.Timestamp)
	m.addFormattedStatusIndented("Content", utils.TruncateString(utils.SingleLine(attempt.Payload.Content), 40))
	m.addFormattedStatusIndented("Characters", utils.FormatNumber(len([]rune(attempt.Payload.Content))))

	return m, tea.Batch(dispatchCmd(attempt), m.spinner.Tick)
}

func (m Model) viewConfirm() string {
	var s strings.Builder

	s.WriteString(highlightStyle.Render("⚠ Are you sure?") + "\n\n")
	s.WriteString("This action will format your message and send it\nto the external server.\n\n")

	preview := utils.TruncateString(utils.SingleLine(m.controller.Draft()), 48)
	s.WriteString(helpStyle.Render("“"+preview+"”") + "\n\n")

	cancel, confirm := buttonOutlineStyle, buttonOutlineStyle
	if m.dialogCursor == dialogCancel {
		cancel = buttonSelectedStyle
	} else {
		confirm = buttonSelectedStyle
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		cancel.Render("Cancel"), "  ", confirm.Render("Yes, send it")) + "\n\n")
	s.WriteString(m.help.View(dialogKeys(m.keys)))

	dialog := dialogStyle.Render(s.String())

	if m.leftPaneWidth > 0 && m.height > 0 {
		dialog = lipgloss.Place(m.leftPaneWidth-8, m.height-6, lipgloss.Center, lipgloss.Center, dialog)
	}
	return m.renderWithDynamicWidth(dialog)
}

// Sending state view
func (m Model) viewSending() string {
	var s strings.Builder

	s.WriteString(m.viewHeader())
	s.WriteString(m.textarea.View() + "\n\n")
	s.WriteString(buttonDisabledStyle.Width(m.textarea.Width()).Align(lipgloss.Center).
		Render(m.spinner.View()+" Sending...") + "\n\n")
	s.WriteString(helpStyle.Render("Waiting for the endpoint, ctrl+c to quit"))

	return m.renderWithDynamicWidth(s.String())
}

// Animating state view
func (m Model) viewAnimating() string {
	var s strings.Builder

	s.WriteString(successStyle.Render("✓ Message sent!") + "\n\n")
	s.WriteString(m.renderCelebration())

	return m.renderWithDynamicWidth(s.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
