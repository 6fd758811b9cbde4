package tui

import (
	"errors"
	"strings"

	"message-dispatch/models"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Compose state handlers
func (m Model) updateCompose(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Any key dismisses the failure notification
	m.notice = ""
	m.noticeErr = nil

	if key.Matches(msg, m.keys.Send) {
		err := m.controller.RequestSend()
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			// Blank drafts are rejected without feedback, the button is already greyed out
			return m, nil
		}
		if err != nil {
			m.logger.Sugar().Debugf("send request refused: %v", err)
			return m, nil
		}
		m.dialogCursor = dialogConfirm
		m.textarea.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.controller.SetDraft(m.textarea.Value())
	return m, cmd
}

func (m Model) viewCompose() string {
	var s strings.Builder

	s.WriteString(m.viewHeader())

	if m.notice != "" {
		s.WriteString(noticeStyle.Render("✗ "+m.notice) + "\n")
		if m.noticeErr != nil {
			s.WriteString(helpStyle.Render(m.noticeErr.Error()) + "\n")
		}
		s.WriteString("\n")
	}

	s.WriteString(m.textarea.View() + "\n\n")
	s.WriteString(m.viewSendButton("➤ Send Message") + "\n\n")

	keys := m.keys
	keys.Send.SetEnabled(m.controller.CanSend())
	s.WriteString(m.help.View(composeKeys(keys)))

	return m.renderWithDynamicWidth(s.String())
}

func (m Model) viewHeader() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Send Message") + "\n")
	s.WriteString(subtitleStyle.Render("Enter your text below to dispatch it to the API.") + "\n")
	if m.endpoint != "" || m.mode != "" {
		s.WriteString(helpStyle.Render(strings.TrimSpace(m.mode+" → "+m.endpoint)) + "\n\n")
	}
	return s.String()
}

func (m Model) viewSendButton(label string) string {
	width := m.textarea.Width()
	style := buttonDisabledStyle
	if m.controller.CanSend() {
		style = buttonStyle
	}
	return style.Width(width).Align(lipgloss.Center).Render(label)
}
