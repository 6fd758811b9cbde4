package tui

import (
	"message-dispatch/dispatch"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case DispatchResultMsg:
		return m.handleDispatchResult(msg)
	case FrameMsg:
		return m.handleFrame()
	case OverlayCompleteMsg:
		return m.handleOverlayComplete()
	case spinner.TickMsg:
		if m.State() != dispatch.StateSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.State() == dispatch.StateComposing {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layoutPanes()
	return m, nil
}

// layoutPanes splits the width 60/40 when the session log is visible
func (m *Model) layoutPanes() {
	if m.showRightPane && m.width > 0 {
		m.leftPaneWidth = int(float64(m.width) * 0.6)
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}

	inner := m.leftPaneWidth - 10 // borders, padding, margins
	if inner < 20 {
		inner = 20
	}
	m.textarea.SetWidth(inner)
}

// handleKeyMessage handles keyboard input based on the dispatch state
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.overlay.Deactivate()
		return m, tea.Quit
	}

	if m.showRightPane {
		switch {
		case key.Matches(msg, m.keys.ScrollUp):
			m.scrollSummary(-5)
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.scrollSummary(5)
			return m, nil
		}
	}

	switch m.State() {
	case dispatch.StateComposing:
		return m.updateCompose(msg)
	case dispatch.StateAwaitingConfirmation:
		return m.updateConfirm(msg)
	}

	// Sending and Animating accept nothing but quit
	return m, nil
}

// handleMouseMessage scrolls the session log
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.showRightPane {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollSummary(-2)
	case tea.MouseButtonWheelDown:
		m.scrollSummary(2)
	}
	return m, nil
}

func (m *Model) scrollSummary(delta int) {
	maxScroll := len(m.outputSummary) - m.summaryVisibleLines()
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.outputScrollOffset += delta
	if m.outputScrollOffset < 0 {
		m.outputScrollOffset = 0
	}
	if m.outputScrollOffset > maxScroll {
		m.outputScrollOffset = maxScroll
	}
}

// handleDispatchResult resolves the in-flight attempt and reacts to the event
func (m Model) handleDispatchResult(msg DispatchResultMsg) (Model, tea.Cmd) {
	ev, err := m.controller.Resolve(msg.Attempt, msg.Err)
	if err != nil {
		m.logger.Debug("ignoring dispatch result", zap.Error(err))
		return m, nil
	}

	m.recordOutcome(ev, msg.Latency)

	switch ev.Kind {
	case dispatch.EventAnimationRequested:
		m.textarea.Reset()
		m.textarea.Blur()
		if !m.overlay.Activate() {
			m.logger.Warn("overlay already active")
		}
		m.field = newCelebrationField(m.overlay.Particles(), m.canvasHeight())
		return m, tea.Batch(frameCmd(), waitForOverlayCmd(m.overlayDone))
	case dispatch.EventNotifyFailure:
		m.notice = ev.Message
		m.noticeErr = ev.Err
		m.textarea.SetValue(m.controller.Draft())
		cmd := m.textarea.Focus()
		return m, cmd
	}

	return m, nil
}

// handleFrame advances the particle springs by one frame
func (m Model) handleFrame() (Model, tea.Cmd) {
	if m.State() != dispatch.StateAnimating || !m.overlay.Active() || m.field == nil {
		return m, nil
	}
	m.field.Step(m.overlay.Elapsed())
	return m, frameCmd()
}

// handleOverlayComplete returns to composing once the celebration is over
func (m Model) handleOverlayComplete() (Model, tea.Cmd) {
	if err := m.controller.OnOverlayComplete(); err != nil {
		m.logger.Debug("ignoring overlay completion", zap.Error(err))
		return m, nil
	}
	m.overlay.Deactivate()
	m.field = nil
	cmd := m.textarea.Focus()
	return m, cmd
}
