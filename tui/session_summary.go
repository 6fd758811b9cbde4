package tui

import (
	"strconv"
	"strings"
	"time"

	"message-dispatch/dispatch"
	"message-dispatch/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// renderOutputSummary generates the content for the right pane with scrolling
func (m Model) renderOutputSummary() string {
	var s strings.Builder

	s.WriteString(highlightStyle.Render("Session Log") + "\n")
	s.WriteString(helpStyle.Render("delivered "+strconv.Itoa(m.sentCount)+" · failed "+strconv.Itoa(m.failedCount)) + "\n\n")

	if len(m.outputSummary) == 0 {
		s.WriteString(helpStyle.Render("No messages dispatched yet."))
		return s.String()
	}

	visibleLines := m.summaryVisibleLines()
	startIdx := m.outputScrollOffset
	if startIdx >= len(m.outputSummary) {
		startIdx = max(len(m.outputSummary)-1, 0)
	}
	endIdx := min(startIdx+visibleLines, len(m.outputSummary))

	s.WriteString(strings.Join(m.outputSummary[startIdx:endIdx], "\n"))

	if len(m.outputSummary) > visibleLines {
		s.WriteString("\n\n" + helpStyle.Render("PgUp/PgDn, Ctrl+U/D, or mouse wheel to scroll"))
	}

	return s.String()
}

func (m Model) summaryVisibleLines() int {
	visible := m.height - 10 // borders, padding, title, counters
	if visible < 5 {
		visible = 5
	}
	return visible
}

// recordOutcome logs the resolved attempt in the session pane
func (m *Model) recordOutcome(ev dispatch.Event, latency time.Duration) {
	switch ev.Kind {
	case dispatch.EventAnimationRequested:
		m.sentCount++
		m.addFormattedStatusIndented("Status", "delivered")
	case dispatch.EventNotifyFailure:
		m.failedCount++
		m.addFormattedStatusIndented("Status", "failed")
		if ev.Err != nil {
			width := max(m.rightPaneWidth-12, 20)
			for i, line := range wrapText(ev.Err.Error(), width) {
				if i == 0 {
					m.addFormattedStatusIndented("Error", line)
				} else {
					m.addToOutputSummary("    " + sessionErrorValueStyle.Render(line))
				}
			}
		}
	}
	m.addFormattedStatusIndented("Latency", utils.FormatDuration(latency))
	m.addToOutputSummary("")
}

// addToOutputSummary appends a line, dropping the oldest beyond maxSummaryLines
func (m *Model) addToOutputSummary(item string) {
	m.outputSummary = append(m.outputSummary, item)
	if overflow := len(m.outputSummary) - maxSummaryLines; overflow > 0 {
		m.outputSummary = lo.Drop(m.outputSummary, overflow)
	}
}

// formatSessionAction formats an action description with italic styling
func formatSessionAction(action string) string {
	return sessionActionStyle.Render(action)
}

// formatSessionStatus formats a status line with key: value format and intelligent coloring
func formatSessionStatus(key, value string) string {
	keyStyled := sessionStatusStyle.Render(key + ": ")
	valueStyled := determineValueStyle(key, value).Render(value)
	return keyStyled + valueStyled
}

// determineValueStyle picks the colour of a status value
func determineValueStyle(key, value string) lipgloss.Style {
	lowerKey := strings.ToLower(key)
	lowerValue := strings.ToLower(value)

	switch lowerKey {
	case "content", "sent at", "characters":
		return sessionNeutralValueStyle
	case "error":
		return sessionErrorValueStyle
	}

	for _, pattern := range []string{"delivered", "success", "sent"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionSuccessValueStyle
		}
	}

	for _, pattern := range []string{"error", "failed", "failure", "refused"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionErrorValueStyle
		}
	}

	for _, pattern := range []string{"timeout", "deadline", "opaque"} {
		if strings.Contains(lowerValue, pattern) {
			return sessionWarningValueStyle
		}
	}

	return sessionNeutralValueStyle
}

// addFormattedAction adds a formatted action to the output summary
func (m *Model) addFormattedAction(action string) {
	m.addToOutputSummary(formatSessionAction(action))
}

// addFormattedStatusIndented adds a formatted status line with indentation
func (m *Model) addFormattedStatusIndented(key, value string) {
	m.addToOutputSummary("  " + formatSessionStatus(key, value))
}
