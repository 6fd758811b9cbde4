package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - indigo/slate theme
	primaryColor   = lipgloss.Color("#4F46E5") // Indigo
	secondaryColor = lipgloss.Color("#6366F1") // Light indigo
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray

	// Particle shades, faint to bright
	particleColors = []lipgloss.Color{"#14532D", "#16A34A", "#4ADE80"}

	// Box container
	boxStyle = lipgloss.NewStyle().
			Padding(2, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			PaddingBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingBottom(1)

	// Send button, enabled and greyed out
	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(primaryColor).
			Bold(true).
			Padding(0, 3)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Background(lipgloss.Color("#374151")).
				Padding(0, 3)

	buttonOutlineStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Border(lipgloss.NormalBorder()).
				BorderForeground(mutedColor).
				Padding(0, 2)

	buttonSelectedStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(primaryColor).
				Border(lipgloss.NormalBorder()).
				BorderForeground(primaryColor).
				Bold(true).
				Padding(0, 2)

	dialogStyle = lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Failure notification banner
	noticeStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(0, 1)

	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// Session log
	sessionActionStyle = lipgloss.NewStyle().
				Foreground(secondaryColor).
				Italic(true)

	sessionStatusStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	sessionSuccessValueStyle = lipgloss.NewStyle().
					Foreground(successColor)

	sessionWarningValueStyle = lipgloss.NewStyle().
					Foreground(warningColor)

	sessionErrorValueStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	sessionNeutralValueStyle = lipgloss.NewStyle().
					Foreground(textColor)
)
