package ui

import (
	"fmt"
	"io"
	"strings"

	"message-dispatch/overlay"
)

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Color helper functions
func ColorTitle(text string) string     { return ColorCyan + ColorBold + text + ColorReset }
func ColorSuccess(text string) string   { return ColorGreen + ColorBold + text + ColorReset }
func ColorError(text string) string     { return ColorRed + ColorBold + text + ColorReset }
func ColorWarning(text string) string   { return ColorYellow + text + ColorReset }
func ColorInfo(text string) string      { return ColorWhite + text + ColorReset }
func ColorSection(text string) string   { return ColorBlue + ColorBold + text + ColorReset }
func ColorHighlight(text string) string { return ColorCyan + text + ColorReset }
func ColorDimText(text string) string   { return ColorDim + ColorWhite + text + ColorReset }

const sectionWidth = 60

// PrintBanner displays the application banner
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, ColorTitle("    ╔══════════════════════════════════════╗"))
	fmt.Fprintln(w, ColorTitle("    ║  Message Dispatch                    ║"))
	fmt.Fprintln(w, ColorTitle("    ╚══════════════════════════════════════╝"))
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := "─ " + title + " "
	remainingWidth := sectionWidth - len([]rune(headerContent))
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	fmt.Fprintln(w, ColorSection("┌"+headerContent+strings.Repeat("─", remainingWidth)+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, ColorSection("└"+strings.Repeat("─", sectionWidth)+"┘"))
}

// ParticleStrip renders a batch as one line of pound signs, wider for larger particles
func ParticleStrip(particles []overlay.Particle) string {
	parts := make([]string, 0, len(particles))
	for _, p := range particles {
		n := 1 + int((p.Scale-0.5)*2.99)
		if n < 1 {
			n = 1
		}
		parts = append(parts, strings.Repeat("£", n))
	}
	return strings.Join(parts, " ")
}
