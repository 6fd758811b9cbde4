package tui

import (
	"math"
	"strings"

	"message-dispatch/overlay"

	"github.com/charmbracelet/lipgloss"
)

const (
	particleGlyph   = '£'
	minCanvasHeight = 8
	minCanvasWidth  = 30
)

type cell struct {
	r     rune
	shade int // index into particleColors, -1 for blank
}

func newCelebrationField(particles []overlay.Particle, height int) *overlay.Field {
	// Particles start at 60% of the canvas height and rise to the top row
	rise := float64(height) * 0.6
	return overlay.NewField(particles, rise)
}

func (m Model) canvasHeight() int {
	h := m.height - 10
	if h < minCanvasHeight {
		h = minCanvasHeight
	}
	return h
}

func (m Model) canvasWidth() int {
	w := m.leftPaneWidth - 10
	if w < minCanvasWidth {
		w = minCanvasWidth
	}
	return w
}

// glyphs maps a particle scale to one, two or three pound signs
func glyphs(scale float64) int {
	switch {
	case scale < 0.85:
		return 1
	case scale < 1.2:
		return 2
	default:
		return 3
	}
}

func shadeFor(opacity float64) int {
	switch {
	case opacity <= 0:
		return -1
	case opacity < 0.34:
		return 0
	case opacity < 0.67:
		return 1
	default:
		return 2
	}
}

// renderCelebration draws the visible sprites onto a fixed-size canvas
func (m Model) renderCelebration() string {
	if m.field == nil {
		return ""
	}

	width, height := m.canvasWidth(), m.canvasHeight()
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', shade: -1}
		}
	}

	baseline := int(float64(height) * 0.6)
	centre := width / 2

	for _, sp := range m.field.Sprites(m.overlay.Elapsed()) {
		shade := shadeFor(sp.Opacity)
		if shade < 0 {
			continue
		}
		row := baseline - int(math.Round(sp.Y))
		if row < 0 || row >= height {
			continue
		}
		n := glyphs(sp.Scale)
		col := centre + int(math.Round(sp.X)) - n/2
		for i := 0; i < n; i++ {
			if c := col + i; c >= 0 && c < width {
				grid[row][c] = cell{r: particleGlyph, shade: shade}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles consecutive cells of the same shade as one run
func renderRow(row []cell) string {
	var s strings.Builder
	var run strings.Builder
	current := -1

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if current < 0 {
			s.WriteString(run.String())
		} else {
			s.WriteString(lipgloss.NewStyle().Foreground(particleColors[current]).Bold(true).Render(run.String()))
		}
		run.Reset()
	}

	for _, c := range row {
		if c.shade != current {
			flush()
			current = c.shade
		}
		run.WriteRune(c.r)
	}
	flush()
	return s.String()
}
