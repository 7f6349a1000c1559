package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-bricks/internal/arena"
	"github.com/vovakirdan/pong-bricks/internal/core"
)

// Glyphs used for each entity kind.
const (
	glyphBrick  = '█'
	glyphPaddle = '='
	glyphBall   = '●'
)

// styleCache maps hex colors to lipgloss styles so each color is built once.
type styleCache map[string]lipgloss.Style

func (c styleCache) style(cell core.Cell) lipgloss.Style {
	if !cell.Colored {
		return lipgloss.NewStyle()
	}
	hex := cell.Color.Hex()
	if s, ok := c[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	c[hex] = s
	return s
}

// sameColor reports whether two cells share a style.
func sameColor(a, b core.Cell) bool {
	if a.Colored != b.Colored {
		return false
	}
	return !a.Colored || a.Color.Hex() == b.Color.Hex()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameColor(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// DrawArena clears the screen and draws every visible entity of the arena,
// mapping normalized device coordinates onto cells.
func DrawArena(s *core.Screen, a *arena.Arena) {
	s.Clear()
	a.Draw(func(e arena.Entity) {
		switch e.Kind {
		case arena.KindBrick:
			s.FillRect(s.CellRect(e.Box()), glyphBrick, e.Color)
		case arena.KindPaddle:
			s.FillRect(s.CellRect(e.Box()), glyphPaddle, e.Color)
		case arena.KindBall:
			x, y := s.CellAt(e.Pos)
			s.SetColored(x, y, glyphBall, e.Color)
		}
	})
}

// fieldSize returns the playfield size in cells for a terminal of the given
// size. Terminal cells are about twice as tall as wide, so the field is kept
// twice as wide as it is tall to look square. chrome is the number of rows
// and columns reserved around the field.
func fieldSize(termW, termH, chromeW, chromeH int) (w, h int) {
	h = max(termH-chromeH, minFieldH)
	w = min(termW-chromeW, h*2)
	if w < minFieldW {
		w = minFieldW
	}
	if w < h*2 {
		h = max(w/2, minFieldH)
	}
	return w, h
}

const (
	minFieldW = 20
	minFieldH = 10
)
