package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// Palette maps core.Color to lipgloss styles bound to one renderer.
// SSH sessions each get their own renderer so color detection follows
// the client terminal.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the color styles for a renderer.
// A nil renderer uses the process default.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:     r.NewStyle(),
		core.ColorRed:         fg("1"),
		core.ColorGreen:       fg("2"),
		core.ColorYellow:      fg("3"),
		core.ColorCyan:        fg("6"),
		core.ColorWhite:       fg("7"),
		core.ColorBrightGreen: fg("10"),
		core.ColorBrightWhite: fg("15"),
		core.ColorOrange:      fg("208"),
		core.ColorGray:        fg("245"),
		core.ColorBrown:       fg("130"),
	}
}

// Style returns the style for c, falling back to the default style.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
