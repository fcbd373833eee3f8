package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorSky:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorPipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorPipeDark: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorBird:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorBirdWing: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorBeak:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGrass:    lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	core.ColorDirt:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorHill:     lipgloss.NewStyle().Foreground(lipgloss.Color("65")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
