package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Theme maps cell colors to lipgloss styles. Colors missing from a theme
// render unstyled.
type Theme map[core.Color]lipgloss.Style

// DefaultTheme uses ANSI colors plus a 256-color gray.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorYellow:       fg("3"),
		core.ColorBlue:         fg("4"),
		core.ColorBrightRed:    fg("9").Bold(true),
		core.ColorBrightYellow: fg("11"),
		core.ColorBrightBlue:   fg("12").Bold(true),
		core.ColorBrightWhite:  fg("15"),
		core.ColorGray:         fg("245"),
	}
}

// MonoTheme renders without colors. Glyphs alone tell entities apart.
func MonoTheme() Theme {
	return Theme{}
}

// ThemeFor picks the theme for a runtime config.
func ThemeFor(cfg core.RuntimeConfig) Theme {
	if cfg.Mono {
		return MonoTheme()
	}
	return DefaultTheme()
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if style, ok := t[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default theme.
func RenderScreen(s *core.Screen) string {
	return DefaultTheme().Render(s)
}
