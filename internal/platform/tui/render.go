package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rollcube/internal/core"
)

// colorCodes maps core.Color to terminal color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// ScreenStyles holds one lipgloss style per screen color, bound to a renderer.
// SSH sessions get their own renderer so color detection follows the
// client terminal rather than the server's.
type ScreenStyles struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenStyles builds styles for r. A nil renderer uses the default one.
func NewScreenStyles(r *lipgloss.Renderer) *ScreenStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	st := &ScreenStyles{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range colorCodes {
		st.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return st
}

func (st *ScreenStyles) style(c core.Color) lipgloss.Style {
	if s, ok := st.styles[c]; ok {
		return s
	}
	return st.plain
}

var defaultStyles = NewScreenStyles(nil)

// RenderScreen converts a Screen buffer to a styled string using the
// default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultStyles.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st *ScreenStyles) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
