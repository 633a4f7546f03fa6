package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/relwatch/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

func lineStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(styles.BorderFocused)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnfocused)
}

// fill returns n horizontal bars, or nothing for n <= 0.
func fill(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(horizBar, n)
}

// Top renders ╭─ Title ───╮ at exactly width columns.
func Top(title string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := lineStyle(focused)
	inner := width - 2
	if title == "" {
		return bs.Render(cornerTL + fill(inner) + cornerTR)
	}

	ts := styles.TextSecondaryStyle.Bold(true)
	if focused {
		ts = styles.TitleStyle
	}
	t := ts.Render(title)
	return bs.Render(cornerTL+horizBar+" ") + t + bs.Render(" "+fill(inner-3-lipgloss.Width(t))+cornerTR)
}

// Bottom renders ╰─ [k]ey  [k]ey ───╯. Keybinds only show on focused panels.
func Bottom(keybinds []Keybind, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := lineStyle(focused)
	inner := width - 2
	if !focused || len(keybinds) == 0 {
		return bs.Render(cornerBL + fill(inner) + cornerBR)
	}

	maxW := inner - 3
	if maxW < 0 {
		maxW = 0
	}
	kbs, used := RenderKeybinds(keybinds, maxW)
	return bs.Render(cornerBL+horizBar+" ") + kbs + bs.Render(" "+fill(maxW-used)+cornerBR)
}

// Sides wraps every content line in │ … │, padding or cropping each line to
// width-2 visible columns.
func Sides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	bs := lineStyle(focused)
	inner := width - 2
	crop := lipgloss.NewStyle().MaxWidth(inner)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > inner {
			line = crop.Render(line)
		}
		if w := lipgloss.Width(line); w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		lines[i] = bs.Render(vertBar) + line + bs.Render(vertBar)
	}
	return strings.Join(lines, "\n")
}
