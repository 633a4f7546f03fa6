package border

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/relwatch/internal/ui/styles"
)

// Keybind is one hint in a panel footer, rendered as [d]ismiss.
type Keybind struct {
	Key   string
	Label string
}

// RenderKeybind renders the key bold in KeybindKey and the label in KeybindLabel.
func RenderKeybind(kb Keybind) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

// RenderKeybinds joins hints with two spaces, dropping the ones that would
// push the result past maxWidth. The returned width excludes ANSI codes.
func RenderKeybinds(kbs []Keybind, maxWidth int) (string, int) {
	var out string
	used := 0
	for _, kb := range kbs {
		r := RenderKeybind(kb)
		w := lipgloss.Width(r)
		sep := 0
		if used > 0 {
			sep = 2
		}
		if used+sep+w > maxWidth {
			break
		}
		if sep > 0 {
			out += "  "
		}
		out += r
		used += sep + w
	}
	return out, used
}
