package border

import "strings"

// RenderPanel draws a bordered box of exactly width×height with the title in
// the top edge and keybind hints in the bottom edge. Content is cropped or
// padded to fill the inside.
func RenderPanel(title, content string, keybinds []Keybind, width, height int, focused bool) string {
	if width < 2 || height < 2 {
		return ""
	}

	rows := height - 2
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	parts := []string{Top(title, width, focused)}
	if rows > 0 {
		parts = append(parts, Sides(strings.Join(lines, "\n"), width, focused))
	}
	parts = append(parts, Bottom(keybinds, width, focused))
	return strings.Join(parts, "\n")
}
