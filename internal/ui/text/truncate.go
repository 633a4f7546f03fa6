package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate shortens s to maxWidth visible columns, ending in "…" when cut.
// ANSI escape codes do not count toward the width.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// FirstLine returns s up to its first newline, with surrounding space trimmed.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

// WrapText wraps s to width columns, keeping existing newlines. Words wider
// than width are truncated.
func WrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(s string, width int) []string {
	if ansi.StringWidth(s) <= width {
		return []string{s}
	}
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	for _, word := range strings.Fields(s) {
		ww := ansi.StringWidth(word)
		if ww > width {
			word = ansi.Truncate(word, width, "…")
			ww = width
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteString(" " + word)
			curW += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
