package text

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"empty", "", 10, ""},
		{"within limit", "hello", 10, "hello"},
		{"exact limit", "hello", 5, "hello"},
		{"over limit", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"width one", "hello", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	styled := "\x1b[31mhello world\x1b[0m"
	got := Truncate(styled, 6)
	if w := ansi.StringWidth(got); w != 6 {
		t.Errorf("expected visible width 6, got %d (%q)", w, got)
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"one line", "one line"},
		{"  first\nsecond", "first"},
		{"\n\n## Fixes\n- a", "## Fixes"},
	}
	for _, tt := range tests {
		if got := FirstLine(tt.in); got != tt.want {
			t.Errorf("FirstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("the quick brown fox jumps over the lazy dog", 10)
	for _, l := range lines {
		if ansi.StringWidth(l) > 10 {
			t.Errorf("line %q exceeds width 10", l)
		}
	}
	if got := strings.Join(lines, " "); got != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrapping lost words: %q", got)
	}
}

func TestWrapTextKeepsNewlines(t *testing.T) {
	lines := WrapText("a\r\n\nb", 10)
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "" || lines[2] != "b" {
		t.Errorf("expected [a, \"\", b], got %q", lines)
	}
}

func TestWrapTextLongWord(t *testing.T) {
	lines := WrapText("supercalifragilistic", 5)
	if len(lines) != 1 || lines[0] != "supe…" {
		t.Errorf("expected truncated long word, got %q", lines)
	}
}

func TestWrapTextZeroWidth(t *testing.T) {
	lines := WrapText("abc", 0)
	if len(lines) != 1 || lines[0] != "abc" {
		t.Errorf("expected input unchanged, got %q", lines)
	}
}
