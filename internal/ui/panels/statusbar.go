package panels

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/relwatch/internal/ui/styles"
	"github.com/justinpbarnett/relwatch/internal/update"
)

const flashDurationVal = 5 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long the status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

// FlashLevel controls the icon and color of a status bar flash message.
type FlashLevel int

const (
	FlashInfo    FlashLevel = iota // blue ●
	FlashSuccess                   // green ✓
	FlashWarning                   // yellow ⚠
	FlashError                     // red ✗
)

type StatusBar struct {
	width      int
	repo       string
	update     *update.Info
	dismissed  bool
	flash      string
	flashLevel FlashLevel
	flashUntil time.Time
}

func NewStatusBar(repo string) StatusBar {
	return StatusBar{repo: repo}
}

func (s StatusBar) View() string {
	sep := styles.TextDimStyle.Render(" │ ")

	left := " " + styles.TextSecondaryStyle.Render("relwatch "+Version)
	if s.repo != "" {
		left += sep + styles.TextSecondaryStyle.Render(s.repo)
	}

	if s.update != nil {
		indicator := "⬆ v" + s.update.LatestVersion + " available"
		st := lipgloss.NewStyle().Foreground(styles.StatusSuccess).Bold(true)
		if s.dismissed {
			st = styles.TextDimStyle
		}
		left += sep + st.Render(indicator)
	}

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		var icon string
		var color lipgloss.TerminalColor
		switch s.flashLevel {
		case FlashSuccess:
			icon, color = "✓", styles.StatusSuccess
		case FlashError:
			icon, color = "✗", styles.StatusError
		case FlashWarning:
			icon, color = "⚠", styles.StatusWarning
		default: // FlashInfo
			icon, color = "●", styles.StatusInfo
		}
		left += sep + lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon+" "+s.flash)
	}

	right := styles.TextSecondaryStyle.Render("?:help") + " "

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// SetUpdate mirrors the update notice state into the status bar.
func (s *StatusBar) SetUpdate(info *update.Info, dismissed bool) {
	s.update = info
	s.dismissed = dismissed
}

func (s *StatusBar) SetFlash(msg string) {
	s.SetFlashWithLevel(msg, FlashInfo)
}

func (s *StatusBar) SetFlashWithLevel(msg string, level FlashLevel) {
	s.flash = msg
	s.flashLevel = level
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashLevel = FlashInfo
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}
