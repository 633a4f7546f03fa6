package panels

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/relwatch/internal/logger"
	"github.com/justinpbarnett/relwatch/internal/ui/border"
	"github.com/justinpbarnett/relwatch/internal/ui/styles"
	"github.com/justinpbarnett/relwatch/internal/ui/text"
	"github.com/justinpbarnett/relwatch/internal/update"
)

// UpdateCheckedMsg carries the outcome of one update check back to the
// event loop.
type UpdateCheckedMsg struct {
	Info *update.Info
	Err  error
}

// UpdateNotice tracks whether a newer release is available and renders the
// dismissible banner announcing it. State only changes inside Update and
// Dismiss, which bubbletea calls from its event loop.
type UpdateNotice struct {
	checker update.Checker
	log     logger.Logger
	width   int

	updateAvailable bool
	info            *update.Info
	dismissed       bool
}

func NewUpdateNotice(checker update.Checker, log logger.Logger) UpdateNotice {
	if log == nil {
		log = logger.NewNop()
	}
	return UpdateNotice{checker: checker, log: log}
}

// Init runs the startup check once, without blocking the program start.
func (n UpdateNotice) Init() tea.Cmd {
	return n.CheckForUpdate()
}

// CheckForUpdate returns a command that asks the checker for an update. It
// may be issued again at any time. Concurrent checks are not coalesced, so
// the last result to arrive is applied last.
func (n UpdateNotice) CheckForUpdate() tea.Cmd {
	checker := n.checker
	if checker == nil {
		return nil
	}
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = UpdateCheckedMsg{Err: fmt.Errorf("update checker panicked: %v", r)}
			}
		}()
		info, err := checker.CheckForUpdate(context.Background())
		return UpdateCheckedMsg{Info: info, Err: err}
	}
}

func (n UpdateNotice) Update(msg tea.Msg) (UpdateNotice, tea.Cmd) {
	m, ok := msg.(UpdateCheckedMsg)
	if !ok {
		return n, nil
	}
	if n.log == nil {
		n.log = logger.NewNop()
	}

	switch {
	case m.Err != nil:
		// A failed check must never reach the user.
		n.log.DebugW("update check failed", "error", m.Err)
	case m.Info == nil:
		n.log.DebugW("no update available")
	default:
		info := *m.Info
		n.info = &info
		n.updateAvailable = true
		n.log.InfoW("update available",
			"current", info.CurrentVersion,
			"latest", info.LatestVersion,
			"url", info.ReleaseURL)
	}
	return n, nil
}

// Dismiss hides the banner. The update details stay available.
func (n *UpdateNotice) Dismiss() {
	n.dismissed = true
}

func (n UpdateNotice) UpdateAvailable() bool { return n.updateAvailable }
func (n UpdateNotice) Dismissed() bool       { return n.dismissed }

// Info returns a copy of the recorded update, or nil when none is known.
func (n UpdateNotice) Info() *update.Info {
	if n.info == nil {
		return nil
	}
	info := *n.info
	return &info
}

// Visible reports whether the banner should take up screen space.
func (n UpdateNotice) Visible() bool {
	return n.updateAvailable && !n.dismissed
}

func (n *UpdateNotice) SetSize(w int) {
	n.width = w
}

// View renders a single-line banner, or nothing when the banner is hidden.
func (n UpdateNotice) View() string {
	if !n.Visible() {
		return ""
	}

	headline := fmt.Sprintf(" ⬆ Update available: v%s → v%s", n.info.CurrentVersion, n.info.LatestVersion)
	if n.width <= 0 {
		return styles.BannerStyle.Bold(true).Render(headline)
	}

	hintsMax := n.width / 2
	hints, hintsW := border.RenderKeybinds([]border.Keybind{
		{Key: "d", Label: "ismiss"},
		{Key: "r", Label: "echeck"},
		{Key: "y", Label: "ank url"},
	}, hintsMax)

	leftMax := n.width - hintsW - 2
	left := headline
	if summary := text.FirstLine(n.info.ReleaseNotes); summary != "" {
		left += " · " + strings.TrimLeft(summary, "#- ")
	}
	left = text.Truncate(left, leftMax)

	gap := n.width - lipgloss.Width(left) - hintsW - 1
	if gap < 1 {
		gap = 1
	}
	bg := styles.BannerStyle
	return bg.Bold(true).Render(left) + bg.Render(strings.Repeat(" ", gap)) + hints + bg.Render(" ")
}
