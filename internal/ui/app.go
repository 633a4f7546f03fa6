package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/relwatch/internal/config"
	"github.com/justinpbarnett/relwatch/internal/logger"
	"github.com/justinpbarnett/relwatch/internal/ui/clipboard"
	"github.com/justinpbarnett/relwatch/internal/ui/layout"
	"github.com/justinpbarnett/relwatch/internal/ui/panels"
	"github.com/justinpbarnett/relwatch/internal/ui/styles"
	"github.com/justinpbarnett/relwatch/internal/update"
)

type App struct {
	config      *config.Config
	log         logger.Logger
	width       int
	height      int
	layout      layout.Layout
	notice      panels.UpdateNotice
	release     panels.ReleaseView
	statusBar   panels.StatusBar
	helpOverlay *panels.HelpOverlay
	keys        KeyMap
	ready       bool
	flashSeq    int
	copyURL     func(string) error
}

func NewApp(cfg *config.Config, checker update.Checker, log logger.Logger) App {
	if log == nil {
		log = logger.NewNop()
	}
	styles.Apply(cfg.UI.Theme)

	return App{
		config:    cfg,
		log:       log,
		notice:    panels.NewUpdateNotice(checker, log),
		release:   panels.NewReleaseView(panels.Version, cfg.Update.Repo, cfg.UI.NotesScrollSpeed),
		statusBar: panels.NewStatusBar(cfg.Update.Repo),
		keys:      DefaultKeyMap(),
		copyURL:   clipboard.Write,
	}
}

// Init starts the update check unless it is disabled in the config.
func (a App) Init() tea.Cmd {
	if !a.config.CheckEnabled() {
		a.log.DebugW("startup update check disabled")
		return nil
	}
	return a.notice.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.relayout()
		return a, nil

	case UpdateCheckedMsg:
		prev := a.notice.Info()
		var cmd tea.Cmd
		a.notice, cmd = a.notice.Update(msg)
		a.syncNotice(prev)
		return a, cmd

	case CloseModalMsg:
		a.helpOverlay = nil
		return a, nil

	case FlashMsg:
		a.statusBar.SetFlashWithLevel(msg.Text, msg.Level)
		return a, a.scheduleClearFlash()

	case ClearFlashMsg:
		if msg.Seq == a.flashSeq {
			a.statusBar.ClearFlash()
		}
		return a, nil

	case tea.KeyMsg:
		if a.helpOverlay != nil {
			var cmd tea.Cmd
			*a.helpOverlay, cmd = a.helpOverlay.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.helpOverlay = panels.NewHelpOverlay()
			return a, nil
		case key.Matches(msg, a.keys.Dismiss):
			prev := a.notice.Info()
			a.notice.Dismiss()
			a.syncNotice(prev)
			return a, nil
		case key.Matches(msg, a.keys.Recheck):
			check := a.notice.CheckForUpdate()
			if check == nil {
				return a, nil
			}
			a.statusBar.SetFlash("Checking for updates…")
			return a, tea.Batch(check, a.scheduleClearFlash())
		case key.Matches(msg, a.keys.CopyURL):
			return a, a.copyReleaseURL()
		}

		var cmd tea.Cmd
		a.release, cmd = a.release.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.release, cmd = a.release.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	var rows []string
	if a.layout.BannerHeight > 0 {
		rows = append(rows, a.notice.View())
	}
	rows = append(rows, a.release.View(), a.statusBar.View())
	full := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if a.helpOverlay != nil {
		full = lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, a.helpOverlay.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}
	return full
}

// Notice exposes the update notice for callers that render it elsewhere.
func (a App) Notice() panels.UpdateNotice {
	return a.notice
}

func (a App) copyReleaseURL() tea.Cmd {
	info := a.notice.Info()
	if info == nil || info.ReleaseURL == "" {
		return nil
	}
	copyURL := a.copyURL
	url := info.ReleaseURL
	return func() tea.Msg {
		if err := copyURL(url); err != nil {
			return FlashMsg{Text: "Copy failed: " + err.Error(), Level: panels.FlashError}
		}
		return FlashMsg{Text: "Copied release URL", Level: panels.FlashSuccess}
	}
}

// syncNotice pushes notice state into the panels that mirror it. The notes
// view only resets when the release actually changed.
func (a *App) syncNotice(prev *update.Info) {
	info := a.notice.Info()
	if info != nil && (prev == nil || *prev != *info) {
		a.release.SetInfo(info)
	}
	a.statusBar.SetUpdate(info, a.notice.Dismissed())
	a.relayout()
}

func (a *App) relayout() {
	if !a.ready {
		return
	}
	a.layout = layout.Calculate(a.width, a.height, a.notice.Visible())
	a.notice.SetSize(a.layout.TermWidth)
	a.release.SetSize(a.layout.ReleaseWidth, a.layout.ReleaseHeight)
	a.statusBar.SetSize(a.layout.StatusBarWidth)
}

// scheduleClearFlash starts a new flash generation and returns the tick that
// clears it.
func (a *App) scheduleClearFlash() tea.Cmd {
	a.flashSeq++
	return clearFlashAfter(panels.FlashDuration(), a.flashSeq)
}

func clearFlashAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearFlashMsg{Seq: seq}
	})
}
