package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/relwatch/internal/ui/border"
	"github.com/justinpbarnett/relwatch/internal/ui/styles"
	"github.com/justinpbarnett/relwatch/internal/ui/text"
	"github.com/justinpbarnett/relwatch/internal/update"
)

// releaseHeaderLines is the number of rows above the notes viewport.
const releaseHeaderLines = 3

// ReleaseView shows the running build and, once an update is known, the
// release details with scrollable notes. It keeps showing the release after
// the banner is dismissed.
type ReleaseView struct {
	viewport    viewport.Model
	width       int
	height      int
	current     string
	repo        string
	info        *update.Info
	scrollSpeed int
}

func NewReleaseView(current, repo string, scrollSpeed int) ReleaseView {
	if scrollSpeed <= 0 {
		scrollSpeed = 1
	}
	return ReleaseView{
		viewport:    viewport.New(0, 0),
		current:     current,
		repo:        repo,
		scrollSpeed: scrollSpeed,
	}
}

func (r *ReleaseView) SetInfo(info *update.Info) {
	r.info = info
	r.refresh()
	r.viewport.GotoTop()
}

func (r *ReleaseView) SetSize(w, h int) {
	r.width = w
	r.height = h
	r.viewport.Width = max(w-2, 0)
	r.viewport.Height = max(h-2-releaseHeaderLines, 0)
	r.refresh()
}

func (r *ReleaseView) refresh() {
	if r.info == nil {
		r.viewport.SetContent("")
		return
	}
	notes := strings.TrimSpace(r.info.ReleaseNotes)
	if notes == "" {
		notes = styles.TextDimStyle.Render("No release notes.")
	}
	r.viewport.SetContent(strings.Join(text.WrapText(notes, r.viewport.Width), "\n"))
}

func (r ReleaseView) Update(msg tea.Msg) (ReleaseView, tea.Cmd) {
	if r.info == nil {
		return r, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			r.viewport.SetYOffset(r.viewport.YOffset + r.scrollSpeed)
			return r, nil
		case "k", "up":
			r.viewport.SetYOffset(max(r.viewport.YOffset-r.scrollSpeed, 0))
			return r, nil
		case "g":
			r.viewport.GotoTop()
			return r, nil
		case "G":
			r.viewport.GotoBottom()
			return r, nil
		}
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// ScrollOffset is the first visible notes line.
func (r ReleaseView) ScrollOffset() int {
	return r.viewport.YOffset
}

func (r ReleaseView) View() string {
	inner := max(r.width-2, 0)
	var b strings.Builder

	if r.info == nil {
		b.WriteString(styles.TextPrimaryStyle.Render("Running v"+strings.TrimPrefix(r.current, "v")) + "\n")
		if r.repo != "" {
			b.WriteString(styles.TextSecondaryStyle.Render("Releases: "+r.repo) + "\n")
		}
		b.WriteString(styles.TextDimStyle.Render("No update known. Press r to check again."))
		return border.RenderPanel("Release", b.String(), []border.Keybind{{Key: "r", Label: "echeck"}}, r.width, r.height, true)
	}

	versions := fmt.Sprintf("Current v%s   Latest v%s", r.info.CurrentVersion, r.info.LatestVersion)
	b.WriteString(styles.TitleStyle.Render(text.Truncate(versions, inner)) + "\n")
	b.WriteString(styles.LinkStyle.Render(text.Truncate(r.info.ReleaseURL, inner)) + "\n")
	b.WriteString(styles.TextDimStyle.Render(strings.Repeat("─", inner)) + "\n")
	b.WriteString(r.viewport.View())

	kbs := []border.Keybind{{Key: "j/k", Label: " scroll"}, {Key: "y", Label: "ank url"}, {Key: "r", Label: "echeck"}}
	return border.RenderPanel("Release v"+r.info.LatestVersion, b.String(), kbs, r.width, r.height, true)
}
