package layout

// Layout holds the computed dimensions of every screen region.
type Layout struct {
	TermWidth  int
	TermHeight int
	TooSmall   bool

	BannerHeight int

	ReleaseWidth  int
	ReleaseHeight int

	StatusBarWidth int
}

const (
	MinWidth  = 50
	MinHeight = 10
)

// Calculate splits the terminal into the optional banner row, the release
// panel and the status bar. showBanner reserves one row at the top.
func Calculate(termWidth, termHeight int, showBanner bool) Layout {
	l := Layout{
		TermWidth:  termWidth,
		TermHeight: termHeight,
	}

	if termWidth < MinWidth || termHeight < MinHeight {
		l.TooSmall = true
		return l
	}

	usable := termHeight - 1 // status bar
	if showBanner {
		l.BannerHeight = 1
		usable--
	}

	l.ReleaseWidth = termWidth
	l.ReleaseHeight = usable
	l.StatusBarWidth = termWidth
	return l
}
