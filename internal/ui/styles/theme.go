package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens. Apply rebuilds them.
var (
	TextPrimaryStyle   lipgloss.Style
	TextSecondaryStyle lipgloss.Style
	TextDimStyle       lipgloss.Style
	TitleStyle         lipgloss.Style
	BannerStyle        lipgloss.Style
	LinkStyle          lipgloss.Style
)

func init() { build() }

// Apply switches to the named theme. Unknown names keep the default palette.
func Apply(theme string) {
	if theme == "mono" {
		mono()
	}
	build()
}

func build() {
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	BannerStyle = lipgloss.NewStyle().Background(BannerBg).Foreground(TextPrimary)
	LinkStyle = lipgloss.NewStyle().Foreground(LinkText).Underline(true)
}
