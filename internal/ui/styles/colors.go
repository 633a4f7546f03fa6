package styles

import "github.com/charmbracelet/lipgloss"

// Semantic colors as AdaptiveColor{Light, Dark}.
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	KeybindKey      = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary     = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary   = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim         = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	StatusInfo    = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	StatusWarning = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}

	BannerBg = lipgloss.AdaptiveColor{Light: "#dbe7fb", Dark: "#283457"}
	LinkText = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bb9af7"}
)

// mono replaces every accent with the primary/secondary text colors.
func mono() {
	BorderFocused = TextPrimary
	KeybindKey = TextPrimary
	StatusInfo = TextPrimary
	StatusSuccess = TextPrimary
	StatusError = TextPrimary
	StatusWarning = TextPrimary
	LinkText = TextSecondary
	BannerBg = lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#292e42"}
}
