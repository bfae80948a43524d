package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	primary       = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}
	success       = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
	danger        = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
	textSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	textMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	border        = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)

	subtitleStyle = lipgloss.NewStyle().Foreground(textSecondary)

	labelStyle = lipgloss.NewStyle().Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)

	modeActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primary).
			Padding(0, 1)

	modeInactiveStyle = lipgloss.NewStyle().
				Foreground(textSecondary).
				Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(textMuted).Italic(true)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)

	resultValueStyle = lipgloss.NewStyle().Bold(true).Foreground(success)

	mutedStyle = lipgloss.NewStyle().Foreground(textMuted)
)
