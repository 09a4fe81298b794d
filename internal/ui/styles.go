package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Slate console palette
	colorNeonGreen  = lipgloss.Color("#00FF99") // Success / values
	colorNeonPurple = lipgloss.Color("#874BFD") // Headers / borders
	colorTextMain   = lipgloss.Color("#E2E8F0") // Main text
	colorTextSub    = lipgloss.Color("#64748B") // Subtext
	colorDanger     = lipgloss.Color("#FF0055") // High severity
	colorWarning    = lipgloss.Color("#F59E0B") // Medium severity
	colorSteel      = lipgloss.Color("#3E5C97") // Low severity / cool accents
	colorGold       = lipgloss.Color("#FFDE00")
	colorEmber      = lipgloss.Color("#E67E22")

	// Shared styles
	dimStyle  = lipgloss.NewStyle().Foreground(colorTextSub)
	highlight = lipgloss.NewStyle().Foreground(colorNeonPurple).Bold(true)
	special   = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTextSub).
			Padding(0, 2).
			Margin(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorNeonPurple).
			Bold(true).
			MarginBottom(1)

	// HUD styles
	hudStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorNeonPurple).
			Padding(0, 1).
			Foreground(colorTextMain)

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextSub).
			Bold(true).
			MarginRight(1)

	hudValueStyle = lipgloss.NewStyle().
			Foreground(colorNeonGreen).
			Bold(true)

	// Tab bar
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorTextMain).
			Background(lipgloss.Color("#331832")).
			Bold(true).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorTextSub).
				Padding(0, 2)

	// Chart slice colors, cycled per series position.
	sliceColors = []lipgloss.Color{
		lipgloss.Color("#D22730"), // red
		colorGold,
		lipgloss.Color("#239F40"), // green
		colorSteel,
		lipgloss.Color("#777777"), // gray
		colorEmber,
	}

	severityLowStyle    = lipgloss.NewStyle().Foreground(colorSteel)
	severityMediumStyle = lipgloss.NewStyle().Foreground(colorWarning)
	severityHighStyle   = lipgloss.NewStyle().Foreground(colorDanger)
)

func sliceStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(sliceColors[i%len(sliceColors)])
}
