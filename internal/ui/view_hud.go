package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/threatdeck/threatdeck/internal/dataset"
	"github.com/threatdeck/threatdeck/internal/view"
)

// Version is the release stamp shown in the HUD and reported to telemetry.
const Version = "1.0.0"

func (m Model) viewHUD() string {
	segTitle := highlight.Render("THREATDECK v" + Version)
	segView := hudLabelStyle.Render("VIEW:") +
		hudValueStyle.Render(strings.ToUpper(m.holder.Current().String()))
	segIncidents := hudLabelStyle.Render("INCIDENTS:") +
		hudValueStyle.Render(fmt.Sprintf("%s (%d)", groupDigits(dataset.TotalIncidents), dataset.ReportingYear))

	content := lipgloss.JoinHorizontal(lipgloss.Center,
		segTitle, "  |  ", segView, "  |  ", segIncidents,
	)
	if m.width > 4 {
		return hudStyle.Width(m.width - 2).Render(content)
	}
	return hudStyle.Render(content)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, s := range view.All() {
		label := strings.ToUpper(s.String())
		if s == m.holder.Current() {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}
	return " " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// groupDigits formats n with thousands separators (800944 -> "800,944").
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, ",")
}
