package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/threatdeck/threatdeck/internal/view"
)

// Update handles key and resize events. Selection changes go through the
// holder so invalid values can never reach the renderer.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.selectView(m.neighbor(1))
		case key.Matches(msg, m.keys.PrevTab):
			m.selectView(m.neighbor(-1))
		case key.Matches(msg, m.keys.Overview):
			m.selectView(view.Overview)
		case key.Matches(msg, m.keys.Origins):
			m.selectView(view.Origins)
		case key.Matches(msg, m.keys.Targets):
			m.selectView(view.Targets)
		case key.Matches(msg, m.keys.Trends):
			m.selectView(view.Trends)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) selectView(s view.Selection) {
	if err := m.holder.Select(s); err != nil {
		m.log.WithError(err).Warn("rejected view selection")
		return
	}
	m.log.WithFields(logrus.Fields{"view": s.String()}).Debug("view selected")
}

// neighbor returns the selection offset steps away in tab order, wrapping.
func (m Model) neighbor(offset int) view.Selection {
	all := view.All()
	cur := 0
	for i, s := range all {
		if s == m.holder.Current() {
			cur = i
		}
	}
	next := (cur + offset + len(all)) % len(all)
	return all[next]
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	layout, err := view.Render(m.holder.Current(), m.registry)
	if err != nil {
		// Unreachable while the holder guards the enumeration.
		return err.Error()
	}

	s := strings.Builder{}
	s.WriteString(m.viewHUD())
	s.WriteString("\n")
	s.WriteString(m.viewTabs())
	s.WriteString("\n")

	for _, w := range layout.Widgets {
		s.WriteString(m.renderWidget(w))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

// renderWidget dispatches on the widget tag and wraps the painted body in a
// titled card.
func (m Model) renderWidget(w view.Widget) string {
	var body string
	switch w.Kind {
	case view.KindFindings:
		body = renderFindings(w.Findings)
	case view.KindDonut:
		body = renderDonut(w.Donut)
	case view.KindLine:
		body = renderLine(w.Line)
	case view.KindBar:
		body = renderBar(w.Bar)
	case view.KindStacked:
		body = renderStacked(w.Stacked)
	case view.KindRanked:
		body = renderRanked(w.Ranked)
	case view.KindTable:
		body = renderTable(w.Table)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(w.Title),
		body,
	)
	return cardStyle.Render(content)
}

// Frame renders one full dashboard frame for sel at a fixed size. Used by
// the headless render path and tests; it shares every painter with the
// interactive TUI.
func Frame(m Model, sel view.Selection, width, height int) (string, error) {
	if err := m.holder.Select(sel); err != nil {
		return "", err
	}
	m.width = width
	m.height = height
	m.help.Width = width
	return m.View(), nil
}
