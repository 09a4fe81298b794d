package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/threatdeck/threatdeck/internal/view"
)

// renderTable paints a static table. The bubbles table is built per frame;
// dataset sizes are tiny and fixed, so there is nothing to cache.
func renderTable(spec *view.TableSpec) string {
	columns := make([]table.Column, len(spec.Columns))
	for i, c := range spec.Columns {
		width := len(c)
		for _, row := range spec.Rows {
			if i < len(row) && len(row[i]) > width {
				width = len(row[i])
			}
		}
		columns[i] = table.Column{Title: c, Width: width + 2}
	}

	rows := make([]table.Row, len(spec.Rows))
	for i, r := range spec.Rows {
		rows[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		Bold(true).
		Foreground(colorNeonPurple).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorTextSub).
		BorderBottom(true)
	st.Cell = st.Cell.Foreground(colorTextMain)
	// No row selection on a static table.
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)

	return t.View()
}
