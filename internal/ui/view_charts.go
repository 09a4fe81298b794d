package ui

import (
	"fmt"
	"strings"

	"github.com/threatdeck/threatdeck/internal/view"
)

const (
	donutStripWidth   = 50
	donutCompactWidth = 30
	barChartWidth     = 40
	stackedBarWidth   = 40
	rankedBarWidth    = 40
	lineChartRows     = 6
	lineColumnWidth   = 7
)

// percentCells maps a percentage to a cell count within width.
func percentCells(percent float64, width int) int {
	cells := int(percent/100*float64(width) + 0.5)
	if cells < 0 {
		cells = 0
	}
	if cells > width {
		cells = width
	}
	return cells
}

func renderFindings(spec *view.FindingsSpec) string {
	s := strings.Builder{}
	for i, line := range spec.Lines {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(special.Render("•") + " " + line)
	}
	return s.String()
}

// renderDonut paints a share breakdown as a single distribution strip plus
// a legend. The full variant adds a scaled bar per slice.
func renderDonut(spec *view.DonutSpec) string {
	width := donutStripWidth
	if spec.Compact {
		width = donutCompactWidth
	}

	// Distribution strip
	strip := strings.Builder{}
	for i, sl := range spec.Slices {
		strip.WriteString(sliceStyle(i).Render(strings.Repeat("█", percentCells(sl.Value, width))))
	}

	s := strings.Builder{}
	s.WriteString(strip.String())
	s.WriteString("\n")

	if spec.Compact {
		var legend []string
		for i, sl := range spec.Slices {
			legend = append(legend, sliceStyle(i).Render("■")+fmt.Sprintf(" %s %.0f%%", sl.Label, sl.Value))
		}
		s.WriteString(strings.Join(legend, "  "))
		return s.String()
	}

	maxLabel := 0
	for _, sl := range spec.Slices {
		if len(sl.Label) > maxLabel {
			maxLabel = len(sl.Label)
		}
	}
	for i, sl := range spec.Slices {
		s.WriteString("\n")
		bar := sliceStyle(i).Render(strings.Repeat("█", percentCells(sl.Value, width)))
		s.WriteString(fmt.Sprintf("%-*s %s %s", maxLabel, sl.Label, bar, dimStyle.Render(fmt.Sprintf("%.0f%%", sl.Value))))
	}
	return s.String()
}

// renderLine paints an ordered series as fixed-width columns with the value
// row on top and labels underneath.
func renderLine(spec *view.LineSpec) string {
	if len(spec.Points) == 0 {
		return ""
	}

	minV, maxV := spec.Points[0].Value, spec.Points[0].Value
	for _, p := range spec.Points {
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}

	heights := make([]int, len(spec.Points))
	for i, p := range spec.Points {
		if maxV == minV {
			heights[i] = lineChartRows
			continue
		}
		scaled := (p.Value-minV)/(maxV-minV)*float64(lineChartRows-1) + 1
		heights[i] = int(scaled + 0.5)
	}

	s := strings.Builder{}

	// Value row
	for _, p := range spec.Points {
		s.WriteString(hudValueStyle.Render(fmt.Sprintf("%-*s", lineColumnWidth, fmt.Sprintf("%.0f", p.Value))))
	}
	s.WriteString("\n")

	col := strings.Repeat("█", lineColumnWidth-2) + "  "
	gap := strings.Repeat(" ", lineColumnWidth)
	for row := lineChartRows; row >= 1; row-- {
		for i := range spec.Points {
			if heights[i] >= row {
				s.WriteString(special.Render(col))
			} else {
				s.WriteString(gap)
			}
		}
		s.WriteString("\n")
	}

	// Label row
	for _, p := range spec.Points {
		s.WriteString(dimStyle.Render(fmt.Sprintf("%-*s", lineColumnWidth, p.Label)))
	}
	return s.String()
}

func renderBar(spec *view.BarSpec) string {
	maxLabel := 0
	for _, b := range spec.Bars {
		if len(b.Label) > maxLabel {
			maxLabel = len(b.Label)
		}
	}

	s := strings.Builder{}
	for i, b := range spec.Bars {
		if i > 0 {
			s.WriteString("\n")
		}
		bar := sliceStyle(i).Render(strings.Repeat("█", percentCells(b.Value, barChartWidth)))
		s.WriteString(fmt.Sprintf("%-*s %s %s", maxLabel, b.Label, bar, dimStyle.Render(fmt.Sprintf("%.0f%%", b.Value))))
	}
	return s.String()
}

// renderStacked paints one proportional low/medium/high bar per category.
func renderStacked(spec *view.StackedSpec) string {
	styles := []func(string) string{
		func(s string) string { return severityLowStyle.Render(s) },
		func(s string) string { return severityMediumStyle.Render(s) },
		func(s string) string { return severityHighStyle.Render(s) },
	}

	maxLabel := 0
	for _, row := range spec.Rows {
		if len(row.Category) > maxLabel {
			maxLabel = len(row.Category)
		}
	}

	s := strings.Builder{}
	s.WriteString(severityLowStyle.Render("■ Low") + "  " +
		severityMediumStyle.Render("■ Medium") + "  " +
		severityHighStyle.Render("■ High"))
	for _, row := range spec.Rows {
		s.WriteString("\n")
		bar := strings.Builder{}
		var values []string
		for i, seg := range row.Segments {
			cells := percentCells(seg.Value, stackedBarWidth)
			bar.WriteString(styles[i%len(styles)](strings.Repeat("█", cells)))
			values = append(values, fmt.Sprintf("%.0f", seg.Value))
		}
		s.WriteString(fmt.Sprintf("%-*s %s %s", maxLabel, row.Category, bar.String(),
			dimStyle.Render(strings.Join(values, "/"))))
	}
	return s.String()
}

// renderRanked paints rank, label and a proportional bar whose width is the
// entry's raw value percent.
func renderRanked(spec *view.RankedSpec) string {
	maxLabel := 0
	for _, e := range spec.Entries {
		if len(e.Label) > maxLabel {
			maxLabel = len(e.Label)
		}
	}

	s := strings.Builder{}
	for i, e := range spec.Entries {
		if i > 0 {
			s.WriteString("\n")
		}
		bar := sliceStyle(i).Render(strings.Repeat("█", percentCells(e.BarWidthPercent(), rankedBarWidth)))
		s.WriteString(fmt.Sprintf("%s %-*s %s %s",
			highlight.Render(fmt.Sprintf("#%d", e.Rank)),
			maxLabel, e.Label,
			bar,
			special.Render(fmt.Sprintf("%.0f%%", e.Value))))
	}
	return s.String()
}
