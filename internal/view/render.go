package view

import (
	"fmt"

	"github.com/threatdeck/threatdeck/internal/dataset"
)

// keyFindings is static prose for the overview, not derived from the
// registry.
var keyFindings = []string{
	"Nation-state actors account for 90% of sophisticated incidents",
	"Energy sector is the most targeted (28% of attacks)",
	"Phishing remains the most common attack vector (35%)",
	"Reported incidents grew 57% between 2020 and 2024",
}

// comparisonTable holds illustrative per-sector constants for the targets
// view. Values are bundled with the program, not computed.
var comparisonTable = TableSpec{
	Columns: []string{"Sector", "Frequency", "Financial Impact", "Recovery Time", "Vulnerability Index"},
	Rows: [][]string{
		{"Energy", "Very High", "$4.7M avg", "21 days", "8.2/10"},
		{"Government", "High", "$2.1M avg", "17 days", "7.4/10"},
		{"Financial", "High", "$5.9M avg", "9 days", "6.1/10"},
		{"Healthcare", "Moderate", "$3.8M avg", "14 days", "7.9/10"},
		{"Transportation", "Moderate", "$1.6M avg", "12 days", "6.8/10"},
		{"Water Systems", "Moderate", "$0.9M avg", "19 days", "8.6/10"},
	},
}

// geoTable holds the illustrative geographic breakdown for the trends view.
var geoTable = TableSpec{
	Columns: []string{"Region", "Share", "YoY Change", "Dominant Vector"},
	Rows: [][]string{
		{"North America", "34%", "+9%", "Phishing"},
		{"Europe", "27%", "+7%", "Ransomware"},
		{"Asia-Pacific", "21%", "+12%", "Supply Chain"},
		{"Middle East", "11%", "+15%", "Wiper Malware"},
		{"Other", "7%", "+4%", "DDoS"},
	},
}

// builders maps each selection to its fixed widget composition.
var builders = map[Selection]func(*dataset.Registry) []Widget{
	Overview: buildOverview,
	Origins:  buildOrigins,
	Targets:  buildTargets,
	Trends:   buildTrends,
}

// Render derives the widget layout for sel from the registry. It is a pure
// function: it never mutates the registry and produces structurally
// identical output for identical inputs.
func Render(sel Selection, reg *dataset.Registry) (Layout, error) {
	build, ok := builders[sel]
	if !ok {
		return Layout{}, fmt.Errorf("no renderer for selection %d", int(sel))
	}
	return Layout{View: sel, Widgets: build(reg)}, nil
}

func buildOverview(reg *dataset.Registry) []Widget {
	findings := make([]string, len(keyFindings))
	copy(findings, keyFindings)

	return []Widget{
		{
			Kind:     KindFindings,
			Title:    "Key Findings",
			Findings: &FindingsSpec{Lines: findings},
		},
		{
			Kind:  KindDonut,
			Title: "Attack Origins",
			Donut: &DonutSpec{Slices: originSlices(reg), Compact: true},
		},
		{
			Kind:  KindLine,
			Title: "Attack Trend 2020-2024",
			Line:  &LineSpec{Points: trendPoints(reg)},
		},
	}
}

func buildOrigins(reg *dataset.Registry) []Widget {
	origins := reg.Origins()
	entries := make([]RankedEntry, len(origins))
	for i, o := range origins {
		entries[i] = RankedEntry{Rank: i + 1, Label: o.Name, Value: o.Value}
	}

	return []Widget{
		{
			Kind:  KindDonut,
			Title: "Attack Origins",
			Donut: &DonutSpec{Slices: originSlices(reg)},
		},
		{
			Kind:   KindRanked,
			Title:  "Top Origins",
			Ranked: &RankedSpec{Entries: entries},
		},
	}
}

func buildTargets(reg *dataset.Registry) []Widget {
	targets := reg.Targets()
	bars := make([]Slice, len(targets))
	for i, t := range targets {
		bars[i] = Slice{Label: t.Name, Value: float64(t.Attacks)}
	}

	severity := reg.Severity()
	rows := make([]StackedRow, len(severity))
	for i, s := range severity {
		rows[i] = StackedRow{
			Category: s.Category,
			Segments: []Slice{
				{Label: "Low", Value: float64(s.Low)},
				{Label: "Medium", Value: float64(s.Medium)},
				{Label: "High", Value: float64(s.High)},
			},
		}
	}

	return []Widget{
		{
			Kind:  KindBar,
			Title: "Targeted Sectors",
			Bar:   &BarSpec{Bars: bars},
		},
		{
			Kind:    KindStacked,
			Title:   "Severity by Sector",
			Stacked: &StackedSpec{Rows: rows},
		},
		{
			Kind:  KindTable,
			Title: "Sector Comparison",
			Table: cloneTable(comparisonTable),
		},
	}
}

func buildTrends(reg *dataset.Registry) []Widget {
	techniques := reg.Techniques()
	slices := make([]Slice, len(techniques))
	for i, tq := range techniques {
		slices[i] = Slice{Label: tq.Name, Value: float64(tq.Percentage)}
	}

	return []Widget{
		{
			Kind:  KindLine,
			Title: "Attack Trend 2020-2024",
			Line:  &LineSpec{Points: trendPoints(reg)},
		},
		{
			Kind:  KindDonut,
			Title: "Technique Distribution",
			Donut: &DonutSpec{Slices: slices},
		},
		{
			Kind:  KindTable,
			Title: "Geographic Breakdown",
			Table: cloneTable(geoTable),
		},
	}
}

func originSlices(reg *dataset.Registry) []Slice {
	origins := reg.Origins()
	slices := make([]Slice, len(origins))
	for i, o := range origins {
		slices[i] = Slice{Label: o.Name, Value: o.Value}
	}
	return slices
}

func trendPoints(reg *dataset.Registry) []LinePoint {
	trend := reg.Trend()
	points := make([]LinePoint, len(trend))
	for i, p := range trend {
		points[i] = LinePoint{Label: p.Year, Value: float64(p.Attacks)}
	}
	return points
}

func cloneTable(t TableSpec) *TableSpec {
	out := TableSpec{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return &out
}
