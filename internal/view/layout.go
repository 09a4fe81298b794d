package view

// WidgetKind tags the concrete spec carried by a Widget.
type WidgetKind int

const (
	KindFindings WidgetKind = iota
	KindDonut
	KindLine
	KindBar
	KindStacked
	KindRanked
	KindTable
)

var kindNames = map[WidgetKind]string{
	KindFindings: "findings",
	KindDonut:    "donut",
	KindLine:     "line",
	KindBar:      "bar",
	KindStacked:  "stacked",
	KindRanked:   "ranked",
	KindTable:    "table",
}

func (k WidgetKind) String() string {
	return kindNames[k]
}

// Widget is one renderable unit in a view's layout. Exactly one spec field
// is set, matching Kind.
type Widget struct {
	Kind  WidgetKind
	Title string

	Findings *FindingsSpec
	Donut    *DonutSpec
	Line     *LineSpec
	Bar      *BarSpec
	Stacked  *StackedSpec
	Ranked   *RankedSpec
	Table    *TableSpec
}

// Layout is the full widget composition for one view.
type Layout struct {
	View    Selection
	Widgets []Widget
}

// Kinds returns the widget kinds in layout order.
func (l Layout) Kinds() []WidgetKind {
	kinds := make([]WidgetKind, len(l.Widgets))
	for i, w := range l.Widgets {
		kinds[i] = w.Kind
	}
	return kinds
}

// FindingsSpec is a static bullet list, not derived from the registry.
type FindingsSpec struct {
	Lines []string
}

// Slice is one labeled share of a donut or bar chart.
type Slice struct {
	Label string
	Value float64
}

// DonutSpec is a share breakdown. Compact asks the painter for the small
// variant used on the overview.
type DonutSpec struct {
	Slices  []Slice
	Compact bool
}

// LinePoint is one labeled point of a line chart, in display order.
type LinePoint struct {
	Label string
	Value float64
}

type LineSpec struct {
	Points []LinePoint
}

type BarSpec struct {
	Bars []Slice
}

// StackedRow is one category of a stacked horizontal bar chart. Segment
// values are percentages of the row.
type StackedRow struct {
	Category string
	Segments []Slice
}

type StackedSpec struct {
	Rows []StackedRow
}

// RankedEntry is one row of a ranked list with a proportional bar.
type RankedEntry struct {
	Rank  int
	Label string
	Value float64
}

// BarWidthPercent is the entry's bar width: the raw value used directly as
// a percentage, with no normalization against a dynamic total.
func (e RankedEntry) BarWidthPercent() float64 {
	return e.Value
}

type RankedSpec struct {
	Entries []RankedEntry
}

// TableSpec is a static table of illustrative constants.
type TableSpec struct {
	Columns []string
	Rows    [][]string
}
