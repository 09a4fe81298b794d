package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatdeck/threatdeck/internal/dataset"
)

func TestRender_WidgetSets(t *testing.T) {
	reg := dataset.Default()

	tests := []struct {
		sel  Selection
		want []WidgetKind
	}{
		{Overview, []WidgetKind{KindFindings, KindDonut, KindLine}},
		{Origins, []WidgetKind{KindDonut, KindRanked}},
		{Targets, []WidgetKind{KindBar, KindStacked, KindTable}},
		{Trends, []WidgetKind{KindLine, KindDonut, KindTable}},
	}

	for _, tc := range tests {
		t.Run(tc.sel.String(), func(t *testing.T) {
			layout, err := Render(tc.sel, reg)
			require.NoError(t, err)
			assert.Equal(t, tc.sel, layout.View)
			assert.Equal(t, tc.want, layout.Kinds())
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	reg := dataset.Default()
	for _, sel := range All() {
		first, err := Render(sel, reg)
		require.NoError(t, err)
		second, err := Render(sel, reg)
		require.NoError(t, err)
		assert.Equal(t, first, second, "view %s", sel)
	}
}

func TestRender_DoesNotMutateRegistry(t *testing.T) {
	reg := dataset.Default()
	before := reg.Origins()

	for _, sel := range All() {
		_, err := Render(sel, reg)
		require.NoError(t, err)
	}

	assert.Equal(t, before, reg.Origins())
}

func TestRender_InvalidSelection(t *testing.T) {
	_, err := Render(Selection(42), dataset.Default())
	assert.Error(t, err)
}

func TestRender_OverviewDonutIsCompact(t *testing.T) {
	layout, err := Render(Overview, dataset.Default())
	require.NoError(t, err)

	donut := layout.Widgets[1]
	require.NotNil(t, donut.Donut)
	assert.True(t, donut.Donut.Compact)

	full, err := Render(Origins, dataset.Default())
	require.NoError(t, err)
	require.NotNil(t, full.Widgets[0].Donut)
	assert.False(t, full.Widgets[0].Donut.Compact)
}

func TestRankedEntry_BarWidthEqualsValue(t *testing.T) {
	layout, err := Render(Origins, dataset.Default())
	require.NoError(t, err)

	var ranked *RankedSpec
	for _, w := range layout.Widgets {
		if w.Kind == KindRanked {
			ranked = w.Ranked
		}
	}
	require.NotNil(t, ranked)
	require.NotEmpty(t, ranked.Entries)

	for _, e := range ranked.Entries {
		assert.Equal(t, e.Value, e.BarWidthPercent())
	}
	assert.Equal(t, "Russia", ranked.Entries[0].Label)
	assert.Equal(t, 32.0, ranked.Entries[0].BarWidthPercent())
}

// Initial load shows the overview with the key findings and the five-point
// trend line in ascending year order.
func TestScenario_InitialLoad(t *testing.T) {
	holder := NewHolder(Default)
	assert.Equal(t, Overview, holder.Current())

	layout, err := Render(holder.Current(), dataset.Default())
	require.NoError(t, err)

	require.Equal(t, KindFindings, layout.Widgets[0].Kind)
	assert.NotEmpty(t, layout.Widgets[0].Findings.Lines)

	line := layout.Widgets[2]
	require.Equal(t, KindLine, line.Kind)
	require.Len(t, line.Line.Points, 5)

	wantYears := []string{"2020", "2021", "2022", "2023", "2024"}
	wantValues := []float64{320, 368, 412, 465, 502}
	for i, p := range line.Line.Points {
		assert.Equal(t, wantYears[i], p.Label)
		assert.Equal(t, wantValues[i], p.Value)
	}
}

// Selecting targets shows the Energy severity row as 18/42/40.
func TestScenario_TargetsSeverity(t *testing.T) {
	holder := NewHolder(Default)
	require.NoError(t, holder.Select(Targets))

	layout, err := Render(holder.Current(), dataset.Default())
	require.NoError(t, err)

	stacked := layout.Widgets[1]
	require.Equal(t, KindStacked, stacked.Kind)

	var energy *StackedRow
	for i := range stacked.Stacked.Rows {
		if stacked.Stacked.Rows[i].Category == "Energy" {
			energy = &stacked.Stacked.Rows[i]
		}
	}
	require.NotNil(t, energy)
	require.Len(t, energy.Segments, 3)

	sum := 0.0
	for _, seg := range energy.Segments {
		sum += seg.Value
	}
	assert.Equal(t, 100.0, sum)
	assert.Equal(t, 18.0, energy.Segments[0].Value)
	assert.Equal(t, 42.0, energy.Segments[1].Value)
	assert.Equal(t, 40.0, energy.Segments[2].Value)
}
