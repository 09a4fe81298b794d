package ui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatdeck/threatdeck/internal/dataset"
	"github.com/threatdeck/threatdeck/internal/view"
)

func TestMain(m *testing.M) {
	// Deterministic frames regardless of the terminal running the tests.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestModel(initial view.Selection) Model {
	return NewModel(dataset.Default(), initial, nil)
}

func TestView_PerSelectionContent(t *testing.T) {
	tests := []struct {
		name     string
		sel      view.Selection
		want     []string // strings that MUST appear in the frame
		dontWant []string // strings that MUST NOT appear
	}{
		{
			name: "overview shows findings, origins and trend",
			sel:  view.Overview,
			want: []string{
				"Key Findings",
				"Energy sector is the most targeted",
				"Phishing remains the most common attack vector",
				"Attack Origins",
				"Russia 32%",
				"Attack Trend 2020-2024",
				"2020", "2024", "320", "502",
			},
			dontWant: []string{"Sector Comparison", "Top Origins"},
		},
		{
			name: "origins shows donut and ranked list",
			sel:  view.Origins,
			want: []string{
				"Attack Origins",
				"Top Origins",
				"#1 Russia",
				"#5 Non-state Actors",
				"32%", "10%",
			},
			dontWant: []string{"Key Findings", "Geographic Breakdown"},
		},
		{
			name: "targets shows bars, severity and comparison table",
			sel:  view.Targets,
			want: []string{
				"Targeted Sectors",
				"Severity by Sector",
				"Energy",
				"18/42/40",
				"Sector Comparison",
				"Financial Impact",
				"Recovery Time",
				"Vulnerability Index",
				"$4.7M avg",
			},
			dontWant: []string{"Key Findings", "Technique Distribution"},
		},
		{
			name: "trends shows trend, techniques and geography",
			sel:  view.Trends,
			want: []string{
				"Attack Trend 2020-2024",
				"Technique Distribution",
				"Phishing",
				"35%",
				"Supply Chain",
				"Geographic Breakdown",
				"North America",
				"Asia-Pacific",
			},
			dontWant: []string{"Top Origins", "Sector Comparison"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := Frame(newTestModel(view.Default), tc.sel, 100, 40)
			require.NoError(t, err)

			for _, w := range tc.want {
				assert.Containsf(t, frame, w, "frame missing %q:\n%s", w, frame)
			}
			for _, dw := range tc.dontWant {
				assert.NotContainsf(t, frame, dw, "frame must not contain %q", dw)
			}
		})
	}
}

func TestView_HUDAndTabs(t *testing.T) {
	frame := newTestModel(view.Default).View()

	assert.Contains(t, frame, "THREATDECK v"+Version)
	assert.Contains(t, frame, "800,944")
	for _, s := range view.All() {
		assert.Contains(t, frame, strings.ToUpper(s.String()))
	}
}

func TestUpdate_DigitKeysSwitchViews(t *testing.T) {
	m := newTestModel(view.Default)

	keys := map[string]view.Selection{
		"2": view.Origins,
		"3": view.Targets,
		"4": view.Trends,
		"1": view.Overview,
	}
	for k, want := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		m = next.(Model)
		assert.Equal(t, want, m.Current(), "key %s", k)
	}
}

func TestUpdate_TabCyclesAndWraps(t *testing.T) {
	m := newTestModel(view.Default)

	order := []view.Selection{view.Origins, view.Targets, view.Trends, view.Overview}
	for _, want := range order {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Model)
		assert.Equal(t, want, m.Current())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, view.Trends, m.Current())
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(view.Default)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestFrame_InvalidSelection(t *testing.T) {
	_, err := Frame(newTestModel(view.Default), view.Selection(9), 80, 24)
	assert.Error(t, err)
}

func TestFrame_Idempotent(t *testing.T) {
	for _, sel := range view.All() {
		a, err := Frame(newTestModel(view.Default), sel, 100, 40)
		require.NoError(t, err)
		b, err := Frame(newTestModel(view.Default), sel, 100, 40)
		require.NoError(t, err)
		assert.Equal(t, a, b, "view %s", sel)
	}
}

func TestPercentCells(t *testing.T) {
	assert.Equal(t, 16, percentCells(32, 50))
	assert.Equal(t, 0, percentCells(0, 40))
	assert.Equal(t, 40, percentCells(100, 40))
	assert.Equal(t, 40, percentCells(120, 40))
}
