package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, sel := range All() {
		got, err := Parse(sel.String())
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}

	_, err := Parse("heatmap")
	assert.Error(t, err)
}

func TestHolder_SelectValid(t *testing.T) {
	h := NewHolder(Default)
	assert.Equal(t, Overview, h.Current())

	// Any view is reachable from any view in one step.
	for _, from := range All() {
		require.NoError(t, h.Select(from))
		for _, to := range All() {
			require.NoError(t, h.Select(to))
			assert.Equal(t, to, h.Current())
			require.NoError(t, h.Select(from))
		}
	}
}

func TestHolder_RejectsInvalid(t *testing.T) {
	h := NewHolder(Targets)

	err := h.Select(Selection(-1))
	assert.Error(t, err)
	assert.Equal(t, Targets, h.Current())

	err = h.Select(Selection(99))
	assert.Error(t, err)
	assert.Equal(t, Targets, h.Current())
}

func TestNewHolder_InvalidInitialFallsBack(t *testing.T) {
	h := NewHolder(Selection(7))
	assert.Equal(t, Default, h.Current())
}
