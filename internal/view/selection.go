// Package view is the dashboard view model: a four-value selection, a
// holder for the active selection, and a pure mapping from selection and
// dataset registry to a layout of widgets. Nothing here renders or does
// I/O; painting the layout is the terminal UI's job.
package view

import "fmt"

type Selection int

const (
	Overview Selection = iota
	Origins
	Targets
	Trends
)

// Default is the selection shown on initial load.
const Default = Overview

var selectionNames = map[Selection]string{
	Overview: "overview",
	Origins:  "origins",
	Targets:  "targets",
	Trends:   "trends",
}

func (s Selection) String() string {
	if name, ok := selectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("selection(%d)", int(s))
}

// Valid reports whether s is one of the four known views.
func (s Selection) Valid() bool {
	_, ok := selectionNames[s]
	return ok
}

// All returns the selections in display order.
func All() []Selection {
	return []Selection{Overview, Origins, Targets, Trends}
}

// Parse maps a view name to its selection.
func Parse(name string) (Selection, error) {
	for s, n := range selectionNames {
		if n == name {
			return s, nil
		}
	}
	return Default, fmt.Errorf("unknown view %q (want overview, origins, targets or trends)", name)
}

// Holder owns the active selection. It is the only mutable state in the
// dashboard and is driven by a single actor, so there is no locking.
type Holder struct {
	current Selection
}

// NewHolder starts at initial, falling back to Default if initial is not a
// known view.
func NewHolder(initial Selection) *Holder {
	if !initial.Valid() {
		initial = Default
	}
	return &Holder{current: initial}
}

func (h *Holder) Current() Selection {
	return h.current
}

// Select replaces the active selection. Values outside the enumeration are
// rejected and leave the selection unchanged.
func (h *Holder) Select(s Selection) error {
	if !s.Valid() {
		return fmt.Errorf("invalid view selection %d", int(s))
	}
	h.current = s
	return nil
}
