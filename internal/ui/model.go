package ui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/threatdeck/threatdeck/internal/dataset"
	"github.com/threatdeck/threatdeck/internal/view"
)

type Model struct {
	// core components
	holder   *view.Holder
	registry *dataset.Registry
	log      *logrus.Logger

	// chrome
	keys keyMap
	help help.Model

	// state
	width    int
	height   int
	quitting bool
}

// NewModel initializes the dashboard model. A nil log is replaced with a
// discard logger; the model never writes to stdout itself.
func NewModel(reg *dataset.Registry, initial view.Selection, log *logrus.Logger) Model {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return Model{
		holder:   view.NewHolder(initial),
		registry: reg,
		log:      log,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Current exposes the active selection for tests and the headless renderer.
func (m Model) Current() view.Selection {
	return m.holder.Current()
}

func (m Model) Init() tea.Cmd {
	return nil
}
