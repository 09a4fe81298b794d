package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/threatdeck/threatdeck/internal/dataset"
	"github.com/threatdeck/threatdeck/internal/logging"
	"github.com/threatdeck/threatdeck/internal/ui"
	"github.com/threatdeck/threatdeck/internal/view"
	"github.com/threatdeck/threatdeck/pkg/telemetry"
)

type Config struct {
	View         string
	ASCII        bool
	LogFile      string
	Verbose      bool
	Headless     bool
	Width        int
	Height       int
	OTLPEndpoint string
}

const serviceName = "threatdeck"

// Run wires logging, telemetry and the seeded registry, then either starts
// the interactive dashboard or prints frames to stdout in headless mode.
func Run(cfg Config) error {
	ctx := context.Background()

	log, closeLog, err := logging.Setup(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdown, err := telemetry.Init(ctx, serviceName, ui.Version, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(ctx) }()

	if cfg.ASCII {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	sel := view.Default
	if cfg.View != "" {
		sel, err = view.Parse(cfg.View)
		if err != nil {
			return err
		}
	}

	reg := dataset.Default()

	if cfg.Headless {
		return renderFrames(ctx, cfg, reg, sel, log)
	}

	log.WithField("view", sel.String()).Info("starting dashboard")
	p := tea.NewProgram(ui.NewModel(reg, sel, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// renderFrames prints one frame per requested view. With no explicit view,
// all four are printed in tab order.
func renderFrames(ctx context.Context, cfg Config, reg *dataset.Registry, sel view.Selection, log *logrus.Logger) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 40
	}

	views := []view.Selection{sel}
	if cfg.View == "" {
		views = view.All()
	}

	tracer := telemetry.Tracer(serviceName)
	for _, s := range views {
		var span trace.Span
		ctx, span = tracer.Start(ctx, "render.frame",
			trace.WithAttributes(attribute.String("view", s.String())))

		frame, err := ui.Frame(ui.NewModel(reg, s, log), s, width, height)
		span.End()
		if err != nil {
			return err
		}
		fmt.Println(frame)
	}
	return nil
}
