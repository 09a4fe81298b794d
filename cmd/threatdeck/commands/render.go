package commands

import (
	"github.com/spf13/cobra"

	"github.com/threatdeck/threatdeck/internal/app"
	"github.com/threatdeck/threatdeck/internal/view"
)

var renderCmd = &cobra.Command{
	Use:   "render [view]",
	Short: "Print dashboard frames to stdout (no TUI)",
	Long: `Render one view non-interactively, or all four when no view is given.
Useful for CI logs and piping.

Example:
  threatdeck render targets --ascii`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"overview", "origins", "targets", "trends"},
	RunE: func(cmd *cobra.Command, args []string) error {
		applyViperDefaults(cmd.Flags())
		if len(args) == 1 {
			if _, err := view.Parse(args[0]); err != nil {
				return err
			}
			config.View = args[0]
		} else {
			config.View = ""
		}

		config.Width, _ = cmd.Flags().GetInt("width")
		config.Height, _ = cmd.Flags().GetInt("height")
		config.Headless = true
		return app.Run(config)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Int("width", 100, "Frame width in cells")
	renderCmd.Flags().Int("height", 40, "Frame height in cells")
}
