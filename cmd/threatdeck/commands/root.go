package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/threatdeck/threatdeck/internal/app"
	"github.com/threatdeck/threatdeck/internal/ui"
)

var (
	cfgFile string
	config  app.Config
)

var rootCmd = &cobra.Command{
	Use:   "threatdeck",
	Short: "Terminal dashboard of cyber-threat statistics",
	Long: `ThreatDeck - Cyber Threat Statistics Console

Four views over a bundled intelligence snapshot: overview, origins,
targets and trends. Switch views with tab or the 1-4 keys.`,
	Version: ui.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyViperDefaults(cmd.Flags())
		config.Headless = false
		return app.Run(config)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.threatdeck.yaml)")
	rootCmd.PersistentFlags().StringVar(&config.View, "view", "", "Initial view (overview, origins, targets, trends)")
	rootCmd.PersistentFlags().BoolVar(&config.ASCII, "ascii", false, "Disable colors and render plain ASCII")
	rootCmd.PersistentFlags().StringVar(&config.LogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Debug-level logging")

	// Hidden: span export endpoint, normally taken from the environment.
	rootCmd.PersistentFlags().StringVar(&config.OTLPEndpoint, "otlp-endpoint", "", "OTLP trace endpoint")
	_ = rootCmd.PersistentFlags().MarkHidden("otlp-endpoint")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderStyledHelp(cmd)
	})
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".threatdeck.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("THREATDECK")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// applyViperDefaults fills config values from file/env for flags the user
// did not set on the command line.
func applyViperDefaults(flags *pflag.FlagSet) {
	if !flags.Changed("view") && viper.IsSet("view") {
		config.View = viper.GetString("view")
	}
	if !flags.Changed("ascii") && viper.IsSet("ascii") {
		config.ASCII = viper.GetBool("ascii")
	}
	if !flags.Changed("log-file") && viper.IsSet("log-file") {
		config.LogFile = viper.GetString("log-file")
	}
}

func renderStyledHelp(cmd *cobra.Command) {
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	fmt.Println(sectionStyle.Render(fmt.Sprintf("THREATDECK %s", ui.Version)))
	fmt.Println(cmd.Long)
	fmt.Println()

	fmt.Println(sectionStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Println(sectionStyle.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Println()
	}

	fmt.Println(sectionStyle.Render("FLAGS"))
	fmt.Println(cmd.Flags().FlagUsages())
}
