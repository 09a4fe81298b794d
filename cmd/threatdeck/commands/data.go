package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/threatdeck/threatdeck/internal/dataset"
)

var dataFormat string

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Dump the bundled datasets to stdout",
	Long: `Print the compiled-in statistics snapshot as YAML or JSON.
Output goes to stdout only; nothing is written to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := marshalRegistry(dataset.Default(), dataFormat)
		if err != nil {
			return err
		}
		_, _ = cmd.OutOrStdout().Write(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.Flags().StringVar(&dataFormat, "format", "yaml", "Output format (yaml, json)")
}

type registryDump struct {
	Origins    []dataset.Origin    `json:"origins" yaml:"origins"`
	Targets    []dataset.Target    `json:"targets" yaml:"targets"`
	Trend      []dataset.Trend     `json:"trend" yaml:"trend"`
	Severity   []dataset.Severity  `json:"severity" yaml:"severity"`
	Techniques []dataset.Technique `json:"techniques" yaml:"techniques"`
}

func marshalRegistry(reg *dataset.Registry, format string) ([]byte, error) {
	dump := registryDump{
		Origins:    reg.Origins(),
		Targets:    reg.Targets(),
		Trend:      reg.Trend(),
		Severity:   reg.Severity(),
		Techniques: reg.Techniques(),
	}

	switch format {
	case "json":
		b, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(dump)
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
