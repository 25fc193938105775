package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/popkit/internal/keyevent"
	"github.com/jmylchreest/popkit/internal/output"
)

var keysOpts struct {
	format string
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the effective key bindings",
	Long: `Print the key bindings currently in effect, after applying the config
file over the defaults.

Examples:
  # Human-readable listing
  popkit keys

  # Machine-readable
  popkit keys --format json
  popkit keys --format yaml`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)

	keysCmd.Flags().StringVarP(&keysOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
}

func runKeys(cmd *cobra.Command, args []string) error {
	keys := getConfig().Keys
	phase := string(keyevent.PhaseDown)

	bindings := []output.Binding{
		{Action: "open", Key: keys.Open, Phase: phase},
		{Action: "close", Key: keys.Close, Phase: phase},
		{Action: "up", Key: keys.Up, Phase: phase},
		{Action: "down", Key: keys.Down, Phase: phase},
		{Action: "quit", Key: keys.Quit, Phase: phase},
		{Action: "help", Key: keys.Help, Phase: phase},
	}

	formatter := output.NewFormatter(output.FormatType(keysOpts.format))
	return formatter.Format(os.Stdout, bindings)
}
