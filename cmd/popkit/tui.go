package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/popkit/internal/config"
	"github.com/jmylchreest/popkit/internal/tui"
)

var tuiOpts struct {
	watch bool
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive demo",
	Long: `Launch the interactive demo: a list whose context popup is placed by
the popkit placement engine, with input routed through popkit key bindings.

The configured key bindings (see popkit keys) drive the demo. When config
watching is enabled, editing the config file re-binds the keys live without
restarting.

Default key bindings:
  ↑/↓         Navigate list
  enter       Open context popup at the selected row
  esc         Close the popup
  ?           Toggle help
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiOpts.watch, "watch", true,
		"Reload key bindings when the config file changes")
}

func runTUI(cmd *cobra.Command, args []string) error {
	configPath := ""
	if tuiOpts.watch {
		configPath = globalOpts.configPath
		if configPath == "" {
			configPath = config.ConfigPath()
		}
	}

	return tui.Run(tui.RunOptions{
		Config:     getConfig(),
		ConfigPath: configPath,
	})
}
