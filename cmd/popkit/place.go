package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/popkit/internal/geom"
	"github.com/jmylchreest/popkit/internal/placement"
)

var placeOpts struct {
	x, y, width, height           float64
	viewportWidth, viewportHeight float64
}

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Compute a popup placement for a bounding box",
	Long: `Compute the placement (alignment and side) for an element with the given
bounding box in the given viewport, using the same rules as the TUI.

Examples:
  # Box near the bottom-right corner of an 800x600 viewport
  popkit place --x 500 --y 400 --width 200 --height 100 \
    --viewport-width 800 --viewport-height 600`,
	RunE: runPlace,
}

func init() {
	rootCmd.AddCommand(placeCmd)

	placeCmd.Flags().Float64Var(&placeOpts.x, "x", 0, "Box left edge")
	placeCmd.Flags().Float64Var(&placeOpts.y, "y", 0, "Box top edge")
	placeCmd.Flags().Float64Var(&placeOpts.width, "width", 0, "Box width")
	placeCmd.Flags().Float64Var(&placeOpts.height, "height", 0, "Box height")
	placeCmd.Flags().Float64Var(&placeOpts.viewportWidth, "viewport-width", 80, "Viewport width")
	placeCmd.Flags().Float64Var(&placeOpts.viewportHeight, "viewport-height", 24, "Viewport height")
}

func runPlace(cmd *cobra.Command, args []string) error {
	box := geom.Rect{
		X:      placeOpts.x,
		Y:      placeOpts.y,
		Width:  placeOpts.width,
		Height: placeOpts.height,
	}
	vp := geom.Viewport{
		Width:  placeOpts.viewportWidth,
		Height: placeOpts.viewportHeight,
	}

	p := placement.Compute(box, vp)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", p.Alignment, p.Side)
	return nil
}
