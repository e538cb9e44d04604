// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvdpalette/palette"
)

func newGradientCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "gradient FROM TO [STOP...]",
		Short: "Interpolate colours evenly in Lab space",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stops, err := parseColors(args)
			if err != nil {
				return err
			}
			colors, err := palette.GradientStops(stops, steps)
			if err != nil {
				return fmt.Errorf("gradient: %w", err)
			}

			return printColors(cmd.OutOrStdout(), colors)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", 5, "number of colours to emit")
	return cmd
}
