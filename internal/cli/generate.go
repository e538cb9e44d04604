// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvdpalette/config"
	"github.com/katalvlaran/cvdpalette/distance"
	"github.com/katalvlaran/cvdpalette/palette"
)

var errNoCount = errors.New("palette size is required (--count or palette_size)")

func newGenerateCmd(rf *rootFlags) *cobra.Command {
	var (
		cfgPath   string
		count     int
		threshold float64
		metric    string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "generate [hex...]",
		Short: "Pick mutually distinct colours from a universe",
		Long: "Pick --count colours from the universe (config file plus hex arguments)\n" +
			"so that they stay distinguishable, most separated pair first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rf.logger(cmd)

			f := config.Default()
			if cfgPath != "" {
				var err error
				if f, err = config.Load(cfgPath); err != nil {
					return err
				}
			}

			extra, err := parseColors(args)
			if err != nil {
				return err
			}
			f.Universe = append(f.Universe, extra...)

			flags := cmd.Flags()
			if flags.Changed("count") {
				f.PaletteSize = count
			}
			if flags.Changed("threshold") {
				f.SimilarityThreshold = threshold
			}
			if flags.Changed("metric") {
				if f.Metric, err = distance.ParseMetric(metric); err != nil {
					return err
				}
			}
			if flags.Changed("workers") {
				f.Workers = workers
			}
			if f.PaletteSize == 0 {
				return errNoCount
			}

			opts := f.Options()
			opts.Logger = log
			log.Debug("cvdpal.generate",
				"universe", len(f.Universe),
				"count", f.PaletteSize,
				"metric", f.Metric.String(),
			)

			colors, err := palette.Generate(f.Universe, f.PaletteSize, &opts)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			return printColors(cmd.OutOrStdout(), colors)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "palette size")
	cmd.Flags().Float64Var(&threshold, "threshold", palette.DefaultSimilarityThreshold, "near-duplicate ΔE threshold")
	cmd.Flags().StringVar(&metric, "metric", distance.CIEDE2000.String(), "cie76 | cie94 | ciede2000")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines for the distance matrix")
	return cmd
}
