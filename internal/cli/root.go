// SPDX-License-Identifier: MIT

// Package cli implements the cvdpal command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/katalvlaran/cvdpalette/internal/logger"
)

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "cvdpal",
		Short:        "Colour-vision-deficiency aware palette generator",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&rf.debug, "debug", false, "emit debug logs as JSON on stderr")

	cmd.AddCommand(newGenerateCmd(rf), newGradientCmd())
	return cmd
}

func (rf *rootFlags) logger(cmd *cobra.Command) *slog.Logger {
	return logger.New(logger.Config{Out: cmd.ErrOrStderr(), Debug: rf.debug})
}

func parseColors(args []string) ([]colorspace.RGB, error) {
	out := make([]colorspace.RGB, 0, len(args))
	for _, a := range args {
		c, err := colorspace.ParseHex(a)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

func printColors(w io.Writer, cs []colorspace.RGB) error {
	for _, c := range cs {
		if _, err := fmt.Fprintln(w, c.Hex()); err != nil {
			return err
		}
	}

	return nil
}
