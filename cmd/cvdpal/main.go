// SPDX-License-Identifier: MIT

// Command cvdpal generates colour-vision-deficiency aware palettes.
//
//	cvdpal generate --count 3 "#e69f00" "#56b4e9" "#009e73" "#f0e442"
//	cvdpal generate --config palette.yaml --debug
//	cvdpal gradient "#0072b2" "#f0e442" --steps 7
package main

import "github.com/katalvlaran/cvdpalette/internal/cli"

func main() {
	cli.Execute()
}
