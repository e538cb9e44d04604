// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cvdpalette/colorspace"
	"github.com/katalvlaran/cvdpalette/distance"
	"github.com/katalvlaran/cvdpalette/palette"
)

// File is a validated configuration.
type File struct {
	Universe            []colorspace.RGB
	PaletteSize         int // 0 when the file does not set it
	SimilarityThreshold float64
	Metric              distance.Metric
	Workers             int
}

// Default returns the configuration used when no file is given.
func Default() File {
	o := palette.DefaultOptions()
	return File{
		SimilarityThreshold: o.SimilarityThreshold,
		Metric:              o.Metric,
		Workers:             o.Workers,
	}
}

// Options converts the file into palette options (no logger).
func (f File) Options() palette.Options {
	return palette.Options{
		SimilarityThreshold: f.SimilarityThreshold,
		Metric:              f.Metric,
		Workers:             f.Workers,
	}
}

// Map validates a decoded DTO. path is only used for error context.
func Map(path string, y YAMLFile) (File, error) {
	f := Default()

	if y.SimilarityThreshold != nil {
		t := *y.SimilarityThreshold
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return File{}, invalidField(path, "similarity_threshold", "must be finite and > 0, got %v", t)
		}
		f.SimilarityThreshold = t
	}
	if y.PaletteSize != nil {
		if *y.PaletteSize < 1 {
			return File{}, invalidField(path, "palette_size", "must be >= 1, got %d", *y.PaletteSize)
		}
		f.PaletteSize = *y.PaletteSize
	}
	if y.Metric != "" {
		m, err := distance.ParseMetric(y.Metric)
		if err != nil {
			return File{}, invalidField(path, "metric", "%v", err)
		}
		f.Metric = m
	}
	if y.Workers != nil {
		if *y.Workers < 0 {
			return File{}, invalidField(path, "workers", "must be >= 0, got %d", *y.Workers)
		}
		f.Workers = *y.Workers
	}

	f.Universe = make([]colorspace.RGB, 0, len(y.Universe))
	for i, yc := range y.Universe {
		c, err := mapColor(yc)
		if err != nil {
			return File{}, invalidField(path, fmt.Sprintf("universe[%d]", i), "line %d: %w", yc.Line, err)
		}
		f.Universe = append(f.Universe, c)
	}

	return f, nil
}

func mapColor(yc YAMLColor) (colorspace.RGB, error) {
	if yc.Channels != nil {
		return colorspace.NewRGB(yc.Channels[0], yc.Channels[1], yc.Channels[2])
	}

	return colorspace.ParseHex(yc.Hex)
}
