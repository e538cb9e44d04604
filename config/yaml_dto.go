// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLFile mirrors the on-disk layout. Pointer fields distinguish "absent"
// from an explicit zero.
type YAMLFile struct {
	SimilarityThreshold *float64    `yaml:"similarity_threshold"`
	PaletteSize         *int        `yaml:"palette_size"`
	Metric              string      `yaml:"metric"`
	Workers             *int        `yaml:"workers"`
	Universe            []YAMLColor `yaml:"universe"`
}

// YAMLColor accepts either a hex string or an [r, g, b] sequence on the
// 0–255 scale.
type YAMLColor struct {
	Hex      string
	Channels []float64
	Line     int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	c.Line = value.Line
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&c.Hex)
	case yaml.SequenceNode:
		if len(value.Content) != 3 {
			return fmt.Errorf("line %d: color needs 3 channels, got %d", value.Line, len(value.Content))
		}
		return value.Decode(&c.Channels)
	}

	return fmt.Errorf("line %d: color must be a hex string or [r, g, b]", value.Line)
}
