// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the YAML file at path.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, &Error{Op: "config.load", Path: path, Err: err}
	}

	return parse(path, b)
}

// Parse validates an in-memory YAML document.
func Parse(data []byte) (File, error) {
	return parse("", data)
}

func parse(path string, data []byte) (File, error) {
	var dto YAMLFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return File{}, &Error{
			Op:   "config.parse",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidConfig, err),
		}
	}

	return Map(path, dto)
}
