// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks a configuration that parsed but failed validation,
// or did not parse at all.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Error wraps an underlying error with operation context.
type Error struct {
	Op    string
	Path  string // optional: file path
	Field string // optional: offending YAML field
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" field %s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}

	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

func invalidField(path, field, format string, args ...any) error {
	return &Error{
		Op:    "config.map",
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...),
	}
}
