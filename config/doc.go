// SPDX-License-Identifier: MIT

// Package config loads palette-generation settings from YAML.
//
//	similarity_threshold: 10
//	palette_size: 5
//	metric: ciede2000      # cie76 | cie94 | ciede2000
//	workers: 1
//	universe:
//	  - "#e69f00"
//	  - [86, 180, 233]
//
// Decoding is two-step: yaml.v3 fills the YAML* DTOs, then Map validates
// them into a File. Every failure is an *Error carrying the operation, the
// file path and (for validation failures) the offending field.
package config
