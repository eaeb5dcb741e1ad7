// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense ingestion and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - the WithNoValidateNaNInf toggle,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates Options during construction.
type Option func(*Options)

// Options holds the effective ingestion configuration.
// Fields are unexported; public entry points consume ...Option.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf on ingestion and Set
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
