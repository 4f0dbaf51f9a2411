// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text loader.
// This file defines:
//   - LoadOption / loadOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherLoadOptions helper that applies setters over the defaults.
//
// Design goals:
//   - No dead switches: each flag changes loader behavior and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStrictTrailing leaves tokens after the rows*cols payload ignored.
	DefaultStrictTrailing = false

	// DefaultMaxElements caps rows*cols when the header decides the shape
	// (NewDenseFromReader / NewDenseFromFile). 1<<26 float64 values = 512 MiB.
	DefaultMaxElements = 1 << 26
)

const panicMaxElementsInvalid = "matrix: WithMaxElements requires n > 0"

// LoadOption configures Load, SetFromFile and the header-shaped constructors.
type LoadOption func(*loadOptions)

// loadOptions holds the effective loader configuration.
type loadOptions struct {
	strictTrailing bool // reject tokens after the payload with ErrParse
	maxElements    int  // allocation guard for header-shaped loads
}

// WithStrictTrailing makes any token after the rows*cols payload an ErrParse.
// The default ignores trailing content.
func WithStrictTrailing() LoadOption {
	return func(o *loadOptions) { o.strictTrailing = true }
}

// WithMaxElements bounds rows*cols accepted from a file header when the
// loader allocates the matrix itself. Headers above the bound fail with
// ErrInvalidDimensions before any allocation.
//
// Panics:
//   - when n <= 0.
func WithMaxElements(n int) LoadOption {
	if n <= 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *loadOptions) { o.maxElements = n }
}

// gatherLoadOptions applies user setters on top of the defaults
// (last-writer-wins).
func gatherLoadOptions(user ...LoadOption) loadOptions {
	o := loadOptions{
		strictTrailing: DefaultStrictTrailing,
		maxElements:    DefaultMaxElements,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
