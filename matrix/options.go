// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for FromRows.
//
// Design goals:
//   - No global state; defaults live in constants below.
//   - No dead switches: each flag changes behavior and is covered by tests.
package matrix

// DefaultCopyRows controls whether FromRows copies the caller's rows.
// false ⇒ zero-copy adoption: the matrix takes ownership of the slices.
const DefaultCopyRows = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	copyRows bool // DefaultCopyRows
}

// WithCopy makes FromRows deep-copy every row instead of adopting it.
// Use when the caller keeps using the input slices afterwards.
func WithCopy() Option {
	return func(o *Options) { o.copyRows = true }
}

// WithAdopt restores zero-copy adoption (the default).
func WithAdopt() Option {
	return func(o *Options) { o.copyRows = false }
}

// gatherOptions applies user setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{copyRows: DefaultCopyRows}
	for _, set := range user {
		set(&o)
	}

	return o
}
