// SPDX-License-Identifier: MIT

// Package linsys: functional configuration for Solve.
//
// Design goals:
//   - Deterministic behavior: no global state, fixed pivot scan order.
//   - Safe by construction: WithX panics only on nonsensical values.
package linsys

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot tolerance: |pivot| <= eps ⇒ ErrSingular.
	DefaultEpsilon = 1e-9

	// DefaultPivoting enables partial pivoting (largest |a[r][col]| wins).
	DefaultPivoting = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "linsys: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	pivoting bool    // DefaultPivoting
}

// WithEpsilon sets the pivot tolerance.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivoting enables partial pivoting (default).
func WithPivoting() Option {
	return func(o *Options) { o.pivoting = true }
}

// WithNoPivoting pivots on the diagonal only. Results are reproducible
// against hand elimination, but a zero diagonal entry reports ErrSingular
// even for a regular matrix.
func WithNoPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// gatherOptions applies user setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon, pivoting: DefaultPivoting}
	for _, set := range user {
		set(&o)
	}

	return o
}
