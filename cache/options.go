// SPDX-License-Identifier: MIT

// Package cache: functional configuration for ResolveInverse.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: options never change return values, only the
//     guard inputs (RHS, epsilon) and the notice destination.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; the public entry point
//     consumes ...Option.
package cache

import (
	"math"

	apexlog "github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon mirrors the matrix package tolerance: it feeds both the
// identity check on an auxiliary right-hand side and the solver's
// singularity detection.
const DefaultEpsilon = matrix.DefaultEpsilon

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "cache: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil      = "cache: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; ResolveInverse
// accepts `...Option` and internally resolves them via gatherOptions.
type Options struct {
	rhs    matrix.Matrix     // auxiliary right-hand side; must be identity when set
	eps    float64           // >= 0; DefaultEpsilon
	logger apexlog.Interface // cache-hit notice destination; defaults to apexlog.Log
	quiet  bool              // suppress the cache-hit notice entirely
}

// ---------- Constructors (WithX) ----------

// WithRHS supplies an auxiliary right-hand side b, in the convention of
// general linear-solve APIs. ResolveInverse only computes true inverses, so
// b MUST be the identity matrix of dimension equal to the current matrix's
// row count — anything else fails with ErrNonIdentityRHS at resolve time.
// This is a misuse guard, not a feature: for a general solve, call
// matrix.Solve directly.
// Complexity: O(1) to set; the identity check runs at resolve time.
func WithRHS(b matrix.Matrix) Option {
	return func(o *Options) { o.rhs = b }
}

// WithEpsilon sets the numeric tolerance used by the identity check on the
// auxiliary right-hand side and passed through to the solver's singularity
// detection.
//
// Errors:
//   - Panics with a stable message when eps is NaN/±Inf or negative
//     (programmer error).
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger redirects the cache-hit notice to l (any apex/log Interface,
// e.g. a leveled logger with a custom handler). Panics on nil (programmer
// error) — use WithQuiet to suppress output instead.
// Complexity: O(1).
func WithLogger(l apexlog.Interface) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithQuiet suppresses the informational cache-hit notice. Return values are
// unaffected: hits still return the cached inverse.
// Complexity: O(1).
func WithQuiet() Option {
	return func(o *Options) { o.quiet = true }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; the canonical internal entry for the facade.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		rhs:    nil,
		eps:    DefaultEpsilon,
		logger: apexlog.Log, // package-level default logger (Info level)
		quiet:  false,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
