// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra core used by matcache.
//
// The package offers:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) with bounds-checked,
//     error-returning accessors — no panics on user input.
//   - Dense, a row-major float64 implementation with an optional finite-value
//     policy (NaN/±Inf rejection on Set).
//   - Deterministic kernels: LU (Doolittle, no pivoting), Solve (A·X = B for
//     an arbitrary conformable right-hand side), Inverse, and Mul.
//   - Sentinel errors (ErrSingular, ErrNonSquare, ...) matched via errors.Is.
//
// Kernels normalize their operands into Dense form once and then run fixed
// loop orders over flat storage, so results are reproducible bit-for-bit for
// identical inputs. Numerical stability is traded for determinism: there is
// no pivoting, and singularity is detected against a configurable tolerance
// (WithEpsilon).
//
// Matrices are best kept small-to-moderate; everything is a single in-memory
// dense buffer.
package matrix
