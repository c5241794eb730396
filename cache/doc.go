// SPDX-License-Identifier: MIT

// Package cache memoizes the inversion of a single mutable matrix.
//
// The package provides exactly one mechanism:
//
//   - CachedMatrix — a stateful container holding a matrix and its (possibly
//     absent) cached inverse. Replacing the matrix unconditionally clears the
//     cached inverse, so the cache can never outlive the value it was
//     computed from.
//   - ResolveInverse — returns the cached inverse when present; otherwise it
//     computes the inverse via matrix.Inverse, stores it in the container,
//     and returns it. Solver failures (matrix.ErrSingular, ...) propagate to
//     the caller and are never cached, so a later call retries from scratch.
//
// A cache hit emits a single informational line through apex/log
// ("Returning cached inverse of <n>x<n> matrix"); suppress it with WithQuiet
// or redirect it with WithLogger. Return values are identical either way.
//
// The container is single-threaded by design: one logical owner calls
// Replace and ResolveInverse without interleaving. Callers that need
// concurrent resolves must wrap the whole read-check-compute-store sequence
// in their own per-container mutual exclusion; the package does not provide
// it.
package cache
