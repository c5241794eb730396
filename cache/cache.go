// SPDX-License-Identifier: MIT

// Package cache: the resolve operation.
//
// Purpose:
//   - Provide the single public facade ResolveInverse that implements the
//     read-check-compute-store memoization sequence over an InverseCache.
//   - Keep every guard fail-fast and every failure a plain sentinel match:
//     argument violations are ErrInvalidArgument (wrapped causes), solver
//     failures propagate from the matrix package uncached.

package cache

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// opResolve tags wrapped errors from the resolve facade.
const opResolve = "ResolveInverse"

// noticeCacheHit is the informational line emitted on a cache hit.
// The dimensions identify which container state was served.
const noticeCacheHit = "Returning cached inverse of %dx%d matrix"

// resolveErrorf wraps err with the facade tag, preserving the underlying
// sentinel for errors.Is. Use only when err != nil.
// Complexity: O(1).
func resolveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opResolve, err)
}

// ResolveInverse produces the inverse of the matrix currently held by c,
// using the cached value when present.
//
// Implementation:
//   - Stage 1: capability guard — c must be a usable container (nil interface
//     and typed-nil *CachedMatrix are rejected with ErrNilCache).
//   - Stage 2: RHS guard — when WithRHS(b) was supplied, b must equal the
//     identity matrix of dimension Current().Rows() within epsilon; anything
//     else is ErrNonIdentityRHS. The operation computes true inverses only.
//   - Stage 3: cache hit — a present inverse is returned as-is after emitting
//     one informational notice (suppressible via WithQuiet/WithLogger). No
//     freshness re-validation happens here; Replace already enforces the
//     invalidation invariant.
//   - Stage 4: empty passthrough — an unset matrix resolves to (nil, nil).
//     This mirrors the container's own sentinel and is NOT an error.
//   - Stage 5: miss — compute matrix.Inverse(Current(), WithEpsilon(eps)),
//     store the result via StoreInverse, and return it. Solver failures
//     propagate uncached, so the next call retries from scratch.
//
// Behavior highlights:
//   - At most one computation per container state: hits never recompute,
//     misses store before returning.
//   - Failures are never cached; only successful inverses reach StoreInverse.
//   - Options never alter return values, only guards and the notice.
//
// Inputs:
//   - c: container exposing the InverseCache capability set.
//   - opts: WithRHS, WithEpsilon, WithLogger, WithQuiet.
//
// Returns:
//   - matrix.Matrix: the cached or freshly computed inverse; nil when the
//     container is Empty.
//
// Errors:
//   - ErrInvalidArgument (via ErrNilCache / ErrNonIdentityRHS) on contract
//     violations.
//   - matrix.ErrSingular, matrix.ErrNonSquare, ... propagated from the solver.
//
// Determinism:
//   - Delegates to the deterministic matrix kernels; a given container state
//     and option set always yields the same result.
//
// Complexity:
//   - Time O(1) on hit; O(n³) on miss (LU-based inversion). Space O(n²).
//
// AI-Hints:
//   - Callers needing concurrent resolves must wrap Stages 3–5 in their own
//     per-container lock; the check and the store are not atomic here.
//   - Pass WithQuiet in tight loops to avoid per-hit logging overhead.
func ResolveInverse(c InverseCache, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: capability guard.
	if err := validateContainer(c); err != nil {
		return nil, resolveErrorf(err)
	}

	cur := c.Current()

	// Stage 2: auxiliary right-hand-side guard.
	if o.rhs != nil {
		if err := validateIdentityRHS(cur, o.rhs, o.eps); err != nil {
			return nil, resolveErrorf(err)
		}
	}

	// Stage 3: cache hit — return the stored inverse untouched.
	if inv, ok := c.CachedInverse(); ok {
		if !o.quiet {
			o.logger.Infof(noticeCacheHit, inv.Rows(), inv.Cols())
		}

		return inv, nil
	}

	// Stage 4: empty container resolves to the empty sentinel, not an error.
	if cur == nil {
		return nil, nil
	}

	// Stage 5: compute, store, return. Failures propagate uncached.
	inv, err := matrix.Inverse(cur, matrix.WithEpsilon(o.eps))
	if err != nil {
		return nil, err
	}
	c.StoreInverse(inv)

	return inv, nil
}

// validateContainer rejects unusable containers: a nil interface value or a
// typed-nil *CachedMatrix (which would satisfy the interface but panic on
// first use). Custom implementations are assumed non-nil once the interface
// itself is non-nil.
// Complexity: O(1).
func validateContainer(c InverseCache) error {
	if c == nil {
		return ErrNilCache
	}
	if cm, ok := c.(*CachedMatrix); ok && cm == nil {
		return ErrNilCache
	}

	return nil
}

// validateIdentityRHS enforces the inverse-only contract on an auxiliary
// right-hand side: b must be the identity matrix whose dimension equals the
// current matrix's row count, within eps.
// An Empty container accepts no RHS at all — there is no dimension for the
// identity to match.
// Complexity: O(n²) for the identity scan.
func validateIdentityRHS(cur, b matrix.Matrix, eps float64) error {
	if cur == nil {
		return ErrNonIdentityRHS
	}
	if b.Rows() != cur.Rows() || b.Cols() != cur.Rows() {
		return ErrNonIdentityRHS
	}
	ok, err := matrix.IsIdentity(b, eps)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNonIdentityRHS, err)
	}
	if !ok {
		return ErrNonIdentityRHS
	}

	return nil
}
