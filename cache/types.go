// SPDX-License-Identifier: MIT

// Package cache: container type and capability interface.
package cache

import "github.com/katalvlaran/matcache/matrix"

// InverseCache is the capability set ResolveInverse requires from its
// container argument: get/replace the matrix, and get/store the cached
// inverse. *CachedMatrix is the canonical implementation; custom containers
// satisfy the contract structurally (no marker method, no runtime tag).
//
// Implementations must uphold the invalidation invariant: Replace clears the
// cached inverse unconditionally, so a present inverse was always computed
// from the current matrix (unless the holder called StoreInverse directly,
// which is the holder's responsibility).
type InverseCache interface {
	// Replace stores m as the current matrix and clears the cached inverse.
	Replace(m matrix.Matrix)

	// Current returns the stored matrix, or nil when none was ever set.
	Current() matrix.Matrix

	// StoreInverse overwrites the cached inverse unconditionally.
	StoreInverse(inv matrix.Matrix)

	// CachedInverse returns the cached inverse and whether it is present.
	CachedInverse() (matrix.Matrix, bool)
}

// CachedMatrix holds a square matrix together with its memoized inverse.
//
// States: Empty (no matrix), MatrixSet-NoCache, MatrixSet-Cached. Replace
// moves any state to MatrixSet-NoCache (or Empty when given nil); a
// successful ResolveInverse moves MatrixSet-NoCache to MatrixSet-Cached.
// There is no terminal state — the container is reusable indefinitely.
//
// The container exclusively owns both fields: callers must go through the
// methods, never alias and mutate the stored matrices, or the invariant
// "cache never outlives the matrix it was computed from" breaks silently.
//
// Not safe for concurrent use. The check-compute-store sequence in
// ResolveInverse is not atomic; concurrent owners need their own lock scoped
// to the container instance.
type CachedMatrix struct {
	mat matrix.Matrix // current matrix; nil means unset (Empty state)
	inv matrix.Matrix // cached inverse; nil means absent
}

// Compile-time assertion: *CachedMatrix provides the full capability set.
var _ InverseCache = (*CachedMatrix)(nil)

// New creates a container holding initial as its current matrix.
// Passing nil yields the Empty state — a legal, resolvable starting point
// (ResolveInverse returns nil without error until a matrix is set).
// Complexity: O(1); the matrix is referenced, not copied.
func New(initial matrix.Matrix) *CachedMatrix {
	return &CachedMatrix{mat: initial}
}

// Replace stores m as the current matrix and unconditionally clears the
// cached inverse — even when m is equal in value to the previous matrix.
// Equality is deliberately not checked: replacement is the invalidation
// signal, not value change.
// Complexity: O(1).
func (c *CachedMatrix) Replace(m matrix.Matrix) {
	c.mat = m
	c.inv = nil // invalidate: the cache must never outlive the old matrix
}

// Current returns the stored matrix, or nil when the container is Empty.
// No side effects.
// Complexity: O(1).
func (c *CachedMatrix) Current() matrix.Matrix { return c.mat }

// StoreInverse overwrites the cached inverse unconditionally.
// ResolveInverse calls this immediately after a successful computation.
// Calling it independently is legal but bypasses the "computed from the
// current matrix" guarantee — that consistency becomes the caller's
// responsibility.
// Complexity: O(1).
func (c *CachedMatrix) StoreInverse(inv matrix.Matrix) { c.inv = inv }

// CachedInverse returns the cached inverse if present. The boolean is the
// explicit absence marker: callers must use it instead of inspecting the
// matrix value, so an absent cache is never confused with a legitimately
// all-zero result.
// Complexity: O(1).
func (c *CachedMatrix) CachedInverse() (matrix.Matrix, bool) {
	if c.inv == nil {
		return nil, false
	}

	return c.inv, true
}
