// Package matcache memoizes the inversion of a single mutable matrix —
// compute an expensive inverse once, reuse it until the matrix changes.
//
// 🚀 What is matcache?
//
//	A small, deterministic library built from two pieces:
//		• cache/  — CachedMatrix container + ResolveInverse (the memoization contract)
//		• matrix/ — dense storage, LU/Solve/Inverse kernels, sentinel errors
//
// ✨ Why choose matcache?
//
//   - Strict invalidation – replacing the matrix always clears the cache;
//     a stale inverse can never be observed
//   - Fail-fast guarantees – sentinel errors matched via errors.Is,
//     no panics on user input
//   - Deterministic numerics – fixed loop orders, no pivoting, reproducible
//     results for identical inputs
//
// Quick sketch:
//
//	m, _ := matrix.FromRows([][]float64{{4, 9}, {11, 2}})
//	c := cache.New(m)
//	inv, _ := cache.ResolveInverse(c)  // computes and stores
//	inv, _ = cache.ResolveInverse(c)   // cache hit, logged once
//	c.Replace(other)                   // invalidates
//
// Dive into the package docs of cache/ and matrix/ for the full contracts.
//
//	go get github.com/katalvlaran/matcache
package matcache
