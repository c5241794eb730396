// SPDX-License-Identifier: MIT

// Package matrix: deterministic linear-algebra kernels.
//
// Purpose:
//   - Provide the solver contract consumed by the cache package:
//     Solve(A, B) for a conformable right-hand side, Inverse(A), plus the
//     LU factorization and Mul they are built on.
//   - Keep every kernel strictly fail-fast: central validators run first and
//     plain sentinels are wrapped with a stable operation tag.
//
// Notes:
//   - Kernels never mutate their operands; results are freshly allocated.
//   - Operands are normalized into *Dense exactly once (denseOf), so every
//     hot loop runs over flat row-major storage with fixed iteration order.
//   - No pivoting: determinism is chosen over numerical stability, and
//     singularity is detected against the configured epsilon.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
	opMul     = "Mul"
)

// zeroSum is the initial accumulator value for substitution and dot products.
const zeroSum = 0.0

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting across facades. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf normalizes any Matrix into *Dense.
// Implementation:
//   - Stage 1: if m is already *Dense, return it unchanged (kernels are
//     read-only with respect to operands, so sharing is safe).
//   - Stage 2: otherwise materialize a copy through the At accessor in fixed
//     i→j order.
//
// Errors:
//   - ErrInvalidDimensions (degenerate shape) or a wrapped At failure from a
//     misbehaving custom implementation.
//
// Complexity:
//   - Time O(1) for *Dense, O(r*c) otherwise.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	// Values are copied verbatim; the numeric policy is not re-applied here.
	d, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// lu computes the Doolittle factorization a = L*U with unit diagonal on L.
// Internal kernel: a must be a square *Dense (facades validate). Pivots with
// |U[i,i]| ≤ eps abort with the plain ErrSingular sentinel; callers wrap.
// Determinism: fixed i→{j≥i} order for U, then {j>i}→i for L.
// Complexity: Time O(n³), Space O(n²).
func lu(a *Dense, eps float64) (*Dense, *Dense, error) {
	n := a.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	// Unit lower triangular: diag(L) = 1.
	var i, j, k int
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var sum, pivot float64
	var baseI, baseJ int
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = zeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}

		// Tolerance-based pivot guard (deterministic singularity detection).
		pivot = u.data[baseI+i]
		if pivot <= eps && pivot >= -eps {
			return nil, nil, ErrSingular
		}

		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = zeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// luSubstitute solves L*U*x = b for a single right-hand-side column.
// b is read through the accessor bAt (decouples the kernel from how the
// column is stored: dense RHS column or canonical basis vector).
// y and x are caller-provided workspaces of length n, reused across columns.
// Determinism: forward i↑ then backward i↓, fixed orders.
// Complexity: Time O(n²), Space O(1) beyond the workspaces.
func luSubstitute(l, u *Dense, bAt func(i int) float64, y, x []float64) {
	n := l.r
	var i, k, base int
	var sum float64

	// Forward substitution: L*y = b (top-down; diag(L) = 1).
	for i = 0; i < n; i++ {
		sum = zeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		y[i] = bAt(i) - sum
	}

	// Backward substitution: U*x = y (bottom-up; pivots vetted by lu).
	for i = n - 1; i >= 0; i-- {
		sum = zeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[base+i]
	}
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
// Implementation:
//   - Stage 1: ValidateSquare(m); normalize into *Dense.
//   - Stage 2: delegate to the lu kernel with the resolved epsilon.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithEpsilon to tune the zero-pivot tolerance.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|U[i,i]| ≤ eps during
//     factorization) — all wrapped with the LU tag.
//
// Determinism:
//   - Fixed loop orders; identical results for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Reuse the factors when several systems share one matrix; forming an
//     explicit inverse is typically a last resort.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	l, u, err := lu(d, o.eps)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// Solve computes X such that A·X = B, for a square A and any conformable
// right-hand side B (column vector or matrix of stacked systems).
// Implementation:
//   - Stage 1: ValidateSolveCompatible(a, b); normalize both into *Dense.
//   - Stage 2: factorize A once via lu, then run forward/backward
//     substitution per column of B in fixed col↑ order.
//
// Behavior highlights:
//   - A and B are never mutated; X is a fresh Dense of B's shape.
//   - Workspaces y/x are allocated once and reused across columns.
//
// Inputs:
//   - a: square system matrix (n×n).
//   - b: right-hand side (n×k, k ≥ 1).
//   - opts: WithEpsilon to tune the singularity tolerance.
//
// Returns:
//   - Matrix: Dense X (n×k) with A·X = B.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (validation);
//     ErrSingular (factorization) — wrapped with the Solve tag.
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓), no pivoting.
//
// Complexity:
//   - Time O(n³ + k·n²), Space O(n²).
//
// AI-Hints:
//   - To invert, prefer Inverse(m) over Solve(m, I): it skips materializing
//     the identity and reads basis columns implicitly.
func Solve(a, b Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSolveCompatible(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	ad, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	bd, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	l, u, err := lu(ad, o.eps)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n, k := bd.r, bd.c
	res, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		col, i int
		y      = make([]float64, n) // forward substitution workspace
		x      = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < k; col++ {
		c := col // capture for the column accessor
		luSubstitute(l, u, func(i int) float64 { return bd.data[i*k+c] }, y, x)
		// Write x into column col of the result.
		for i = 0; i < n; i++ {
			res.data[i*k+col] = x[i]
		}
	}

	return res, nil
}

// Inverse computes A⁻¹ via Doolittle LU and per-basis-column substitution.
// Equivalent to Solve(m, I_n) without materializing the identity: the
// canonical basis column e_col is read implicitly.
// Implementation:
//   - Stage 1: ValidateSquare(m); normalize into *Dense; factorize via lu.
//   - Stage 2: for each basis column, forward/backward substitute and write
//     the solution into column col of the result.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithEpsilon to tune the singularity tolerance.
//
// Returns:
//   - Matrix: Dense(n×n) containing A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation); ErrSingular (factorization) —
//     wrapped with the Inverse tag.
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - If you only need A⁻¹·b, call Solve(A, b) — it is the same work for one
//     column instead of n.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	l, u, err := lu(d, o.eps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i int
		y      = make([]float64, n) // forward substitution workspace
		x      = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		c := col // canonical basis column e_c, read implicitly
		luSubstitute(l, u, func(i int) float64 {
			if i == c {
				return 1.0
			}
			return 0.0
		}, y, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate A,B non-nil and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: normalize into *Dense and run the i→k→j loop with row-major
//     strides, skipping zero A[i,k] entries.
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch — wrapped with the Mul tag.
//
// Determinism:
//   - Fixed i→k→j loop order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := ad.r, ad.c, bd.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for k = 0; k < inner; k++ {
			av = ad.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * cols
			for j = 0; j < cols; j++ {
				res.data[rowR+j] += av * bd.data[rowB+j]
			}
		}
	}

	return res, nil
}
