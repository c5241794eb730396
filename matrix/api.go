// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//   - Keep function names explicit and intention-revealing.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and
//     neutral elements; FromRows for literal test fixtures.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
//
// AI-Hints: the neutral element for Mul; the only legal auxiliary right-hand
// side for the cache package's resolve operation.
func NewIdentity(n int) (*Dense, error) {
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1.0
	}

	return ident, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n²). Validates square via the central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// FromRows builds a *Dense from a non-empty, rectangular [][]float64.
// Implementation:
//   - Stage 1: validate the slice is non-empty and every row has the same
//     positive length.
//   - Stage 2: allocate via NewDense and copy row by row through Set, so the
//     numeric policy applies to every ingested value.
//
// Inputs:
//   - rows: literal row data; rows[i][j] becomes element (i,j).
//   - opts: optional numeric policy (WithNoValidateNaNInf).
//
// Returns:
//   - *Dense: independent copy of the input data.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrDimensionMismatch (ragged rows),
//     ErrNaNInf (non-finite value under the active policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])

	d, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf("FromRows", ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf("FromRows", err)
			}
		}
	}

	return d, nil
}
