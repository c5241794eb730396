// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - IsIdentity runs a single O(n²) pass over the matrix.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSolveCompatible — Composite: NotNil(a) → Square(a) → NotNil(b) →
// a.Rows == b.Rows. This is the admission check for Solve(a, b): the system
// matrix must be square and the right-hand side must have a matching row
// count (any column count is legal).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSolveCompatible(a, b Matrix) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSolveCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSolveCompatible", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSolveCompatible", ErrDimensionMismatch)
	}

	return nil
}

// IsIdentity reports whether m equals the identity matrix within tolerance
// eps: |m[i,j] − δ_ij| ≤ eps for all (i,j).
// Implementation:
//   - Stage 1: validate m non-nil and square; normalize eps (NaN/Inf rejected,
//     negative flipped to absolute value).
//   - Stage 2: single deterministic i→j scan with early negative exit.
//
// Inputs:
//   - m: square Matrix to test.
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - bool: true when every entry matches the identity within eps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on structural issues; ErrNaNInf on bad eps.
//
// Determinism:
//   - Fixed i→j order ensures a reproducible short-circuit point.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - Use before treating a caller-supplied right-hand side as "the identity";
//     an all-zero or permuted matrix must not pass.
func IsIdentity(m Matrix, eps float64) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, validatorErrorf("IsIdentity", err)
	}
	if isNonFinite(eps) {
		return false, validatorErrorf("IsIdentity", ErrNaNInf)
	}
	if eps < 0 {
		eps = -eps
	}

	n := m.Rows()
	var (
		i, j int     // loop counters
		v    float64 // current entry
		want float64 // 1 on the diagonal, 0 elsewhere
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // At is O(1); errors are not expected after shape validation
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(v-want) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
