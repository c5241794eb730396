// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and constructors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

func TestNewDense_DefaultZero(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// Immediately after creation all elements should be 0.
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if MustAt(t, m, i, j) != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -4},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1.0), matrix.ErrOutOfRange)

	// In-bounds round-trip.
	MustSet(t, m, 1, 2, 42.5)
	require.Equal(t, 42.5, MustAt(t, m, 1, 2))
}

func TestDense_Set_NumericPolicy(t *testing.T) {
	t.Parallel()

	// Default policy rejects NaN and ±Inf.
	strict := MustDense(t, 2, 2)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	// Relaxed policy lets non-finite values through.
	loose, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	v, err := loose.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

func TestDense_Clone_Independence(t *testing.T) {
	t.Parallel()

	orig := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := orig.Clone()

	// Mutating the copy must not leak into the original.
	MustSet(t, cp, 0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, orig, 0, 0))
	require.Equal(t, 99.0, MustAt(t, cp, 0, 0))
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2.5}, {0, -3}})
	require.Equal(t, "[1, 2.5]\n[0, -3]\n", m.String())
}

func TestFromRows_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Ragged input must be rejected.
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Policy applies during ingestion.
	_, err = matrix.FromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	ident, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, ident)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestIdentityLike(t *testing.T) {
	t.Parallel()

	sq := MustFromRows(t, [][]float64{{7, 8}, {9, 10}})
	ident, err := matrix.IdentityLike(sq)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 0}, {0, 1}}, ident)

	rect := MustDense(t, 2, 3)
	_, err = matrix.IdentityLike(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.IdentityLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIsIdentity(t *testing.T) {
	t.Parallel()

	ident, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	ok, err := matrix.IsIdentity(ident, matrix.DefaultEpsilon)
	require.NoError(t, err)
	require.True(t, ok)

	// Near-identity within a loose tolerance.
	near := MustFromRows(t, [][]float64{{1.0 + 1e-12, 0}, {0, 1}})
	ok, err = matrix.IsIdentity(near, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	// All-zero square matrix must NOT pass.
	zero := MustDense(t, 2, 2)
	ok, err = matrix.IsIdentity(zero, matrix.DefaultEpsilon)
	require.NoError(t, err)
	require.False(t, ok)

	// Off-diagonal violation.
	off := MustFromRows(t, [][]float64{{1, 0.5}, {0, 1}})
	ok, err = matrix.IsIdentity(off, matrix.DefaultEpsilon)
	require.NoError(t, err)
	require.False(t, ok)

	// Structural failures.
	_, err = matrix.IsIdentity(nil, matrix.DefaultEpsilon)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	rect := MustDense(t, 2, 3)
	_, err = matrix.IsIdentity(rect, matrix.DefaultEpsilon)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.IsIdentity(ident, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
