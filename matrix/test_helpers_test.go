// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// closeTol is the comparison tolerance used by CompareClose.
const closeTol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing kernels down the interface normalization path (denseOf copy)
// instead of the *Dense pass-through.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose asserts got ≈ want element-wise within closeTol.
// Shapes must match exactly; the first deviation aborts the test with
// coordinates for fast diagnosis.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), got.Rows(), got.Cols())
	}
	var i, j int
	var v float64
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			v = MustAt(t, got, i, j)
			if math.Abs(v-want[i][j]) > closeTol {
				t.Fatalf("element [%d,%d]: want %g, got %g", i, j, want[i][j], v)
			}
		}
	}
}
