// SPDX-License-Identifier: MIT
// Package cache_test: shared fixtures for the container and facade tests.
package cache_test

import (
	"testing"

	apexlog "github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

// closeTol is the comparison tolerance for float assertions in this package.
const closeTol = 1e-9

// mustFromRows builds a *Dense from literal rows or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads one element or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// newMemLogger returns an Info-level logger backed by an in-memory handler,
// so tests can assert on the exact notices a resolve emitted.
func newMemLogger() (*apexlog.Logger, *memory.Handler) {
	h := memory.New()

	return &apexlog.Logger{Handler: h, Level: apexlog.InfoLevel}, h
}

// countingMatrix wraps a Matrix and counts element reads. It hides the
// concrete type, so the solver must go through At — which makes the counter
// a reliable witness that a resolve did (or did not) touch the matrix data.
type countingMatrix struct {
	inner matrix.Matrix
	atN   int
}

func (c *countingMatrix) Rows() int { return c.inner.Rows() }
func (c *countingMatrix) Cols() int { return c.inner.Cols() }

func (c *countingMatrix) At(i, j int) (float64, error) {
	c.atN++

	return c.inner.At(i, j)
}

func (c *countingMatrix) Set(i, j int, v float64) error { return c.inner.Set(i, j, v) }
func (c *countingMatrix) Clone() matrix.Matrix          { return &countingMatrix{inner: c.inner.Clone()} }
