// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matprint/matrix"
)

// sample is the 3×2 fixture used across the repository.
var sample = []float64{3.14159, 2.71828, 1.41421, 0.57721, -1.0, 42.0}

// MustDense wraps data as rows×cols or fails the test.
func MustDense[T matrix.Number](t *testing.T, data []T, rows, cols int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense(data, rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
