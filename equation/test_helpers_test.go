// SPDX-License-Identifier: MIT

package equation_test

import (
	"testing"

	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/matrix"
)

// MustArena builds an arena over a fresh n-byte buffer or fails the test.
func MustArena(t *testing.T, n int) *arena.Arena {
	t.Helper()
	a, err := arena.New(make([]byte, n))
	if err != nil {
		t.Fatalf("arena.New(%d): %v", n, err)
	}

	return a
}

// MustFromRows allocates a matrix from literal rows or fails the test.
func MustFromRows(t *testing.T, a *arena.Arena, rows [][]float32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(a, rows)
	if err != nil {
		t.Fatalf("matrix.FromRows: %v", err)
	}

	return m
}

// MustValues copies the elements out or fails the test.
func MustValues(t *testing.T, m *matrix.Matrix) []float32 {
	t.Helper()
	v, err := m.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}

	return v
}

// rowSums returns the sum of every row of m.
func rowSums(t *testing.T, m *matrix.Matrix) []float32 {
	t.Helper()
	out := make([]float32, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		for _, v := range row {
			out[i] += v
		}
	}

	return out
}
