// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the arena-backed kernels.
//   - Keep all data finite so numeric comparisons stay exact or near-exact.

package matrix_test

import (
	"math/rand"

	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/matrix"
)

// tb is the subset of testing.TB the helpers need (shared by tests and benchmarks).
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MustArena builds an arena over a fresh n-byte buffer or fails the test.
func MustArena(t tb, n int) *arena.Arena {
	t.Helper()
	a, err := arena.New(make([]byte, n))
	if err != nil {
		t.Fatalf("arena.New(%d): %v", n, err)
	}

	return a
}

// MustFromRows allocates a matrix from literal rows or fails the test.
func MustFromRows(t tb, a *arena.Arena, rows [][]float32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(a, rows)
	if err != nil {
		t.Fatalf("matrix.FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t tb, m *matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustValues copies the elements out or fails the test.
func MustValues(t tb, m *matrix.Matrix) []float32 {
	t.Helper()
	v, err := m.Values()
	if err != nil {
		t.Fatalf("Values: %v", err)
	}

	return v
}

// randRows returns an r×c literal filled with values in [-1, 1) from a fixed seed.
func randRows(r, c int, seed int64) [][]float32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float32, r)
	for i := range out {
		out[i] = make([]float32, c)
		for j := range out[i] {
			out[i][j] = rng.Float32()*2 - 1
		}
	}

	return out
}
