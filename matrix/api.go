// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions.
//   - Each facade delegates to the canonical constructor; no logic duplication.

package matrix

import "github.com/katalvlaran/lna/arena"

// ZerosLike allocates a zero-filled matrix from a with the shape of m.
//
// Errors:
//   - ErrInvalidStorage (bad m, nil or exhausted arena).
func ZerosLike(a *arena.Arena, m *Matrix) (*Matrix, error) {
	if err := ValidateStorage(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(a, m.r, m.c)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere) from a.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(a *arena.Arena, n int) (*Matrix, error) {
	m, err := NewZeros(a, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
