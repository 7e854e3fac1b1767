// SPDX-License-Identifier: MIT
// Package matrix provides the allocating linear-algebra kernels: element-wise
// addition and subtraction, matrix multiplication and transpose. Every kernel
// performs strict fail-fast validation before it allocates from the arena.
//
// Purpose:
//   - Declare the canonical allocating kernels used by the equation layer.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Outputs are carved from the arena passed in, never from the operands' arena
//     implicitly: the caller decides which arena scratch results land in.
//   - Arena memory is not zeroed; kernels that accumulate clear their output first.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lna/arena"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = float32(0)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opClone      = "Clone"
	opSumRows    = "SumRows"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
	opScale      = "Scale"
	opAddScalar  = "AddScalar"
	opSubScalar  = "SubScalar"
	opAddRow     = "AddRowInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = lhs + sign*rhs for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(lhs, rhs).
//   - Stage 2: allocate the result from a; single flat loop 0..n-1.
//
// Errors:
//   - ErrInvalidStorage (nil/dangling operand, nil or exhausted arena).
//   - ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) of arena.
func addSub(a *arena.Arena, lhs, rhs *Matrix, sign float32, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(lhs, rhs); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := New(a, lhs.r, lhs.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := len(res.data)
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		res.data[idx] = lhs.data[idx] + sign*rhs.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh matrix from a.
// Operands are never mutated; a failing call allocates nothing.
//
// Errors:
//   - ErrInvalidStorage, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a *arena.Arena, lhs, rhs *Matrix) (*Matrix, error) { return addSub(a, lhs, rhs, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh matrix from a.
// Same contract as Add.
func Sub(a *arena.Arena, lhs, rhs *Matrix) (*Matrix, error) { return addSub(a, lhs, rhs, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B into a fresh matrix from a.
// Implementation:
//   - Stage 1: validate operands and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: allocate C, clear it, accumulate with i→k→j row-major strides,
//     skipping zero A[i,k].
//
// Inputs:
//   - lhs: shape (r × n); rhs: shape (n × c).
//
// Returns:
//   - *Matrix: C with shape (r × c).
//
// Errors:
//   - ErrInvalidStorage, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - The zero skip means 0×Inf does not produce NaN; softmax inputs are finite
//     in practice so this never matters for training.
func Mul(a *arena.Arena, lhs, rhs *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(lhs, rhs); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := lhs.r, lhs.c, rhs.c
	res, err := New(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	clear(res.data)

	var (
		i, j, k                            int
		av                                 float32
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// lhs.data layout: i*aCols + k; rhs.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = lhs.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * rhs.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix from a with (r,c) → (c,r).
// The input is never mutated.
//
// Errors:
//   - ErrInvalidStorage (nil arena, nil/dangling input, exhausted arena).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(a *arena.Arena, m *Matrix) (*Matrix, error) {
	if err := ValidateArena(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateStorage(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := New(a, cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// SumRows reduces m over its rows into a fresh, zero-initialised 1×cols matrix.
// This is the bias gradient of a row-broadcast bias.
//
// Errors:
//   - ErrInvalidStorage.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func SumRows(a *arena.Arena, m *Matrix) (*Matrix, error) {
	if err := ValidateStorage(m); err != nil {
		return nil, matrixErrorf(opSumRows, err)
	}
	res, err := New(a, 1, m.c)
	if err != nil {
		return nil, matrixErrorf(opSumRows, err)
	}
	clear(res.data)

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j] += m.data[base+j]
		}
	}

	return res, nil
}

// Clone copies m into a fresh matrix from a (possibly a different arena).
//
// Errors:
//   - ErrInvalidStorage.
func Clone(a *arena.Arena, m *Matrix) (*Matrix, error) {
	if err := ValidateStorage(m); err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	res, err := New(a, m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opClone, err)
	}
	copy(res.data, m.data)

	return res, nil
}
