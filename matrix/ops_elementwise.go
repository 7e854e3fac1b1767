// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the in-place element-wise, scalar and broadcast kernels used by the
//     gradient and update stages of training.
//   - Never allocate: every kernel writes into its left operand.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 (row-major), or i→j for broadcasts.
//   - Validation happens before the first write; a failing call leaves the
//     destination untouched.

package matrix

// ewInPlace applies dst[k] = f(dst[k], src[k]) over two same-shaped matrices.
func ewInPlace(dst, src *Matrix, opTag string, f func(x, y float32) float32) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opTag, err)
	}
	n := len(dst.data)
	for k := 0; k < n; k++ {
		dst.data[k] = f(dst.data[k], src.data[k])
	}

	return nil
}

// AddInPlace performs lhs += rhs.
//
// Errors:
//   - ErrInvalidStorage, ErrDimensionMismatch.
func AddInPlace(lhs, rhs *Matrix) error {
	return ewInPlace(lhs, rhs, opAddInPlace, func(x, y float32) float32 { return x + y })
}

// SubInPlace performs lhs -= rhs.
func SubInPlace(lhs, rhs *Matrix) error {
	return ewInPlace(lhs, rhs, opSubInPlace, func(x, y float32) float32 { return x - y })
}

// MulInPlace performs the element-wise (Hadamard) product lhs *= rhs.
// It is NOT a matrix product: use Mul for that.
func MulInPlace(lhs, rhs *Matrix) error {
	return ewInPlace(lhs, rhs, opMulInPlace, func(x, y float32) float32 { return x * y })
}

// scalarInPlace applies m[k] = f(m[k]) after a storage check.
func scalarInPlace(m *Matrix, opTag string, f func(x float32) float32) error {
	if err := ValidateStorage(m); err != nil {
		return matrixErrorf(opTag, err)
	}
	for k := range m.data {
		m.data[k] = f(m.data[k])
	}

	return nil
}

// Scale multiplies every element of m by s.
// Complexity: Time O(r*c), Space O(1).
func Scale(m *Matrix, s float32) error {
	return scalarInPlace(m, opScale, func(x float32) float32 { return x * s })
}

// AddScalar adds s to every element of m.
func AddScalar(m *Matrix, s float32) error {
	return scalarInPlace(m, opAddScalar, func(x float32) float32 { return x + s })
}

// SubScalar subtracts s from every element of m.
func SubScalar(m *Matrix, s float32) error {
	return scalarInPlace(m, opSubScalar, func(x float32) float32 { return x - s })
}

// AddRowInPlace broadcasts the 1×cols row vector bias over every row of m:
// m[i,j] += bias[0,j].
//
// Errors:
//   - ErrInvalidStorage.
//   - ErrDimensionMismatch when bias is not 1×m.Cols().
//
// Complexity: Time O(r*c), Space O(1).
func AddRowInPlace(m, bias *Matrix) error {
	if err := ValidateRowVector(m, bias); err != nil {
		return matrixErrorf(opAddRow, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] += bias.data[j]
		}
	}

	return nil
}
