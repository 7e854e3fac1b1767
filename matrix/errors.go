// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the equation/model layers built on it. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations wrap
// with "<Op>: %w" via matrixErrorf; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/unissued storage -> dimension mismatch -> dangling storage -> allocation.

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where lhs.Cols != rhs.Rows, or a bias
	// that is not 1×cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidStorage indicates an operand without usable storage (nil or zero
	// Matrix, nil arena) or an arena that could not satisfy an allocation.
	ErrInvalidStorage = errors.New("matrix: invalid storage")

	// ErrInvalidLabel indicates a class label outside [0, classes).
	ErrInvalidLabel = errors.New("matrix: invalid label")

	// ErrUnimplemented marks a configuration path that is intentionally not built.
	ErrUnimplemented = errors.New("matrix: operation not implemented")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ErrDanglingMatrix is returned when a matrix is used after its arena was
// rewound below the end of its region. It is a refinement of ErrInvalidStorage:
// errors.Is(ErrDanglingMatrix, ErrInvalidStorage) holds.
var ErrDanglingMatrix = fmt.Errorf("%w: arena rewound below matrix", ErrInvalidStorage)
