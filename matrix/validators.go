// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/liveness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence: NotNil → Shape → Live.
//    Shape errors therefore win over dangling storage, so a dimension-incompatible
//    call reports ErrDimensionMismatch deterministically.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lna/arena"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateArena ensures an allocation target is present.
// Returns ErrInvalidStorage for a nil arena.
func ValidateArena(a *arena.Arena) error {
	if a == nil {
		return validatorErrorf("ValidateArena", ErrInvalidStorage)
	}

	return nil
}

// ValidateNotNil ensures m is a matrix that was issued by an allocating call.
// A nil pointer or a zero Matrix{} yields ErrInvalidStorage.
// It does not check liveness; see ValidateLive.
func ValidateNotNil(m *Matrix) error {
	if m == nil || m.arena == nil || m.data == nil {
		return validatorErrorf("ValidateNotNil", ErrInvalidStorage)
	}

	return nil
}

// ValidateLive ensures the arena region behind m was not rewound over.
// Assumes ValidateNotNil passed.
func ValidateLive(m *Matrix) error {
	if !m.arena.Live(m.region) {
		return validatorErrorf("ValidateLive", ErrDanglingMatrix)
	}

	return nil
}

// ValidateStorage – Composite: NotNil → Live.
func ValidateStorage(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateLive(m)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape → Live(a) → Live(b).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows → Live(a) → Live(b).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	if err := ValidateLive(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateLive(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}

	return nil
}

// ValidateRowVector – Composite: NotNil(m) → NotNil(v) → v is 1×m.Cols → Live(m) → Live(v).
// Used for row-wise broadcast of a bias.
func ValidateRowVector(m, v *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowVector", err)
	}
	if err := ValidateNotNil(v); err != nil {
		return validatorErrorf("ValidateRowVector", err)
	}
	if v.r != 1 || v.c != m.c {
		return validatorErrorf("ValidateRowVector", ErrDimensionMismatch)
	}
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidateRowVector", err)
	}
	if err := ValidateLive(v); err != nil {
		return validatorErrorf("ValidateRowVector", err)
	}

	return nil
}

// ValidateLabels ensures labels has one entry per row and every label is in
// [0, classes). Length mismatch → ErrDimensionMismatch; bad value → ErrInvalidLabel.
func ValidateLabels(labels []int, rows, classes int) error {
	if len(labels) != rows {
		return validatorErrorf("ValidateLabels", fmt.Errorf("%d labels for %d rows: %w", len(labels), rows, ErrDimensionMismatch))
	}
	for i, y := range labels {
		if y < 0 || y >= classes {
			return validatorErrorf("ValidateLabels", fmt.Errorf("label[%d]=%d not in [0,%d): %w", i, y, classes, ErrInvalidLabel))
		}
	}

	return nil
}
