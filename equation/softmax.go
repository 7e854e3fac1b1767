// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/matrix"
)

// Epsilon is the probability floor used by CrossEntropy so the loss stays finite.
const Epsilon = float32(1e-12)

// equationErrorf wraps err with an operation tag.
func equationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Softmax returns the row-wise softmax of logits as a fresh matrix from a.
// Each row is shifted by its maximum before exponentiation, then normalised
// by multiplying with the reciprocal of the row sum. logits is not modified.
//
// Errors:
//   - ErrInvalidStorage (bad logits, nil or exhausted arena).
//
// Complexity: Time O(r*c), Space O(r*c).
func Softmax(a *arena.Arena, logits *matrix.Matrix) (*matrix.Matrix, error) {
	out, err := matrix.Clone(a, logits)
	if err != nil {
		return nil, equationErrorf("Softmax", err)
	}

	for i := 0; i < out.Rows(); i++ {
		row, err := out.Row(i)
		if err != nil {
			return nil, equationErrorf("Softmax", err)
		}
		softmaxRow(row)
	}

	return out, nil
}

// softmaxRow normalises row in place.
func softmaxRow(row []float32) {
	maxv := math32.Inf(-1)
	for _, v := range row {
		if v > maxv {
			maxv = v
		}
	}
	var sum float32
	for j, v := range row {
		e := math32.Exp(v - maxv)
		row[j] = e
		sum += e
	}
	// sum >= 1: the max element contributes exp(0).
	inv := 1 / sum
	for j := range row {
		row[j] *= inv
	}
}

// Forward computes P = softmax(X·W + b) from a, leaving X, W and b untouched.
//
// Errors:
//   - ErrDimensionMismatch when X.Cols != W.Rows or b is not 1×W.Cols.
//   - ErrInvalidStorage.
func Forward(a *arena.Arena, x, w, b *matrix.Matrix) (*matrix.Matrix, error) {
	logits, err := matrix.Mul(a, x, w)
	if err != nil {
		return nil, equationErrorf("Forward", err)
	}
	if err = matrix.AddRowInPlace(logits, b); err != nil {
		return nil, equationErrorf("Forward", err)
	}

	return Softmax(a, logits)
}
