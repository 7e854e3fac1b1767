// SPDX-License-Identifier: MIT

package equation

import "github.com/katalvlaran/lna/matrix"

// Argmax returns, for each row of probs, the column holding the largest value.
// Ties resolve to the lowest column. The result is a heap slice and stays
// valid after the arena is rewound.
func Argmax(probs *matrix.Matrix) ([]int, error) {
	if err := matrix.ValidateStorage(probs); err != nil {
		return nil, equationErrorf("Argmax", err)
	}

	out := make([]int, probs.Rows())
	for i := range out {
		row, err := probs.Row(i)
		if err != nil {
			return nil, equationErrorf("Argmax", err)
		}
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		out[i] = best
	}

	return out, nil
}

// Accuracy returns the fraction of rows whose argmax equals the label.
//
// Errors: as CrossEntropy.
func Accuracy(probs *matrix.Matrix, labels []int) (float32, error) {
	if err := matrix.ValidateStorage(probs); err != nil {
		return 0, equationErrorf("Accuracy", err)
	}
	if err := matrix.ValidateLabels(labels, probs.Rows(), probs.Cols()); err != nil {
		return 0, equationErrorf("Accuracy", err)
	}
	pred, err := Argmax(probs)
	if err != nil {
		return 0, equationErrorf("Accuracy", err)
	}

	hits := 0
	for i, y := range labels {
		if pred[i] == y {
			hits++
		}
	}

	return float32(hits) / float32(len(labels)), nil
}
