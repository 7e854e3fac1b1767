// SPDX-License-Identifier: MIT

package equation

import (
	"github.com/chewxy/math32"
	"github.com/katalvlaran/lna/matrix"
)

// CrossEntropy returns the mean negative log-likelihood of the true classes:
//
//	L = (1/N) Σ_i -ln(max(probs[i, labels[i]], Epsilon))
//
// Errors:
//   - ErrInvalidStorage for bad probs.
//   - ErrDimensionMismatch when len(labels) != probs.Rows().
//   - ErrInvalidLabel when a label is outside [0, probs.Cols()).
func CrossEntropy(probs *matrix.Matrix, labels []int) (float32, error) {
	if err := matrix.ValidateStorage(probs); err != nil {
		return 0, equationErrorf("CrossEntropy", err)
	}
	n, classes := probs.Shape()
	if err := matrix.ValidateLabels(labels, n, classes); err != nil {
		return 0, equationErrorf("CrossEntropy", err)
	}

	var sum float32
	for i, y := range labels {
		p, err := probs.At(i, y)
		if err != nil {
			return 0, equationErrorf("CrossEntropy", err)
		}
		sum -= math32.Log(math32.Max(p, Epsilon))
	}

	return sum / float32(n), nil
}

// SoftmaxXentBackwardInPlace turns probs into the logits gradient of the
// mean cross-entropy: probs[i,j] = (probs[i,j] - [j == labels[i]]) / N.
// Labels are validated before the first write.
//
// Errors: as CrossEntropy.
func SoftmaxXentBackwardInPlace(probs *matrix.Matrix, labels []int) error {
	if err := matrix.ValidateStorage(probs); err != nil {
		return equationErrorf("SoftmaxXentBackwardInPlace", err)
	}
	n, classes := probs.Shape()
	if err := matrix.ValidateLabels(labels, n, classes); err != nil {
		return equationErrorf("SoftmaxXentBackwardInPlace", err)
	}

	for i, y := range labels {
		row, err := probs.Row(i)
		if err != nil {
			return equationErrorf("SoftmaxXentBackwardInPlace", err)
		}
		row[y] -= 1
	}

	return matrix.Scale(probs, 1/float32(n))
}
