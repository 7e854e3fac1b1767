// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"

	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/matrix"
)

// Stage names reported by TrainStep errors.
const (
	StageForward  = "forward"
	StageSoftmax  = "softmax"
	StageLoss     = "loss"
	StageBackward = "backward"
	StageGradient = "gradient"
	StageUpdate   = "update"
)

// stageErrorf tags err with the TrainStep stage it came from.
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("TrainStep: %s: %w", stage, err)
}

// TrainStep runs one full-batch gradient-descent step of softmax regression
// and returns the loss measured before the update.
//
// Implementation:
//   - forward:  Z = X·W, Z += b
//   - softmax:  P = softmax(Z)
//   - loss:     L = CrossEntropy(P, labels)
//   - backward: P becomes dZ = (P - Y)/N
//   - gradient: dW = Xᵀ·dZ, db = Σ_rows dZ
//   - update:   W -= lr·dW, b -= lr·db
//
// The first failing stage ends the step; its error is returned wrapped as
// "TrainStep: <stage>: ...". W and b are only written in the update stage, and
// every shape the update needs was checked by forward, so a failed step leaves
// the parameters unchanged.
//
// All intermediates are allocated from a and stay allocated on return.
func TrainStep(a *arena.Arena, x *matrix.Matrix, labels []int, w, b *matrix.Matrix, lr float32) (float32, error) {
	logits, err := matrix.Mul(a, x, w)
	if err != nil {
		return 0, stageErrorf(StageForward, err)
	}
	if err = matrix.AddRowInPlace(logits, b); err != nil {
		return 0, stageErrorf(StageForward, err)
	}

	probs, err := Softmax(a, logits)
	if err != nil {
		return 0, stageErrorf(StageSoftmax, err)
	}

	loss, err := CrossEntropy(probs, labels)
	if err != nil {
		return 0, stageErrorf(StageLoss, err)
	}

	if err = SoftmaxXentBackwardInPlace(probs, labels); err != nil {
		return 0, stageErrorf(StageBackward, err)
	}
	dz := probs

	xt, err := matrix.Transpose(a, x)
	if err != nil {
		return 0, stageErrorf(StageGradient, err)
	}
	dw, err := matrix.Mul(a, xt, dz)
	if err != nil {
		return 0, stageErrorf(StageGradient, err)
	}
	db, err := matrix.SumRows(a, dz)
	if err != nil {
		return 0, stageErrorf(StageGradient, err)
	}

	if err = matrix.Scale(dw, lr); err != nil {
		return 0, stageErrorf(StageUpdate, err)
	}
	if err = matrix.Scale(db, lr); err != nil {
		return 0, stageErrorf(StageUpdate, err)
	}
	if err = matrix.SubInPlace(w, dw); err != nil {
		return 0, stageErrorf(StageUpdate, err)
	}
	if err = matrix.SubInPlace(b, db); err != nil {
		return 0, stageErrorf(StageUpdate, err)
	}

	return loss, nil
}
