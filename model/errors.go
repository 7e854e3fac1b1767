// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrInvalidConfig is returned for a problem shape or hyper-parameter that
	// cannot be trained: non-positive features, fewer than two classes, a nil
	// arena, a negative step count or a non-positive learning rate.
	ErrInvalidConfig = errors.New("model: invalid configuration")

	// ErrNilDataset is returned when Train or Evaluate receive no dataset.
	ErrNilDataset = errors.New("model: nil dataset")
)
