// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrUnlabeled is returned when an operation needs labels and the dataset has none.
	ErrUnlabeled = errors.New("dataset: no labels")

	// ErrInvalidSpec is returned by Separable for a generator spec that cannot
	// produce separable clusters (e.g. fewer features than classes).
	ErrInvalidSpec = errors.New("dataset: invalid generator spec")
)
