// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/lna/matrix"
)

// Dataset is a batch of samples with optional integer class labels.
//   - Batch is Samples×features.
//   - Labels has one entry per row when Labeled, nil otherwise.
type Dataset struct {
	Samples int
	Labeled bool
	Batch   *matrix.Matrix
	Labels  []int
}

// New wraps a labeled batch. Labels are not range-checked here: the class
// count is a model property, see Validate.
//
// Errors:
//   - ErrInvalidStorage for a bad batch.
//   - ErrDimensionMismatch when len(labels) != batch.Rows().
func New(batch *matrix.Matrix, labels []int) (*Dataset, error) {
	if err := matrix.ValidateStorage(batch); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if len(labels) != batch.Rows() {
		return nil, fmt.Errorf("New: %d labels for %d samples: %w", len(labels), batch.Rows(), matrix.ErrDimensionMismatch)
	}

	return &Dataset{Samples: batch.Rows(), Labeled: true, Batch: batch, Labels: labels}, nil
}

// NewUnlabeled wraps a batch used for inference only.
func NewUnlabeled(batch *matrix.Matrix) (*Dataset, error) {
	if err := matrix.ValidateStorage(batch); err != nil {
		return nil, fmt.Errorf("NewUnlabeled: %w", err)
	}

	return &Dataset{Samples: batch.Rows(), Batch: batch}, nil
}

// Features returns the column count of the batch.
func (d *Dataset) Features() int { return d.Batch.Cols() }

// Validate checks the dataset is usable for training a classes-way model:
// live batch, Samples consistent with it, labels present and in [0, classes).
//
// Errors:
//   - ErrUnlabeled, ErrInvalidStorage, ErrDimensionMismatch, ErrInvalidLabel.
func (d *Dataset) Validate(classes int) error {
	if !d.Labeled {
		return fmt.Errorf("Validate: %w", ErrUnlabeled)
	}
	if err := matrix.ValidateStorage(d.Batch); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	if d.Samples != d.Batch.Rows() {
		return fmt.Errorf("Validate: Samples=%d, batch rows=%d: %w", d.Samples, d.Batch.Rows(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateLabels(d.Labels, d.Samples, classes); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	return nil
}
