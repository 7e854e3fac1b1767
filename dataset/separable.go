// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/internal/rng"
	"github.com/katalvlaran/lna/matrix"
)

// Generator defaults.
const (
	DefaultScale  = float32(5)
	DefaultJitter = float32(0.5)
)

// Random stream ids, so labels and jitter do not depend on each other.
const (
	streamOrder uint64 = iota + 1
	streamJitter
)

// SeparableSpec describes a synthetic classification problem.
// Class k is centred at Scale·e_k (the k-th unit vector); every coordinate
// gets independent uniform jitter in [-Jitter, Jitter).
// Zero Scale and Jitter select DefaultScale and DefaultJitter; a zero Seed
// selects the package default seed.
type SeparableSpec struct {
	Samples  int
	Features int
	Classes  int
	Scale    float32
	Jitter   float32
	Seed     int64
}

// Separable allocates a Samples×Features batch from a and fills it with
// deterministic, linearly separable clusters. Classes appear as evenly as
// possible (sample i of the unshuffled order has label i mod Classes) and the
// order is then shuffled.
//
// Separability holds whenever Jitter < Scale/2: the k-th coordinate is then
// the largest one for every sample of class k.
//
// Errors:
//   - ErrInvalidSpec for non-positive counts, Features < Classes, Classes < 2,
//     negative Scale/Jitter or Jitter >= Scale/2.
//   - ErrInvalidStorage when the arena cannot hold the batch.
func Separable(a *arena.Arena, spec SeparableSpec) (*Dataset, error) {
	if spec.Scale == 0 {
		spec.Scale = DefaultScale
	}
	if spec.Jitter == 0 {
		spec.Jitter = DefaultJitter
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("Separable: %w", err)
	}

	batch, err := matrix.New(a, spec.Samples, spec.Features)
	if err != nil {
		return nil, fmt.Errorf("Separable: %w", err)
	}

	labels := make([]int, spec.Samples)
	for i := range labels {
		labels[i] = i % spec.Classes
	}
	rng.ShuffleInts(labels, rng.Derive(spec.Seed, streamOrder))

	jitter := rng.Derive(spec.Seed, streamJitter)
	for i, k := range labels {
		row, err := batch.Row(i)
		if err != nil {
			return nil, fmt.Errorf("Separable: %w", err)
		}
		for j := range row {
			row[j] = rng.Uniform(jitter, -spec.Jitter, spec.Jitter)
		}
		row[k] += spec.Scale
	}

	return &Dataset{Samples: spec.Samples, Labeled: true, Batch: batch, Labels: labels}, nil
}

func (s SeparableSpec) validate() error {
	switch {
	case s.Samples <= 0 || s.Features <= 0 || s.Classes < 2:
		return fmt.Errorf("samples=%d features=%d classes=%d: %w", s.Samples, s.Features, s.Classes, ErrInvalidSpec)
	case s.Features < s.Classes:
		return fmt.Errorf("features=%d < classes=%d: %w", s.Features, s.Classes, ErrInvalidSpec)
	case s.Scale < 0 || s.Jitter < 0 || s.Jitter >= s.Scale/2:
		return fmt.Errorf("scale=%g jitter=%g: %w", s.Scale, s.Jitter, ErrInvalidSpec)
	}

	return nil
}
