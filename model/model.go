// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lna/dataset"
	"github.com/katalvlaran/lna/equation"
	"github.com/katalvlaran/lna/internal/rng"
	"github.com/katalvlaran/lna/matrix"
)

// weight stream id for InitUniform.
const streamWeights uint64 = 1

// Model is a softmax regression classifier: P = softmax(X·W + b).
//   - weights is F×C, biases is 1×C, both allocated from cfg.Arena by New.
//   - features is the last batch passed to Train, Infer, Predict or Evaluate.
//
// Not safe for concurrent use: it shares its arena with every call.
type Model struct {
	cfg      Config
	opts     Options
	weights  *matrix.Matrix
	biases   *matrix.Matrix
	features *matrix.Matrix
}

// New allocates and initialises the parameters of a model for cfg.
//
// Errors:
//   - ErrInvalidConfig when cfg did not come from NewConfig (or is otherwise invalid).
//   - matrix.ErrUnimplemented for an unknown InitScheme.
//   - matrix.ErrInvalidStorage when the arena cannot hold the parameters.
//
// Nothing is allocated when validation fails.
func New(cfg Config, opts ...Option) (*Model, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o := gatherOptions(opts...)
	if o.init != InitZero && o.init != InitUniform {
		return nil, fmt.Errorf("New: init %v: %w", o.init, matrix.ErrUnimplemented)
	}

	w, err := matrix.NewZeros(cfg.Arena, cfg.Features, cfg.Classes)
	if err != nil {
		return nil, fmt.Errorf("New: weights: %w", err)
	}
	b, err := matrix.NewZeros(cfg.Arena, 1, cfg.Classes)
	if err != nil {
		return nil, fmt.Errorf("New: biases: %w", err)
	}

	if o.init == InitUniform {
		r := rng.Derive(o.seed, streamWeights)
		for i := 0; i < cfg.Features; i++ {
			row, err := w.Row(i)
			if err != nil {
				return nil, fmt.Errorf("New: weights: %w", err)
			}
			for j := range row {
				row[j] = rng.Uniform(r, -o.initScale, o.initScale)
			}
		}
	}

	return &Model{cfg: cfg, opts: o, weights: w, biases: b}, nil
}

// Config returns the model's problem shape.
func (m *Model) Config() Config { return m.cfg }

// Weights returns the F×C weight matrix. It aliases the model state.
func (m *Model) Weights() *matrix.Matrix { return m.weights }

// Biases returns the 1×C bias row. It aliases the model state.
func (m *Model) Biases() *matrix.Matrix { return m.biases }

// Features returns the last batch the model was run on, or nil.
func (m *Model) Features() *matrix.Matrix { return m.features }

// Train runs steps full-batch gradient-descent updates with learning rate lr
// on ds, in order and without shuffling.
//
// Under ResetPerStep the arena is marked on entry and restored after every
// step, including a failing one; under ResetNever every intermediate stays
// allocated. A zero step count validates the inputs and returns an empty Report.
//
// Errors:
//   - ErrNilDataset, ErrInvalidConfig (steps < 0, lr not finite and > 0).
//   - dataset.ErrUnlabeled, matrix.ErrInvalidLabel, matrix.ErrDimensionMismatch
//     (dataset width != Features).
//   - Any TrainStep error, wrapped with the step index. The Report then
//     covers the steps completed before the failure.
func (m *Model) Train(ds *dataset.Dataset, steps int, lr float32) (Report, error) {
	if ds == nil {
		return Report{}, fmt.Errorf("Train: %w", ErrNilDataset)
	}
	if steps < 0 {
		return Report{}, fmt.Errorf("Train: steps=%d: %w", steps, ErrInvalidConfig)
	}
	if f := float64(lr); !(lr > 0) || math.IsInf(f, 0) {
		return Report{}, fmt.Errorf("Train: lr=%g: %w", lr, ErrInvalidConfig)
	}
	if err := ds.Validate(m.cfg.Classes); err != nil {
		return Report{}, fmt.Errorf("Train: %w", err)
	}
	if ds.Features() != m.cfg.Features {
		return Report{}, fmt.Errorf("Train: dataset has %d features, model %d: %w",
			ds.Features(), m.cfg.Features, matrix.ErrDimensionMismatch)
	}

	a := m.cfg.Arena
	m.features = ds.Batch
	rep := Report{Losses: make([]float32, 0, steps)}
	mark := a.Mark()

	for step := 0; step < steps; step++ {
		loss, err := equation.TrainStep(a, ds.Batch, ds.Labels, m.weights, m.biases, lr)
		if m.opts.reset == ResetPerStep {
			if rerr := a.Restore(mark); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
		if err != nil {
			rep.PeakBytes = a.Peak()
			return rep, fmt.Errorf("Train: step %d: %w", step, err)
		}

		rep.Steps++
		rep.Losses = append(rep.Losses, loss)
		rep.FinalLoss = loss
		m.logStep(step, steps, loss)
	}
	rep.PeakBytes = a.Peak()

	return rep, nil
}

// logStep emits a progress line every logEvery steps and on the last step.
func (m *Model) logStep(step, steps int, loss float32) {
	l := m.opts.logger
	if l == nil {
		return
	}
	if (step+1)%m.opts.logEvery != 0 && step+1 != steps {
		return
	}
	a := m.cfg.Arena
	l.Printf("step=%d/%d loss=%.6f used=%d peak=%d", step+1, steps, loss, a.Used(), a.Peak())
}

// Infer returns softmax(batch·W + b) as a new N×C matrix from the model's
// arena. W and b are not modified. The result lives until the caller rewinds
// the arena below it.
//
// Errors:
//   - matrix.ErrDimensionMismatch when batch.Cols() != Features.
//   - matrix.ErrInvalidStorage / ErrDanglingMatrix for a bad batch or parameters.
func (m *Model) Infer(batch *matrix.Matrix) (*matrix.Matrix, error) {
	probs, err := equation.Forward(m.cfg.Arena, batch, m.weights, m.biases)
	if err != nil {
		return nil, fmt.Errorf("Infer: %w", err)
	}
	m.features = batch

	return probs, nil
}

// Predict returns the most likely class of every row of batch. Scratch
// memory is reclaimed before returning; the result is a heap slice.
func (m *Model) Predict(batch *matrix.Matrix) ([]int, error) {
	var out []int
	err := m.withCheckpoint(func() error {
		probs, err := m.Infer(batch)
		if err != nil {
			return err
		}
		out, err = equation.Argmax(probs)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return out, nil
}

// Evaluate returns the mean cross-entropy and accuracy of the model on ds
// without updating it. Scratch memory is reclaimed before returning.
func (m *Model) Evaluate(ds *dataset.Dataset) (loss, accuracy float32, err error) {
	if ds == nil {
		return 0, 0, fmt.Errorf("Evaluate: %w", ErrNilDataset)
	}
	if err = ds.Validate(m.cfg.Classes); err != nil {
		return 0, 0, fmt.Errorf("Evaluate: %w", err)
	}

	err = m.withCheckpoint(func() error {
		probs, ierr := m.Infer(ds.Batch)
		if ierr != nil {
			return ierr
		}
		if loss, ierr = equation.CrossEntropy(probs, ds.Labels); ierr != nil {
			return ierr
		}
		accuracy, ierr = equation.Accuracy(probs, ds.Labels)
		return ierr
	})
	if err != nil {
		return 0, 0, fmt.Errorf("Evaluate: %w", err)
	}

	return loss, accuracy, nil
}

// withCheckpoint runs fn between a Mark and a Restore of the model arena.
func (m *Model) withCheckpoint(fn func() error) error {
	a := m.cfg.Arena
	mark := a.Mark()
	err := fn()
	if rerr := a.Restore(mark); rerr != nil {
		err = errors.Join(err, rerr)
	}

	return err
}
