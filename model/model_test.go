// SPDX-License-Identifier: MIT
// Package model_test covers configuration, training, inference and the arena
// reset policies of the softmax regression model.
package model_test

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/katalvlaran/lna/arena"
	"github.com/katalvlaran/lna/dataset"
	"github.com/katalvlaran/lna/matrix"
	"github.com/katalvlaran/lna/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// separable is the training problem shared by the convergence tests.
var separable = dataset.SeparableSpec{Samples: 60, Features: 4, Classes: 3, Scale: 6, Jitter: 0.3, Seed: 7}

// MustArena builds an arena over a fresh n-byte buffer or fails the test.
func MustArena(t *testing.T, n int) *arena.Arena {
	t.Helper()
	a, err := arena.New(make([]byte, n))
	require.NoError(t, err)

	return a
}

// MustModel builds a model on a for the separable problem.
func MustModel(t *testing.T, a *arena.Arena, opts ...model.Option) *model.Model {
	t.Helper()
	cfg, err := model.NewConfig(separable.Features, separable.Classes, a)
	require.NoError(t, err)
	m, err := model.New(cfg, opts...)
	require.NoError(t, err)

	return m
}

// MustSeparable generates the shared separable dataset on a.
func MustSeparable(t *testing.T, a *arena.Arena) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Separable(a, separable)
	require.NoError(t, err)

	return ds
}

func TestNewConfig(t *testing.T) {
	a := MustArena(t, 1024)

	cfg, err := model.NewConfig(3, 2, a)
	require.NoError(t, err)
	assert.Equal(t, model.Config{Features: 3, Classes: 2, Arena: a}, cfg)

	for _, tc := range []struct {
		name              string
		features, classes int
		a                 *arena.Arena
	}{
		{"zero features", 0, 2, a},
		{"one class", 3, 1, a},
		{"nil arena", 3, 2, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.NewConfig(tc.features, tc.classes, tc.a)
			require.ErrorIs(t, err, model.ErrInvalidConfig)
		})
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	a := MustArena(t, 1024)

	_, err := model.New(model.Config{})
	require.ErrorIs(t, err, model.ErrInvalidConfig)

	cfg, err := model.NewConfig(2, 2, a)
	require.NoError(t, err)
	_, err = model.New(cfg, model.WithInit(model.InitScheme(42)))
	require.ErrorIs(t, err, matrix.ErrUnimplemented)
	require.Zero(t, a.Used())

	tiny := MustArena(t, 8)
	cfg, err = model.NewConfig(4, 4, tiny)
	require.NoError(t, err)
	_, err = model.New(cfg)
	require.ErrorIs(t, err, matrix.ErrInvalidStorage)
}

func TestNewInit(t *testing.T) {
	a := MustArena(t, 4096)

	zero := MustModel(t, a)
	w, err := zero.Weights().Values()
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 12), w)

	u1 := MustModel(t, a, model.WithInit(model.InitUniform), model.WithSeed(3), model.WithInitScale(0.5))
	u2 := MustModel(t, a, model.WithInit(model.InitUniform), model.WithSeed(3), model.WithInitScale(0.5))
	w1, err := u1.Weights().Values()
	require.NoError(t, err)
	w2, err := u2.Weights().Values()
	require.NoError(t, err)
	require.Equal(t, w1, w2, "same seed, same weights")

	nonZero := 0
	for _, v := range w1 {
		require.GreaterOrEqual(t, v, float32(-0.5))
		require.Less(t, v, float32(0.5))
		if v != 0 {
			nonZero++
		}
	}
	require.Positive(t, nonZero)

	b, err := u1.Biases().Values()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, b)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { model.WithInitScale(0) })
	require.Panics(t, func() { model.WithInitScale(float32(math.Inf(1))) })
	require.Panics(t, func() { model.WithLogEvery(0) })
	require.Panics(t, func() { model.WithResetPolicy(model.ResetPolicy(9)) })
}

// TestTrainConverges checks that 200 steps at lr 0.1 on separable clusters
// drive the loss below 0.01 and that Infer then recovers every label.
func TestTrainConverges(t *testing.T) {
	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a)

	rep, err := m.Train(ds, 200, 0.1)
	require.NoError(t, err)
	require.Equal(t, 200, rep.Steps)
	require.Len(t, rep.Losses, 200)
	assert.InDelta(t, math.Log(3), rep.Losses[0], 1e-5, "zero init starts at ln C")
	assert.Less(t, rep.FinalLoss, float32(0.01))
	assert.Less(t, rep.FinalLoss, rep.Losses[0])

	probs, err := m.Infer(ds.Batch)
	require.NoError(t, err)
	for i, y := range ds.Labels {
		row, err := probs.Row(i)
		require.NoError(t, err)
		best := 0
		for j := range row {
			if row[j] > row[best] {
				best = j
			}
		}
		require.Equal(t, y, best, "sample %d", i)
	}

	pred, err := m.Predict(ds.Batch)
	require.NoError(t, err)
	assert.Equal(t, ds.Labels, pred)

	loss, acc, err := m.Evaluate(ds)
	require.NoError(t, err)
	assert.InDelta(t, rep.FinalLoss, loss, 0.01)
	assert.Equal(t, float32(1), acc)
}

func TestInferDoesNotMutateParameters(t *testing.T) {
	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a, model.WithInit(model.InitUniform), model.WithSeed(1))
	_, err := m.Train(ds, 5, 0.1)
	require.NoError(t, err)

	w0, err := m.Weights().Values()
	require.NoError(t, err)
	b0, err := m.Biases().Values()
	require.NoError(t, err)

	_, err = m.Infer(ds.Batch)
	require.NoError(t, err)
	_, err = m.Predict(ds.Batch)
	require.NoError(t, err)

	w1, err := m.Weights().Values()
	require.NoError(t, err)
	b1, err := m.Biases().Values()
	require.NoError(t, err)
	assert.Equal(t, w0, w1)
	assert.Equal(t, b0, b1)
	assert.Same(t, ds.Batch, m.Features())
}

// TestResetPerStepBoundsMemory trains for many steps and expects the arena
// to end where it started, with a peak independent of the step count.
func TestResetPerStepBoundsMemory(t *testing.T) {
	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a)

	before := a.Used()
	_, err := m.Train(ds, 3, 0.1)
	require.NoError(t, err)
	require.Equal(t, before, a.Used())
	peak := a.Peak()

	_, err = m.Train(ds, 300, 0.1)
	require.NoError(t, err)
	require.Equal(t, before, a.Used())
	require.Equal(t, peak, a.Peak())

	require.True(t, m.Weights().Valid())
	require.True(t, ds.Batch.Valid())
}

func TestResetNeverKeepsScratch(t *testing.T) {
	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a, model.WithResetPolicy(model.ResetNever))

	before := a.Used()
	_, err := m.Train(ds, 1, 0.1)
	require.NoError(t, err)
	perStep := a.Used() - before
	require.Positive(t, perStep)

	_, err = m.Train(ds, 2, 0.1)
	require.NoError(t, err)
	require.Equal(t, before+3*perStep, a.Used())
}

// TestTrainExhaustion runs out of arena mid-training under ResetNever and
// reports the steps that completed.
func TestTrainExhaustion(t *testing.T) {
	a := MustArena(t, 8<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a, model.WithResetPolicy(model.ResetNever))

	rep, err := m.Train(ds, 1000, 0.1)
	require.ErrorIs(t, err, matrix.ErrInvalidStorage)
	require.ErrorIs(t, err, arena.ErrExhausted)
	require.Less(t, rep.Steps, 1000)
	require.Len(t, rep.Losses, rep.Steps)
	require.True(t, m.Weights().Valid())
}

func TestTrainRejectsBadInput(t *testing.T) {
	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a)

	_, err := m.Train(nil, 1, 0.1)
	require.ErrorIs(t, err, model.ErrNilDataset)
	_, err = m.Train(ds, -1, 0.1)
	require.ErrorIs(t, err, model.ErrInvalidConfig)
	_, err = m.Train(ds, 1, 0)
	require.ErrorIs(t, err, model.ErrInvalidConfig)
	_, err = m.Train(ds, 1, float32(math.NaN()))
	require.ErrorIs(t, err, model.ErrInvalidConfig)

	unl, err := dataset.NewUnlabeled(ds.Batch)
	require.NoError(t, err)
	_, err = m.Train(unl, 1, 0.1)
	require.ErrorIs(t, err, dataset.ErrUnlabeled)

	narrow, err := matrix.NewZeros(a, 2, 2)
	require.NoError(t, err)
	nds, err := dataset.New(narrow, []int{0, 1})
	require.NoError(t, err)
	_, err = m.Train(nds, 1, 0.1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.Infer(narrow)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rep, err := m.Train(ds, 0, 0.1)
	require.NoError(t, err)
	require.Zero(t, rep.Steps)
	require.Empty(t, rep.Losses)
}

func TestTrainLogs(t *testing.T) {
	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)

	var buf bytes.Buffer
	m := MustModel(t, a, model.WithLogger(log.New(&buf, "", 0)), model.WithLogEvery(4))
	_, err := m.Train(ds, 10, 0.1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3) // steps 4, 8 and the last one
	assert.True(t, strings.HasPrefix(lines[0], "step=4/10 loss="))
	assert.True(t, strings.HasPrefix(lines[2], "step=10/10 loss="))
	assert.Contains(t, lines[2], "peak=")
}

func TestTrainSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	a := MustArena(t, 64<<10)
	ds := MustSeparable(t, a)
	m := MustModel(t, a)
	_, err := m.Train(ds, 20, 0.1)
	require.NoError(t, err)
	require.Zero(t, buf.Len())
}

func TestDanglingParameters(t *testing.T) {
	a := MustArena(t, 64<<10)
	m := MustModel(t, a)
	a.Reset()
	ds := MustSeparable(t, a)

	_, err := m.Train(ds, 1, 0.1)
	require.ErrorIs(t, err, matrix.ErrDanglingMatrix)
	assert.Contains(t, err.Error(), "forward")
}
