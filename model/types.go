// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/lna/arena"
)

// Config is the immutable problem shape of a model.
type Config struct {
	Features int          // input width F
	Classes  int          // output width C, >= 2
	Arena    *arena.Arena // parameters and scratch are allocated here
}

// NewConfig validates and returns a Config.
//
// Errors:
//   - ErrInvalidConfig for features <= 0, classes < 2 or a nil arena.
func NewConfig(features, classes int, a *arena.Arena) (Config, error) {
	cfg := Config{Features: features, Classes: classes, Arena: a}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Features <= 0:
		return fmt.Errorf("features=%d: %w", c.Features, ErrInvalidConfig)
	case c.Classes < 2:
		return fmt.Errorf("classes=%d: %w", c.Classes, ErrInvalidConfig)
	case c.Arena == nil:
		return fmt.Errorf("nil arena: %w", ErrInvalidConfig)
	}

	return nil
}

// InitScheme selects how New fills the weights.
//
//   - InitZero   : W and b start at zero; runs are bit-for-bit reproducible.
//   - InitUniform: W drawn from U(-scale, scale) with a seeded stream; b is zero.
type InitScheme int

const (
	// InitZero starts from all-zero parameters.
	InitZero InitScheme = iota

	// InitUniform draws weights uniformly from [-scale, scale).
	InitUniform
)

// String implements fmt.Stringer.
func (s InitScheme) String() string {
	switch s {
	case InitZero:
		return "zero"
	case InitUniform:
		return "uniform"
	}

	return fmt.Sprintf("InitScheme(%d)", int(s))
}

// ResetPolicy controls arena reclamation during Train.
//
//   - ResetPerStep: mark on entry, restore after every step (bounded memory).
//   - ResetNever  : never rewind; the caller owns the arena lifetime.
type ResetPolicy int

const (
	// ResetPerStep restores the Train entry mark after every step.
	ResetPerStep ResetPolicy = iota

	// ResetNever leaves all step intermediates allocated.
	ResetNever
)

// String implements fmt.Stringer.
func (p ResetPolicy) String() string {
	switch p {
	case ResetPerStep:
		return "per-step"
	case ResetNever:
		return "never"
	}

	return fmt.Sprintf("ResetPolicy(%d)", int(p))
}

// Report summarises a Train call.
type Report struct {
	Steps     int       // steps completed
	Losses    []float32 // loss before each step's update, len == Steps
	FinalLoss float32   // Losses[Steps-1], or 0 when Steps == 0
	PeakBytes int       // arena high-water mark when Train returned
}
