// SPDX-License-Identifier: MIT

// Package model: functional configuration.
//   - Default* constants are the single source of truth for zero-value behavior.
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - gatherOptions resolves setters on top of defaults (last-writer-wins).

package model

import (
	"log"
	"math"
)

const (
	// DefaultInit is the weight initialisation scheme.
	DefaultInit = InitZero

	// DefaultInitScale bounds InitUniform draws to [-0.01, 0.01).
	DefaultInitScale = float32(0.01)

	// DefaultSeed selects the package-wide deterministic stream.
	DefaultSeed int64 = 0

	// DefaultResetPolicy bounds memory to one step of scratch.
	DefaultResetPolicy = ResetPerStep

	// DefaultLogEvery is the step cadence of progress lines once a logger is set.
	DefaultLogEvery = 10
)

const (
	panicInitScale   = "model: WithInitScale: scale must be finite and > 0"
	panicResetPolicy = "model: WithResetPolicy: unknown policy"
	panicLogEvery    = "model: WithLogEvery: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	init      InitScheme
	initScale float32
	seed      int64
	reset     ResetPolicy
	logger    *log.Logger // nil: silent
	logEvery  int
}

// WithInit selects the weight initialisation scheme. Unknown schemes are
// reported by New as matrix.ErrUnimplemented.
func WithInit(s InitScheme) Option {
	return func(o *Options) { o.init = s }
}

// WithInitScale sets the InitUniform bound. Panics for non-finite or non-positive s.
func WithInitScale(s float32) Option {
	f := float64(s)
	if s <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic(panicInitScale)
	}

	return func(o *Options) { o.initScale = s }
}

// WithSeed fixes the InitUniform random stream. 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithResetPolicy selects how Train reclaims arena memory.
func WithResetPolicy(p ResetPolicy) Option {
	if p != ResetPerStep && p != ResetNever {
		panic(panicResetPolicy)
	}

	return func(o *Options) { o.reset = p }
}

// WithLogger enables progress lines on l. A nil logger keeps Train silent.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithLogEvery sets the step cadence of progress lines. Panics for n <= 0.
func WithLogEvery(n int) Option {
	if n <= 0 {
		panic(panicLogEvery)
	}

	return func(o *Options) { o.logEvery = n }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		init:      DefaultInit,
		initScale: DefaultInitScale,
		seed:      DefaultSeed,
		reset:     DefaultResetPolicy,
		logEvery:  DefaultLogEvery,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
