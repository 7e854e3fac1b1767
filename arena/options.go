// SPDX-License-Identifier: MIT

// Package arena: functional configuration.
//   - Default* constants are the single source of truth for zero-value behavior.
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - gatherOptions resolves setters on top of defaults (last-writer-wins).

package arena

import "unsafe"

// DefaultAlignment is the platform pointer size. Every region offset is a
// multiple of it, which also satisfies float32 alignment.
const DefaultAlignment = int(unsafe.Sizeof(uintptr(0)))

// minAlignment keeps every region usable as a []float32 view.
const minAlignment = 4

const panicAlignmentInvalid = "arena: WithAlignment: alignment must be a power of two >= 4"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	alignment int // power of two, >= minAlignment
}

// WithAlignment sets the boundary every region offset is rounded up to.
// Panics when n is not a power of two or is smaller than 4.
func WithAlignment(n int) Option {
	if n < minAlignment || n&(n-1) != 0 {
		panic(panicAlignmentInvalid)
	}

	return func(o *Options) { o.alignment = n }
}

// WithCacheLineAlignment aligns every region to the cache line size reported
// by the CPU (falls back to 64 bytes when detection is unavailable).
// Useful on targets where two matrices must never share a line.
func WithCacheLineAlignment() Option {
	n := CacheLineSize()

	return func(o *Options) { o.alignment = n }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{alignment: DefaultAlignment}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
