// SPDX-License-Identifier: MIT
// Package arena: sentinel error set.
// Every failure is returned, never panicked; callers match with errors.Is.

package arena

import "errors"

var (
	// ErrNilMemory is returned when New receives an empty or nil backing slice,
	// or when alignment padding consumes all of it.
	ErrNilMemory = errors.New("arena: backing memory is empty")

	// ErrExhausted is returned when an allocation does not fit in the
	// remaining capacity after alignment.
	ErrExhausted = errors.New("arena: capacity exhausted")

	// ErrInvalidSize is returned for negative allocation or view sizes.
	ErrInvalidSize = errors.New("arena: invalid size")

	// ErrStaleMark is returned when restoring a checkpoint that is ahead of the
	// current position or whose position was already rewound over.
	ErrStaleMark = errors.New("arena: stale mark")

	// ErrForeignRegion is returned when a Region or Mark from another arena,
	// or one that was never issued, is presented.
	ErrForeignRegion = errors.New("arena: region does not belong to this arena")
)
