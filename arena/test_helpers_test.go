// SPDX-License-Identifier: MIT

package arena_test

import (
	"testing"

	"github.com/katalvlaran/lna/arena"
)

// MustArena builds an arena over a fresh n-byte buffer or fails the test.
func MustArena(t *testing.T, n int) *arena.Arena {
	t.Helper()
	a, err := arena.New(make([]byte, n))
	if err != nil {
		t.Fatalf("arena.New(%d): %v", n, err)
	}

	return a
}
