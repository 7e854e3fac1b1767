// SPDX-License-Identifier: MIT

package arena

import "github.com/klauspost/cpuid/v2"

// fallbackCacheLine is used when the CPU does not report a usable line size.
const fallbackCacheLine = 64

// CacheLineSize returns the L1 data cache line size detected by cpuid, or 64
// when the value is unknown or not a power of two.
func CacheLineSize() int {
	n := cpuid.CPU.CacheLine
	if n < minAlignment || n&(n-1) != 0 {
		return fallbackCacheLine
	}

	return n
}

// alignUp rounds n up to the next multiple of p (p must be a power of two).
func alignUp(n, p uintptr) uintptr {
	return (n + p - 1) &^ (p - 1)
}
