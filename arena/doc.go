// Package arena provides a fixed-capacity linear (bump) allocator over
// caller-supplied memory.
//
// 🚀 What is an Arena?
//
//	A contiguous []byte owned by the caller, handed out front to back in
//	aligned regions. Nothing is freed individually: memory comes back only
//	by rewinding the position (Mark/Restore, Reset, or the raw Shrink).
//
// ✨ Key features:
//   - zero heap traffic after construction: Alloc only moves an offset
//   - alignment to the platform pointer size by default (WithAlignment,
//     WithCacheLineAlignment to change it)
//   - Mark/Restore checkpoints with stack discipline
//   - rewind tracking: Live(region) reports whether a region was reclaimed
//     since it was handed out, so dependants can fail fast instead of
//     reading recycled bytes
//
// ⚙️ Usage:
//
//	buf := make([]byte, 64<<10)
//	a, err := arena.New(buf)
//	if err != nil {
//	    // handle ErrNilMemory
//	}
//	mark := a.Mark()
//	r, err := a.Alloc(256) // ErrExhausted when it does not fit
//	...
//	_ = a.Restore(mark)    // r is no longer Live
//
// Concurrency:
//
//	An Arena is NOT safe for concurrent use. Serialize every Alloc, Shrink,
//	Restore and Reset per instance; use one arena per execution context.
//
// Complexity:
//   - Alloc, Shrink, Mark, FreeBytes: O(1)
//   - Restore/Live: O(log k), k = number of distinct live rewind points (usually 1)
package arena
