// Package matrix offers a row-major float32 matrix whose storage lives inside
// an arena.Arena, plus dimension-checked algebra on top of it.
//
// The matrix package provides:
//
//   - Matrix: rows×cols view over one arena region. Matrices are only produced
//     by allocating calls (New, NewZeros, FromRows and every allocating op);
//     shape is fixed after creation, contents may be mutated in place.
//   - Allocating ops (Mul, Add, Sub, Transpose, SumRows, Clone) that take the
//     arena to allocate the result from.
//   - In-place ops (AddInPlace, SubInPlace, MulInPlace, Scale, AddScalar,
//     SubScalar, AddRowInPlace) that write into the left operand.
//
// Every call validates before it touches memory: a failing call neither
// allocates nor mutates. A matrix whose arena was rewound below its region is
// dangling; using it returns ErrDanglingMatrix instead of reading recycled
// bytes.
//
// Index arithmetic never leaves this package: callers use At/Set/Row.
//
// See the examples in this package and in equation for usage patterns.
package matrix
