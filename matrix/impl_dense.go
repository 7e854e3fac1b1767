// SPDX-License-Identifier: MIT

// Package matrix - arena-backed row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j,
//     kept private to this package.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep every Matrix tied to the arena region it was carved from, so a rewound
//     region is detected (ErrDanglingMatrix) instead of silently aliasing new data.
//
// Complexity quicksheet:
//   - New: O(1) (no zeroing); NewZeros/FromRows: O(r*c); At/Set: O(1); Row: O(1) view.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lna/arena"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
	ctxFill   = "Fill"
	ctxNew    = "New"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// elemSize is the byte width of one element.
const elemSize = 4

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols row-major float32 matrix stored in an arena.
//   - r,c hold dimensions (both > 0 for every issued matrix).
//   - data is a view of length r*c over region (offset = i*c + j).
//   - arena/region identify the owner; the zero Matrix has neither and is invalid.
type Matrix struct {
	r, c   int
	data   []float32
	arena  *arena.Arena
	region arena.Region
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New carves an r×c matrix out of a. Contents are NOT zeroed: the region holds
// whatever bytes the arena memory held before.
// Implementation:
//   - Stage 1: validate arena and shape.
//   - Stage 2: allocate rows*cols*4 bytes and take a float32 view.
//
// Errors:
//   - ErrInvalidStorage for a nil arena or when the arena is exhausted
//     (the arena cause is kept: errors.Is(err, arena.ErrExhausted) holds).
//   - ErrInvalidDimensions for rows <= 0 or cols <= 0, or a size that overflows int.
//
// Complexity: Time O(1), Space rows*cols*4 bytes of arena.
func New(a *arena.Arena, rows, cols int) (*Matrix, error) {
	if err := ValidateArena(a); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	if rows > math.MaxInt/elemSize/cols {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	region, err := a.Alloc(rows * cols * elemSize)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w: %w", ctxNew, rows, cols, ErrInvalidStorage, err)
	}
	data, err := a.Float32s(region)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w: %w", ctxNew, rows, cols, ErrInvalidStorage, err)
	}

	return &Matrix{r: rows, c: cols, data: data, arena: a, region: region}, nil
}

// NewZeros is New followed by Zero.
func NewZeros(a *arena.Arena, rows, cols int) (*Matrix, error) {
	m, err := New(a, rows, cols)
	if err != nil {
		return nil, err
	}
	clear(m.data)

	return m, nil
}

// FromRows allocates a len(rows)×len(rows[0]) matrix and copies rows into it.
// All rows must share one non-zero length (ErrDimensionMismatch otherwise).
// Validation happens before allocation.
func FromRows(a *arena.Arena, rows [][]float32) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(ctxNew, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(rows[i]), cols, ErrDimensionMismatch))
		}
	}

	m, err := New(a, len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the row count (0 for a nil matrix).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the column count (0 for a nil matrix).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Arena returns the arena the matrix was allocated from.
func (m *Matrix) Arena() *arena.Arena {
	if m == nil {
		return nil
	}
	return m.arena
}

// Valid reports whether m has live storage (non-nil, issued, not rewound over).
func (m *Matrix) Valid() bool { return ValidateStorage(m) == nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Keep unexported: no caller outside this package computes offsets.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrInvalidStorage / ErrDanglingMatrix for unusable storage.
//   - ErrOutOfRange for invalid indices.
func (m *Matrix) At(row, col int) (float32, error) {
	if err := ValidateStorage(m); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Errors as for At.
func (m *Matrix) Set(row, col int, v float32) error {
	if err := ValidateStorage(m); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the matrix storage.
// Writes through the slice mutate the matrix. The slice is only meaningful
// while the matrix is Valid; do not retain it across an arena rewind.
//
// Errors: ErrInvalidStorage / ErrDanglingMatrix, ErrOutOfRange.
func (m *Matrix) Row(i int) ([]float32, error) {
	if err := ValidateStorage(m); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// SetRow copies vals into row i. len(vals) must equal Cols().
func (m *Matrix) SetRow(i int, vals []float32) error {
	row, err := m.Row(i)
	if err != nil {
		return err
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	copy(row, vals)

	return nil
}

// Fill copies vals into the matrix in row-major order.
// len(vals) must equal Rows()*Cols().
func (m *Matrix) Fill(vals []float32) error {
	if err := ValidateStorage(m); err != nil {
		return matrixErrorf(ctxFill, err)
	}
	if len(vals) != len(m.data) {
		return matrixErrorf(ctxFill, ErrDimensionMismatch)
	}
	copy(m.data, vals)

	return nil
}

// Zero sets every element to 0.
func (m *Matrix) Zero() error {
	if err := ValidateStorage(m); err != nil {
		return matrixErrorf(ctxFill, err)
	}
	clear(m.data)

	return nil
}

// Values returns a heap copy of the elements in row-major order.
// The copy stays valid after the arena is rewound.
func (m *Matrix) Values() ([]float32, error) {
	if err := ValidateStorage(m); err != nil {
		return nil, err
	}
	out := make([]float32, len(m.data))
	copy(out, m.data)

	return out, nil
}

// String renders matrix rows as lines with comma-separated values.
// Intended for debugging; a matrix without live storage renders as "<invalid>".
func (m *Matrix) String() string {
	if ValidateStorage(m) != nil {
		return "<invalid>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
