// SPDX-License-Identifier: MIT

// Package matrix - Dense integer storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula y*cols + x.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Turn every failure to obtain memory into ErrAllocation (invalid shape, overflow, refusal).
//   - Keep the stride fixed for the whole lifetime of the buffer.
//
// Coordinates:
//   - x is the column, y is the row. Cell (x, y) lives at data[y*cols + x].
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Index: O(1); Reset/Fill/Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewDense = "NewDense" // ctor tag used in allocation errors
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellBytes is the in-memory size of a single cell.
const cellBytes = bits.UintSize / 8

// denseErrorf wraps an error with a uniform Dense context and callsite coordinates.
//   - Stable "Dense.<method>(x,y): <sentinel>" shape; preserves the sentinel via %w.
func denseErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, x, y, err)
}

// allocErrorf joins ErrAllocation with the specific cause and the requested shape.
func allocErrorf(rows, cols int, cause error) error {
	return fmt.Errorf("%s(%d,%d): %w: %w", ctxNewDense, rows, cols, ErrAllocation, cause)
}

// Dense is a contiguous row-major integer buffer.
//   - r,c hold dimensions (rows, cols); c is the stride and never changes.
//   - data is a flat buffer of length r*c (offset = y*c + x).
//   - released marks a buffer whose storage was handed back by Release.
type Dense struct {
	r, c     int   // row and column counts (>0)
	data     []int // contiguous row-major storage (len == r*c until Release)
	released bool  // set by Release; accessors fail with ErrReleased afterwards
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates a rows×cols zero buffer using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and overflow-safe sizing.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: compute rows*cols and its byte size without overflow; else ErrSizeOverflow.
//   - Stage 3: allocate the zero-filled buffer; a refused allocation yields ErrOutOfMemory.
//
// Errors:
//   - Every failure matches ErrAllocation AND the specific cause via errors.Is.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, allocErrorf(rows, cols, ErrInvalidDimensions)
	}
	n, _, err := cellCount(rows, cols)
	if err != nil {
		return nil, allocErrorf(rows, cols, err)
	}

	buf, err := allocate(n)
	if err != nil {
		return nil, allocErrorf(rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Footprint returns the number of bytes NewDense(rows, cols) would allocate.
// It fails with the same ErrAllocation causes as NewDense, without allocating,
// so callers can enforce a memory budget up front.
func Footprint(rows, cols int) (int64, error) {
	if rows <= 0 || cols <= 0 {
		return 0, allocErrorf(rows, cols, ErrInvalidDimensions)
	}
	_, size, err := cellCount(rows, cols)
	if err != nil {
		return 0, allocErrorf(rows, cols, err)
	}

	return size, nil
}

// cellCount returns rows*cols and the corresponding size in bytes,
// or ErrSizeOverflow when either does not fit.
func cellCount(rows, cols int) (n int, size int64, err error) {
	hi, lo := bits.Mul(uint(rows), uint(cols))
	if hi != 0 || lo > math.MaxInt/cellBytes {
		return 0, 0, ErrSizeOverflow
	}
	n = int(lo)

	return n, int64(n) * cellBytes, nil
}

// allocate obtains a zeroed []int of length n. The runtime reports an
// unsatisfiable length with a recoverable panic; it becomes ErrOutOfMemory.
func allocate(n int) (buf []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%v: %w", r, ErrOutOfMemory)
		}
	}()

	return make([]int, n), nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (the stride). Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense) Len() int { return m.r * m.c }

// Released reports whether Release has been called.
func (m *Dense) Released() bool { return m.released }

// Index maps (x, y) to the linear offset y*cols + x.
// No bounds check: callers in hot loops own the range invariant.
func (m *Dense) Index(x, y int) int { return y*m.c + x }

// indexOf bounds-checks (x, y) and returns the row-major offset.
//   - Returns plain sentinels; At/Set wrap them with coordinates.
func (m *Dense) indexOf(x, y int) (int, error) {
	if m.released {
		return 0, ErrReleased
	}
	if x < 0 || x >= m.c || y < 0 || y >= m.r {
		return 0, ErrOutOfRange
	}

	return m.Index(x, y), nil
}

// At returns the cell at column x, row y.
// Errors: ErrOutOfRange, ErrReleased (wrapped with "Dense.At(x,y)").
func (m *Dense) At(x, y int) (int, error) {
	idx, err := m.indexOf(x, y)
	if err != nil {
		return 0, denseErrorf(ctxAt, x, y, err)
	}

	return m.data[idx], nil
}

// Set writes v into the cell at column x, row y.
// Errors: ErrOutOfRange, ErrReleased (wrapped with "Dense.Set(x,y)").
func (m *Dense) Set(x, y, v int) error {
	idx, err := m.indexOf(x, y)
	if err != nil {
		return denseErrorf(ctxSet, x, y, err)
	}
	m.data[idx] = v

	return nil
}

// Reset sets every cell to 0 in place. The backing slice is reused.
func (m *Dense) Reset() {
	clear(m.data)
}

// Fill sets every cell to v in place.
func (m *Dense) Fill(v int) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Release hands the backing storage back to the runtime. The shape is kept
// for diagnostics; every later accessor fails with ErrReleased. Idempotent.
func (m *Dense) Release() {
	m.data = nil
	m.released = true
}

// Clone returns a deep copy with the same shape. Cloning a released buffer
// yields another released buffer.
func (m *Dense) Clone() *Dense {
	if m.released {
		return &Dense{r: m.r, c: m.c, released: true}
	}
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and identical cells.
// Released buffers are never equal to anything.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil || m.released || o.released {
		return false
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// Do calls f for every cell in row-major order (y outer, x inner) and stops
// early when f returns false.
func (m *Dense) Do(f func(x, y, v int) bool) {
	var x, y, base int
	for y = 0; y < m.r && !m.released; y++ {
		base = y * m.c
		for x = 0; x < m.c; x++ {
			if !f(x, y, m.data[base+x]) {
				return
			}
		}
	}
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
// Intended for logs and test failures, not hot paths.
func (m *Dense) String() string {
	if m.released {
		return fmt.Sprintf("Dense(%dx%d, released)", m.r, m.c)
	}
	var b strings.Builder
	var x, y, base int
	for y = 0; y < m.r; y++ {
		b.WriteString(_fmtRowOpen)
		base = y * m.c
		for x = 0; x < m.c; x++ {
			b.WriteString(strconv.Itoa(m.data[base+x]))
			if x+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
