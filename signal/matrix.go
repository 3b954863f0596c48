package signal

import "fmt"

// Matrix is a fixed-size two-dimensional array of a single scalar
// kind. Dimensions are set at construction and never change; the
// element buffer is allocated exactly once, so matrices can flow
// through a tick without touching the allocator.
//
// Storage is column-major: element (r, c) lives at data[c*rows+r].
//
// A Matrix crosses block boundaries by reference. A block producing a
// matrix output owns the backing Matrix and hands out its pointer;
// downstream blocks must treat the view as read-only and must not
// retain it past the current tick.
type Matrix[T Scalar] struct {
	rows, cols int
	data       []T
}

// NewMatrix allocates a zeroed rows x cols matrix. It panics if either
// dimension is not positive; dimensions are a property of the edge
// type and come from generated code, so a bad dimension is a
// generation bug, not a runtime condition.
func NewMatrix[T Scalar](rows, cols int) *Matrix[T] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("signal: invalid matrix dimensions %dx%d", rows, cols))
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// MatrixFrom allocates a rows x cols matrix initialized from data in
// column-major order. The slice is copied; it panics if len(data)
// does not equal rows*cols.
func MatrixFrom[T Scalar](rows, cols int, data []T) *Matrix[T] {
	m := NewMatrix[T](rows, cols)
	if len(data) != len(m.data) {
		panic(fmt.Sprintf("signal: matrix data length %d, want %d", len(data), len(m.data)))
	}
	copy(m.data, data)
	return m
}

// Rows returns the fixed row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the fixed column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m *Matrix[T]) At(r, c int) T {
	return m.data[c*m.rows+r]
}

// Set writes the element at row r, column c.
func (m *Matrix[T]) Set(r, c int, v T) {
	m.data[c*m.rows+r] = v
}

// Raw exposes the backing buffer in column-major order. It is the
// fast path for element-wise block operations; callers other than the
// owning block must not write through it.
func (m *Matrix[T]) Raw() []T { return m.data }

// CopyFrom copies src's elements into m. Both matrices must have the
// same dimensions.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) {
	if src.rows != m.rows || src.cols != m.cols {
		panic(fmt.Sprintf("signal: copy %dx%d matrix into %dx%d", src.rows, src.cols, m.rows, m.cols))
	}
	copy(m.data, src.data)
}

// IsTruthy reports whether any element differs from the scalar kind's
// zero value.
func (m *Matrix[T]) IsTruthy() bool {
	var zero T
	for _, v := range m.data {
		if v != zero {
			return true
		}
	}
	return false
}
