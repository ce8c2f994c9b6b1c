// Copyright 2025 go-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package la

// Panic messages for precondition violations. These indicate caller bugs
// and are never returned as errors.
const (
	errNotSquare   = "la: matrix is not square"
	errShape       = "la: negative dimension"
	errStride      = "la: stride smaller than minor dimension"
	errShortData   = "la: data slice too small"
	errIndex       = "la: index out of range"
	errInc         = "la: vector increment must be positive"
	errSliceBounds = "la: slice bounds out of range"
	errIndexed     = "la: gather index out of range"
	errCSR         = "la: malformed CSR structure"
	errOrder       = "la: illegal orientation"
)

// Dense is a borrowed dense matrix view over a caller-owned buffer.
// Row-major element (i, j) lives at data[i*stride+j]; column-major at
// data[j*stride+i]. The view never copies or owns data.
type Dense[T Scalar] struct {
	rows, cols int
	stride     int
	order      Orientation
	data       []T
}

// NewDense returns a tightly packed rows×cols view over data.
//
// Panics if len(data) is smaller than rows*cols.
func NewDense[T Scalar](rows, cols int, data []T, order Orientation) *Dense[T] {
	stride := cols
	if order == ColMajor {
		stride = rows
	}
	return NewDenseStride(rows, cols, stride, data, order)
}

// NewDenseStride returns a rows×cols view with an explicit leading
// dimension. stride is the distance between consecutive rows (row-major)
// or columns (column-major) and must cover the minor dimension.
//
// Panics if order is neither RowMajor nor ColMajor.
func NewDenseStride[T Scalar](rows, cols, stride int, data []T, order Orientation) *Dense[T] {
	if order != RowMajor && order != ColMajor {
		panic(errOrder)
	}
	if rows < 0 || cols < 0 {
		panic(errShape)
	}
	major, minor := rows, cols
	if order == ColMajor {
		major, minor = cols, rows
	}
	if stride < minor {
		panic(errStride)
	}
	if major > 0 && minor > 0 && len(data) < (major-1)*stride+minor {
		panic(errShortData)
	}
	return &Dense[T]{rows: rows, cols: cols, stride: stride, order: order, data: data}
}

// Dims returns the number of rows and columns.
func (m *Dense[T]) Dims() (int, int) {
	return m.rows, m.cols
}

// Orientation returns the memory order of the view.
func (m *Dense[T]) Orientation() Orientation {
	return m.order
}

// StorageKind reports StorageDense. Safe on a nil receiver.
func (*Dense[T]) StorageKind() StorageKind {
	return StorageDense
}

func (m *Dense[T]) offset(i, j int) int {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(errIndex)
	}
	if m.order == RowMajor {
		return i*m.stride + j
	}
	return j*m.stride + i
}

// At returns element (i, j).
func (m *Dense[T]) At(i, j int) T {
	return m.data[m.offset(i, j)]
}

// Set writes element (i, j).
func (m *Dense[T]) Set(i, j int, v T) {
	m.data[m.offset(i, j)] = v
}

// RawMatrix returns the storage descriptor of the view.
func (m *Dense[T]) RawMatrix() MatrixStorage[T] {
	return MatrixStorage[T]{Data: m.data, LeadingDim: m.stride, Order: m.order}
}

// T returns the transpose as a view over the same buffer. A row-major
// upper triangle becomes a column-major lower triangle.
func (m *Dense[T]) T() *Dense[T] {
	return &Dense[T]{
		rows:   m.cols,
		cols:   m.rows,
		stride: m.stride,
		order:  m.order.Flip(),
		data:   m.data,
	}
}

// Slice returns the submatrix [i:k, j:l] sharing the receiver's buffer
// and leading dimension.
func (m *Dense[T]) Slice(i, k, j, l int) *Dense[T] {
	if i < 0 || k < i || k > m.rows || j < 0 || l < j || l > m.cols {
		panic(errSliceBounds)
	}
	rows, cols := k-i, l-j
	if rows == 0 || cols == 0 {
		return &Dense[T]{rows: rows, cols: cols, stride: m.stride, order: m.order}
	}
	start := i*m.stride + j
	if m.order == ColMajor {
		start = j*m.stride + i
	}
	return &Dense[T]{rows: rows, cols: cols, stride: m.stride, order: m.order, data: m.data[start:]}
}

// Triangular returns a triangular view of m.
func (m *Dense[T]) Triangular(uplo Uplo, diag Diag) Triangular[T, *Dense[T]] {
	return Triangular[T, *Dense[T]]{Mat: m, Uplo: uplo, Diag: diag}
}

// Strided is a borrowed dense vector view: element i lives at data[i*inc].
type Strided[T Scalar] struct {
	n    int
	inc  int
	data []T
}

// NewVector returns a contiguous view over all of data.
func NewVector[T Scalar](data []T) *Strided[T] {
	return &Strided[T]{n: len(data), inc: 1, data: data}
}

// NewStrided returns an n-element view with spacing inc.
//
// Panics if inc < 1 or data is too short.
func NewStrided[T Scalar](n, inc int, data []T) *Strided[T] {
	if n < 0 {
		panic(errShape)
	}
	if inc < 1 {
		panic(errInc)
	}
	if n > 0 && len(data) < (n-1)*inc+1 {
		panic(errShortData)
	}
	return &Strided[T]{n: n, inc: inc, data: data}
}

// Len returns the number of elements.
func (v *Strided[T]) Len() int {
	return v.n
}

// StorageKind reports StorageDense. Safe on a nil receiver.
func (*Strided[T]) StorageKind() StorageKind {
	return StorageDense
}

// AtVec returns element i.
func (v *Strided[T]) AtVec(i int) T {
	if uint(i) >= uint(v.n) {
		panic(errIndex)
	}
	return v.data[i*v.inc]
}

// SetVec writes element i.
func (v *Strided[T]) SetVec(i int, x T) {
	if uint(i) >= uint(v.n) {
		panic(errIndex)
	}
	v.data[i*v.inc] = x
}

// RawVector returns the storage descriptor of the view.
func (v *Strided[T]) RawVector() VectorStorage[T] {
	return VectorStorage[T]{Data: v.data, Inc: v.inc}
}
