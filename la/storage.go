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

// StorageKind tags how a container lays out its elements.
// A container type returns the same kind for its whole lifetime and
// must answer from a nil receiver.
type StorageKind int

const (
	// StorageOther is any layout the kernels know nothing about.
	StorageOther StorageKind = iota

	// StorageDense is a fixed stride between consecutive elements
	// (vectors) or consecutive rows/columns (matrices).
	StorageDense

	// StorageSparse stores only structurally non-zero entries.
	StorageSparse

	// StorageIndexed gathers elements through an index slice.
	StorageIndexed
)

// String returns a human-readable name for the storage kind.
func (k StorageKind) String() string {
	switch k {
	case StorageOther:
		return "other"
	case StorageDense:
		return "dense"
	case StorageSparse:
		return "sparse"
	case StorageIndexed:
		return "indexed"
	default:
		return "unknown"
	}
}

// Orientation is the memory order of a matrix.
type Orientation int

const (
	// RowMajor stores rows contiguously; LeadingDim is the row stride.
	RowMajor Orientation = iota

	// ColMajor stores columns contiguously; LeadingDim is the column stride.
	ColMajor
)

// String returns "row-major" or "col-major".
func (o Orientation) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == RowMajor {
		return ColMajor
	}
	return RowMajor
}

// Uplo selects which triangle of a matrix holds data.
type Uplo int

const (
	// Upper means data lives on and above the diagonal.
	Upper Uplo = iota
	// Lower means data lives on and below the diagonal.
	Lower
)

// String returns "upper" or "lower".
func (u Uplo) String() string {
	if u == Lower {
		return "lower"
	}
	return "upper"
}

// Flip returns the opposite triangle.
func (u Uplo) Flip() Uplo {
	if u == Upper {
		return Lower
	}
	return Upper
}

// Diag says whether the diagonal is stored or implicitly all ones.
type Diag int

const (
	// NonUnit means the diagonal entries are stored and read.
	NonUnit Diag = iota
	// Unit means every diagonal entry is one and storage is never read.
	Unit
)

// String returns "non-unit" or "unit".
func (d Diag) String() string {
	if d == Unit {
		return "unit"
	}
	return "non-unit"
}

// MatrixStorage describes the raw buffer behind a dense matrix view.
// Data starts at element (0, 0). It is derived right before a native
// call and must not be retained.
type MatrixStorage[T Scalar] struct {
	Data       []T
	LeadingDim int
	Order      Orientation
}

// VectorStorage describes the raw buffer behind a dense vector view.
// Data starts at element 0; Inc is always positive.
type VectorStorage[T Scalar] struct {
	Data []T
	Inc  int
}

// Matrix is a borrowed 2D view.
type Matrix[T Scalar] interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// At returns element (i, j).
	At(i, j int) T

	// Orientation returns the memory order of the view.
	Orientation() Orientation

	// StorageKind returns the storage tag of the container type.
	StorageKind() StorageKind
}

// Vector is a borrowed 1D view that can be updated in place.
type Vector[T Scalar] interface {
	Len() int
	AtVec(i int) T
	SetVec(i int, v T)
	StorageKind() StorageKind
}

// RawMatrixer is implemented by matrices that can hand their buffer
// to a native routine.
type RawMatrixer[T Scalar] interface {
	RawMatrix() MatrixStorage[T]
}

// RawVectorer is implemented by vectors that can hand their buffer
// to a native routine.
type RawVectorer[T Scalar] interface {
	RawVector() VectorStorage[T]
}

// Triangular pairs a square matrix view with its fill and diagonal
// conventions. Entries outside the Uplo triangle are never read, and
// neither is the diagonal when Diag is Unit.
type Triangular[T Scalar, M Matrix[T]] struct {
	Mat  M
	Uplo Uplo
	Diag Diag
}

// NewTriangular returns a triangular view of m.
func NewTriangular[T Scalar, M Matrix[T]](m M, uplo Uplo, diag Diag) Triangular[T, M] {
	return Triangular[T, M]{Mat: m, Uplo: uplo, Diag: diag}
}

// N returns the order of the triangular matrix. It panics when the
// underlying view is not square.
func (t Triangular[T, M]) N() int {
	r, c := t.Mat.Dims()
	if r != c {
		panic(errNotSquare)
	}
	return r
}
