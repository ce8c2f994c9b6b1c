package la

import "slices"

// CSR is a compressed sparse row matrix. Row i's non-zeros are
// values[indptr[i]:indptr[i+1]] at columns indices[indptr[i]:indptr[i+1]],
// with the column indices of a row strictly increasing.
type CSR[T Scalar] struct {
	rows, cols int
	indptr     []int
	indices    []int
	values     []T
}

// NewCSR wraps caller-owned CSR arrays.
//
// Panics if the arrays are inconsistent.
func NewCSR[T Scalar](rows, cols int, indptr, indices []int, values []T) *CSR[T] {
	if rows < 0 || cols < 0 {
		panic(errShape)
	}
	if len(indptr) != rows+1 || indptr[0] != 0 || len(indices) != len(values) || indptr[rows] != len(values) {
		panic(errCSR)
	}
	for i := range rows {
		row := indices[indptr[i]:indptr[i+1]]
		for k, j := range row {
			if j < 0 || j >= cols || (k > 0 && row[k-1] >= j) {
				panic(errCSR)
			}
		}
	}
	return &CSR[T]{rows: rows, cols: cols, indptr: indptr, indices: indices, values: values}
}

// CSRFromDense compresses the non-zero entries of m.
func CSRFromDense[T Scalar](m Matrix[T]) *CSR[T] {
	rows, cols := m.Dims()
	var zero T
	indptr := make([]int, 1, rows+1)
	var indices []int
	var values []T
	for i := range rows {
		for j := range cols {
			if v := m.At(i, j); v != zero {
				indices = append(indices, j)
				values = append(values, v)
			}
		}
		indptr = append(indptr, len(values))
	}
	return &CSR[T]{rows: rows, cols: cols, indptr: indptr, indices: indices, values: values}
}

func (m *CSR[T]) Dims() (int, int) { return m.rows, m.cols }

// Orientation reports RowMajor, the order rows are compressed in.
func (m *CSR[T]) Orientation() Orientation { return RowMajor }

// StorageKind reports StorageSparse. Safe on a nil receiver.
func (*CSR[T]) StorageKind() StorageKind { return StorageSparse }

// NNZ returns the number of stored entries.
func (m *CSR[T]) NNZ() int { return len(m.values) }

// At returns element (i, j), zero when it is not stored.
func (m *CSR[T]) At(i, j int) T {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(errIndex)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	if k, ok := slices.BinarySearch(m.indices[lo:hi], j); ok {
		return m.values[lo+k]
	}
	var zero T
	return zero
}

// Triangular returns a triangular view of m.
func (m *CSR[T]) Triangular(uplo Uplo, diag Diag) Triangular[T, *CSR[T]] {
	return Triangular[T, *CSR[T]]{Mat: m, Uplo: uplo, Diag: diag}
}

// Indexed is a vector gathered from a caller-owned buffer: element i is
// data[index[i]]. Index entries must be distinct for in-place kernels.
type Indexed[T Scalar] struct {
	data  []T
	index []int
}

// NewIndexed returns a gathered view.
//
// Panics if any index falls outside data.
func NewIndexed[T Scalar](data []T, index []int) *Indexed[T] {
	for _, k := range index {
		if k < 0 || k >= len(data) {
			panic(errIndexed)
		}
	}
	return &Indexed[T]{data: data, index: index}
}

func (v *Indexed[T]) Len() int { return len(v.index) }

// StorageKind reports StorageIndexed. Safe on a nil receiver.
func (*Indexed[T]) StorageKind() StorageKind { return StorageIndexed }

func (v *Indexed[T]) AtVec(i int) T { return v.data[v.index[i]] }

func (v *Indexed[T]) SetVec(i int, x T) { v.data[v.index[i]] = x }
