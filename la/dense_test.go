package la

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseLayout(t *testing.T) {
	// 2×3 with leading dimension 4; the padding column holds 9.
	rm := NewDenseStride(2, 3, 4, []int{
		1, 2, 3, 9,
		4, 5, 6,
	}, RowMajor)
	cm := NewDenseStride(2, 3, 3, []int{
		1, 4, 9,
		2, 5, 9,
		3, 6,
	}, ColMajor)

	for _, m := range []*Dense[int]{rm, cm} {
		r, c := m.Dims()
		require.Equal(t, 2, r)
		require.Equal(t, 3, c)
		got := [][]int{{m.At(0, 0), m.At(0, 1), m.At(0, 2)}, {m.At(1, 0), m.At(1, 1), m.At(1, 2)}}
		assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, got, "%v", m.Orientation())
	}

	assert.Equal(t, MatrixStorage[int]{Data: rm.data, LeadingDim: 4, Order: RowMajor}, rm.RawMatrix())
	assert.Equal(t, 3, cm.RawMatrix().LeadingDim)
}

func TestDenseSetSharesBuffer(t *testing.T) {
	data := make([]float64, 4)
	m := NewDense(2, 2, data, ColMajor)
	m.Set(0, 1, 7)
	assert.Equal(t, []float64{0, 0, 7, 0}, data)
}

func TestDenseTranspose(t *testing.T) {
	m := NewDense(2, 3, []float32{1, 2, 3, 4, 5, 6}, RowMajor)
	mt := m.T()
	r, c := mt.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, ColMajor, mt.Orientation())
	for i := range 2 {
		for j := range 3 {
			assert.Equal(t, m.At(i, j), mt.At(j, i))
		}
	}
	mt.Set(2, 0, 30)
	assert.Equal(t, float32(30), m.At(0, 2))
}

func TestDenseSlice(t *testing.T) {
	m := NewDense(3, 3, []int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}, RowMajor)
	s := m.Slice(1, 3, 1, 3)
	assert.Equal(t, 5, s.At(0, 0))
	assert.Equal(t, 9, s.At(1, 1))
	assert.Equal(t, 3, s.RawMatrix().LeadingDim)

	c := NewDense(3, 3, []int{1, 4, 7, 2, 5, 8, 3, 6, 9}, ColMajor).Slice(0, 2, 1, 3)
	assert.Equal(t, 2, c.At(0, 0))
	assert.Equal(t, 6, c.At(1, 1))

	e := m.Slice(1, 1, 0, 3)
	r, _ := e.Dims()
	assert.Zero(t, r)

	assert.PanicsWithValue(t, errSliceBounds, func() { m.Slice(0, 4, 0, 1) })
}

func TestDensePanics(t *testing.T) {
	assert.PanicsWithValue(t, errShape, func() { NewDense(-1, 2, []int{}, RowMajor) })
	assert.PanicsWithValue(t, errStride, func() { NewDenseStride(2, 3, 2, make([]int, 6), RowMajor) })
	assert.PanicsWithValue(t, errShortData, func() { NewDense(2, 2, make([]int, 3), ColMajor) })
	assert.PanicsWithValue(t, errIndex, func() { NewDense(2, 2, make([]int, 4), RowMajor).At(2, 0) })
	assert.PanicsWithValue(t, errNotSquare, func() {
		NewDense(2, 3, make([]int, 6), RowMajor).Triangular(Upper, NonUnit).N()
	})
	assert.PanicsWithValue(t, errOrder, func() { NewDense(2, 2, []int{2, 3, 0, 4}, Orientation(5)) })
	assert.PanicsWithValue(t, errOrder, func() { NewDenseStride(2, 2, 2, make([]int, 4), Orientation(-1)) })
	assert.NotPanics(t, func() { NewDense[int](0, 0, nil, RowMajor) })
}

func TestStrided(t *testing.T) {
	data := []complex64{1, 0, 2, 0, 3}
	v := NewStrided(3, 2, data)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, complex64(3), v.AtVec(2))
	v.SetVec(1, 1i)
	assert.Equal(t, complex64(1i), data[2])
	assert.Equal(t, VectorStorage[complex64]{Data: data, Inc: 2}, v.RawVector())

	assert.PanicsWithValue(t, errInc, func() { NewStrided(2, 0, data) })
	assert.PanicsWithValue(t, errShortData, func() { NewStrided(4, 2, data) })
	assert.PanicsWithValue(t, errIndex, func() { v.AtVec(3) })
	assert.NotPanics(t, func() { NewStrided[int](0, 5, nil) })
}

func TestTriangularN(t *testing.T) {
	tri := NewTriangular[float64](NewDense(3, 3, make([]float64, 9), RowMajor), Lower, Unit)
	assert.Equal(t, 3, tri.N())
	assert.Equal(t, Lower, tri.Uplo)
	assert.Equal(t, Unit, tri.Diag)
}
