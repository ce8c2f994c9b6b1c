package la

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

func TestTriangularFromTriDense(t *testing.T) {
	td := mat.NewTriDense(3, mat.Lower, []float64{
		1, 0, 0,
		2, 3, 0,
		4, 5, 6,
	})
	tri := TriangularFromTriDense(td)
	assert.Equal(t, Lower, tri.Uplo)
	assert.Equal(t, NonUnit, tri.Diag)
	assert.Equal(t, 3, tri.N())
	for i := range 3 {
		for j := 0; j <= i; j++ {
			assert.Equal(t, td.At(i, j), tri.Mat.At(i, j))
		}
	}

	// Writes through the view land in the gonum matrix.
	tri.Mat.Set(2, 1, 50)
	assert.Equal(t, 50.0, td.At(2, 1))
}

func TestTriangularFromBlas(t *testing.T) {
	b := blas32.Triangular{
		Uplo: blas.Upper, Diag: blas.Unit, N: 2, Stride: 3,
		Data: []float32{9, 1, 0, 0, 9, 0},
	}
	tri := TriangularFromBlas32(b)
	assert.Equal(t, Upper, tri.Uplo)
	assert.Equal(t, Unit, tri.Diag)
	assert.Equal(t, 3, tri.Mat.RawMatrix().LeadingDim)
	assert.Equal(t, float32(1), tri.Mat.At(0, 1))
}

func TestVectorFromGonum(t *testing.T) {
	v := VectorFromBlas32(blas32.Vector{N: 2, Inc: 3, Data: []float32{1, 0, 0, 2}})
	assert.Equal(t, float32(2), v.AtVec(1))

	z := VectorFromCBlas128(cblas128.Vector{N: 1, Inc: 1, Data: []complex128{1i}})
	assert.Equal(t, 1i, z.AtVec(0))

	vd := mat.NewVecDense(3, []float64{1, 2, 3})
	s := VectorFromVecDense(vd)
	s.SetVec(2, 30)
	assert.Equal(t, 30.0, vd.AtVec(2))

	empty := VectorFromBlas32(blas32.Vector{})
	assert.Zero(t, empty.Len())
}
