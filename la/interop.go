package la

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
	"gonum.org/v1/gonum/mat"
)

// Zero-copy views over gonum containers. gonum stores matrices row-major
// and keeps fill/diagonal conventions in blas enums.

func fromGonumTriangular[T Scalar](ul blas.Uplo, d blas.Diag, n, stride int, data []T) Triangular[T, *Dense[T]] {
	uplo := Upper
	if ul == blas.Lower {
		uplo = Lower
	}
	diag := NonUnit
	if d == blas.Unit {
		diag = Unit
	}
	return NewDenseStride(n, n, stride, data, RowMajor).Triangular(uplo, diag)
}

func fromGonumVector[T Scalar](n, inc int, data []T) *Strided[T] {
	if n == 0 {
		return &Strided[T]{inc: 1}
	}
	return NewStrided(n, inc, data)
}

// TriangularFromBlas32 views a blas32.Triangular.
func TriangularFromBlas32(t blas32.Triangular) Triangular[float32, *Dense[float32]] {
	return fromGonumTriangular(t.Uplo, t.Diag, t.N, t.Stride, t.Data)
}

// TriangularFromBlas64 views a blas64.Triangular.
func TriangularFromBlas64(t blas64.Triangular) Triangular[float64, *Dense[float64]] {
	return fromGonumTriangular(t.Uplo, t.Diag, t.N, t.Stride, t.Data)
}

// TriangularFromCBlas64 views a cblas64.Triangular.
func TriangularFromCBlas64(t cblas64.Triangular) Triangular[complex64, *Dense[complex64]] {
	return fromGonumTriangular(t.Uplo, t.Diag, t.N, t.Stride, t.Data)
}

// TriangularFromCBlas128 views a cblas128.Triangular.
func TriangularFromCBlas128(t cblas128.Triangular) Triangular[complex128, *Dense[complex128]] {
	return fromGonumTriangular(t.Uplo, t.Diag, t.N, t.Stride, t.Data)
}

// TriangularFromTriDense views the triangle held by a *mat.TriDense.
func TriangularFromTriDense(t *mat.TriDense) Triangular[float64, *Dense[float64]] {
	return TriangularFromBlas64(t.RawTriangular())
}

// VectorFromBlas32 views a blas32.Vector. Panics on a non-positive Inc.
func VectorFromBlas32(v blas32.Vector) *Strided[float32] {
	return fromGonumVector(v.N, v.Inc, v.Data)
}

// VectorFromBlas64 views a blas64.Vector. Panics on a non-positive Inc.
func VectorFromBlas64(v blas64.Vector) *Strided[float64] {
	return fromGonumVector(v.N, v.Inc, v.Data)
}

// VectorFromCBlas64 views a cblas64.Vector. Panics on a non-positive Inc.
func VectorFromCBlas64(v cblas64.Vector) *Strided[complex64] {
	return fromGonumVector(v.N, v.Inc, v.Data)
}

// VectorFromCBlas128 views a cblas128.Vector. Panics on a non-positive Inc.
func VectorFromCBlas128(v cblas128.Vector) *Strided[complex128] {
	return fromGonumVector(v.N, v.Inc, v.Data)
}

// VectorFromVecDense views a *mat.VecDense.
func VectorFromVecDense(v *mat.VecDense) *Strided[float64] {
	return VectorFromBlas64(v.RawVector())
}
