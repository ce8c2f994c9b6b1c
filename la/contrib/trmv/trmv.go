package trmv

//go:generate go run ../../../cmd/kernelgen --kernel trmv --output zz_trmv_gen.go

import "github.com/ajroetker/go-linalg/la"

// Trmv computes the triangular matrix-vector product x := A·x in place.
//
// The code path is chosen once per (M, V) type pairing; see the package
// documentation. Which path ran is not observable in x.
//
// Panics if A is not square, if x.Len() differs from its order, or if the
// Uplo/Diag flags are invalid.
func Trmv[T la.Scalar, M la.Matrix[T], V la.Vector[T]](a la.Triangular[T, M], x V) {
	kernel, _ := kernelFor[T, M, V]()
	kernel(a, x)
}
