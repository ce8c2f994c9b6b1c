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

// Package native is the narrow call contract between the kernels in
// la/contrib and optimized BLAS implementations.
//
// A Backend exposes the CBLAS-shaped level 2 entry points the kernels need:
// an explicit memory order, gonum's blas enums for triangle, transpose and
// diagonal, a dimension, a matrix base
// with leading dimension and a vector base with increment. Entry points
// return nothing; invalid arguments are a caller bug and panic or worse.
//
// gonum's enums are character codes ('U', 'N', ...). Backends that call C
// translate them to the CBLAS values (CblasUpper = 121, CblasNoTrans = 111,
// CblasNonUnit = 131, ...); Order already uses the CBLAS values.
//
// Backends register themselves from init functions:
//
//   - "gonum": gonum.org/v1/gonum/blas/gonum, pure Go, always present
//   - "netlib": gonum.org/v1/netlib, system CBLAS (build with -tags netlib)
//   - "accelerate": Apple Accelerate (darwin with cgo)
//
// The highest priority backend is used unless LA_BACKEND names another
// one. LA_NO_NATIVE=1 disables native paths entirely.
package native

import "gonum.org/v1/gonum/blas"

// Order is the CBLAS memory order argument.
type Order int

const (
	RowMajor Order = 101
	ColMajor Order = 102
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return "Order(?)"
	}
}

const (
	badOrder     = "native: illegal order"
	badConjTrans = "native: conjugate transpose of a column-major operand is not supported"
)

// Backend is a native BLAS implementation.
type Backend interface {
	// Name identifies the backend in LA_BACKEND and in diagnostics.
	Name() string

	// ?trmv computes x = op(A) * x for an n×n triangular A.
	Strmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int)
	Dtrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int)
	Ctrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int)
	Ztrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int)

	// ?tbmv computes x = op(A) * x for an n×n triangular band A with k
	// off-diagonals. k == 0 is a diagonal matrix.
	Stbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float32, lda int, x []float32, incX int)
	Dtbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float64, lda int, x []float64, incX int)
	Ctbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex64, lda int, x []complex64, incX int)
	Ztbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex128, lda int, x []complex128, incX int)
}
