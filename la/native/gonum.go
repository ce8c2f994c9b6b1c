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

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

func init() {
	Global.Register(Entry{Backend: RowMajorBackend("gonum", gonum.Implementation{}), Priority: 0})
}

// RowMajorLevel2 is the method set shared by gonum's pure Go BLAS and the
// netlib cgo bindings. Both only accept row-major operands.
type RowMajorLevel2 interface {
	Strmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int)
	Dtrmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int)
	Ctrmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int)
	Ztrmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int)
	Stbmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float32, lda int, x []float32, incX int)
	Dtbmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float64, lda int, x []float64, incX int)
	Ctbmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex64, lda int, x []complex64, incX int)
	Ztbmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex128, lda int, x []complex128, incX int)
}

// RowMajorBackend adapts a row-major only implementation to Backend.
//
// A column-major n×n matrix with leading dimension lda occupies the same
// memory as its transpose stored row-major, so column-major calls are
// forwarded with the triangle flipped and the transpose toggled.
func RowMajorBackend(name string, impl RowMajorLevel2) Backend {
	return rowMajor{name: name, impl: impl}
}

type rowMajor struct {
	name string
	impl RowMajorLevel2
}

func (b rowMajor) Name() string { return b.name }

// toRowMajor rewrites (uplo, trans) for a row-major implementation.
func toRowMajor(o Order, ul blas.Uplo, tA blas.Transpose) (blas.Uplo, blas.Transpose) {
	switch o {
	case RowMajor:
		return ul, tA
	case ColMajor:
	default:
		panic(badOrder)
	}
	switch ul {
	case blas.Upper:
		ul = blas.Lower
	case blas.Lower:
		ul = blas.Upper
	}
	switch tA {
	case blas.NoTrans:
		tA = blas.Trans
	case blas.Trans:
		tA = blas.NoTrans
	case blas.ConjTrans:
		// conj(A)ᵀ of a column-major A would be a conjugated row-major
		// NoTrans, which the level 2 interface cannot express.
		panic(badConjTrans)
	}
	return ul, tA
}

func (b rowMajor) Strmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Strmv(ul, tA, d, n, a, lda, x, incX)
}

func (b rowMajor) Dtrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Dtrmv(ul, tA, d, n, a, lda, x, incX)
}

func (b rowMajor) Ctrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Ctrmv(ul, tA, d, n, a, lda, x, incX)
}

func (b rowMajor) Ztrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Ztrmv(ul, tA, d, n, a, lda, x, incX)
}

func (b rowMajor) Stbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float32, lda int, x []float32, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Stbmv(ul, tA, d, n, k, a, lda, x, incX)
}

func (b rowMajor) Dtbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float64, lda int, x []float64, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Dtbmv(ul, tA, d, n, k, a, lda, x, incX)
}

func (b rowMajor) Ctbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex64, lda int, x []complex64, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Ctbmv(ul, tA, d, n, k, a, lda, x, incX)
}

func (b rowMajor) Ztbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex128, lda int, x []complex128, incX int) {
	ul, tA = toRowMajor(o, ul, tA)
	b.impl.Ztbmv(ul, tA, d, n, k, a, lda, x, incX)
}
