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

package trmv

import (
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/native"
)

const (
	errNotSquare = "trmv: matrix is not square"
	errLength    = "trmv: vector length does not match matrix order"
	errUplo      = "trmv: illegal triangle"
	errDiag      = "trmv: illegal diagonal"
	errOrder     = "trmv: illegal orientation"
	errLdA       = "trmv: leading dimension smaller than order"
	errIncX      = "trmv: vector increment must be positive"
	errShortA    = "trmv: matrix storage too small"
	errShortX    = "trmv: vector storage too small"
	errElem      = "trmv: no native entry point for element type"
	errNoBackend = "trmv: no native backend selected"
)

// checkShapes validates the operands shared by every path and returns
// the order of A.
func checkShapes[T la.Scalar, M la.Matrix[T], V la.Vector[T]](a la.Triangular[T, M], x V) int {
	r, c := a.Mat.Dims()
	if r != c {
		panic(errNotSquare)
	}
	if x.Len() != r {
		panic(errLength)
	}
	if a.Uplo != la.Upper && a.Uplo != la.Lower {
		panic(errUplo)
	}
	if a.Diag != la.NonUnit && a.Diag != la.Unit {
		panic(errDiag)
	}
	return r
}

func nativeOrder(o la.Orientation) native.Order {
	switch o {
	case la.RowMajor:
		return native.RowMajor
	case la.ColMajor:
		return native.ColMajor
	}
	panic(errOrder)
}

func nativeUplo(u la.Uplo) blas.Uplo {
	if u == la.Lower {
		return blas.Lower
	}
	return blas.Upper
}

func nativeDiag(d la.Diag) blas.Diag {
	if d == la.Unit {
		return blas.Unit
	}
	return blas.NonUnit
}

// trmvNative maps the view metadata onto the CBLAS calling convention and
// issues a single ?trmv call. The transpose is always NoTrans: callers
// pre-orient A through its view.
func trmvNative[T la.Scalar, M la.Matrix[T], V la.Vector[T]](a la.Triangular[T, M], x V) {
	n := checkShapes(a, x)
	if n == 0 {
		return
	}

	sa := any(a.Mat).(la.RawMatrixer[T]).RawMatrix()
	sx := any(x).(la.RawVectorer[T]).RawVector()
	if sa.LeadingDim < n {
		panic(errLdA)
	}
	if sx.Inc < 1 {
		panic(errIncX)
	}
	if len(sa.Data) < (n-1)*sa.LeadingDim+n {
		panic(errShortA)
	}
	if len(sx.Data) < (n-1)*sx.Inc+1 {
		panic(errShortX)
	}

	b := native.Current()
	if b == nil {
		panic(errNoBackend)
	}
	call(b, nativeOrder(sa.Order), nativeUplo(a.Uplo), nativeDiag(a.Diag), n, sa.Data, sa.LeadingDim, sx.Data, sx.Inc)
}

// call selects the typed entry point. The trait table guarantees T is
// one of the four BLAS types here.
func call[T la.Scalar](b native.Backend, o native.Order, ul blas.Uplo, d blas.Diag, n int, a []T, lda int, x []T, incX int) {
	switch a := any(a).(type) {
	case []float32:
		b.Strmv(o, ul, blas.NoTrans, d, n, a, lda, any(x).([]float32), incX)
	case []float64:
		b.Dtrmv(o, ul, blas.NoTrans, d, n, a, lda, any(x).([]float64), incX)
	case []complex64:
		b.Ctrmv(o, ul, blas.NoTrans, d, n, a, lda, any(x).([]complex64), incX)
	case []complex128:
		b.Ztrmv(o, ul, blas.NoTrans, d, n, a, lda, any(x).([]complex128), incX)
	default:
		panic(errElem)
	}
}
