package trmv

import (
	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/contrib/dot"
)

// BaseTrmv computes x := A·x for any element type and any storage.
//
// It makes one pass over the declared triangle of A: ascending rows for
// an upper triangle, descending rows for a lower one, so every x[j] is
// read before it is overwritten. Entries outside the triangle are never
// read, nor is the diagonal when a.Diag is la.Unit.
//
// Panics if A is not square or x.Len() differs from its order.
//
// Example:
//
//	// [[2 3]
//	//  [0 4]] · [1 1]
//	a := la.NewDense(2, 2, []int{2, 3, 0, 4}, la.RowMajor)
//	x := la.NewVector([]int{1, 1})
//	BaseTrmv(a.Triangular(la.Upper, la.NonUnit), x) // x = [5, 4]
func BaseTrmv[T la.Scalar, M la.Matrix[T], V la.Vector[T]](a la.Triangular[T, M], x V) {
	n := checkShapes(a, x)
	nonUnit := a.Diag != la.Unit

	if a.Uplo == la.Upper {
		for i := 0; i < n; i++ {
			sum := x.AtVec(i)
			if nonUnit {
				sum = a.Mat.At(i, i) * sum
			}
			for j := i + 1; j < n; j++ {
				sum += a.Mat.At(i, j) * x.AtVec(j)
			}
			x.SetVec(i, sum)
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		sum := x.AtVec(i)
		if nonUnit {
			sum = a.Mat.At(i, i) * sum
		}
		for j := 0; j < i; j++ {
			sum += a.Mat.At(i, j) * x.AtVec(j)
		}
		x.SetVec(i, sum)
	}
}

// trmvRaw is BaseTrmv over raw buffers, for dense operands whose element
// type the native backend does not handle.
func trmvRaw[T la.Scalar, M la.Matrix[T], V la.Vector[T]](a la.Triangular[T, M], x V) {
	n := checkShapes(a, x)
	if n == 0 {
		return
	}
	sa := any(a.Mat).(la.RawMatrixer[T]).RawMatrix()
	sx := any(x).(la.RawVectorer[T]).RawVector()
	ad, ld := sa.Data, sa.LeadingDim
	xd, inc := sx.Data, sx.Inc
	nonUnit := a.Diag != la.Unit

	// Walking along row i: step 1 when rows are contiguous, ld otherwise.
	// at(i, j) is the offset of element (i, j).
	step, at := 1, func(i, j int) int { return i*ld + j }
	if sa.Order == la.ColMajor {
		step, at = ld, func(i, j int) int { return j*ld + i }
	}

	if a.Uplo == la.Upper {
		for i := 0; i < n; i++ {
			sum := xd[i*inc]
			if nonUnit {
				sum = ad[i*ld+i] * sum
			}
			if m := n - i - 1; m > 0 {
				sum += dot.Strided(m, ad[at(i, i+1):], step, xd[(i+1)*inc:], inc)
			}
			xd[i*inc] = sum
		}
		return
	}
	for i := n - 1; i >= 0; i-- {
		sum := xd[i*inc]
		if nonUnit {
			sum = ad[i*ld+i] * sum
		}
		if i > 0 {
			sum += dot.Strided(i, ad[at(i, 0):], step, xd, inc)
		}
		xd[i*inc] = sum
	}
}
