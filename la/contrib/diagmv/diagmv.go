package diagmv

//go:generate go run ../../../cmd/kernelgen --kernel diagmv --output zz_diagmv_gen.go

import (
	"sync"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/native"
)

const (
	errLength    = "diagmv: vector lengths differ"
	errInc       = "diagmv: vector increment must be positive"
	errShort     = "diagmv: vector storage too small"
	errNoBackend = "diagmv: no native backend selected"
)

// HasOptimized reports whether a native ?tbmv exists for operands with the
// given storage and element tags.
func HasOptimized(sd, sx la.StorageKind, ed, ex la.ElemKind) bool {
	if sd != la.StorageDense || sx != la.StorageDense || ed != ex {
		return false
	}
	switch ed {
	case la.ElemFloat32, la.ElemFloat64, la.ElemComplex64, la.ElemComplex128:
		return true
	}
	return false
}

type plan struct {
	path   la.Path
	kernel any // func(D, V)
}

var plans sync.Map // la.PairKey -> plan

// Diagmv computes x[i] = d[i]·x[i] in place.
//
// Panics if d and x differ in length.
func Diagmv[T la.Scalar, D la.Vector[T], V la.Vector[T]](d D, x V) {
	kernel, _ := kernelFor[T, D, V]()
	kernel(d, x)
}

// Resolve returns the path Diagmv takes for diagonal type D and vector
// type V.
func Resolve[T la.Scalar, D la.Vector[T], V la.Vector[T]]() la.Path {
	_, path := kernelFor[T, D, V]()
	return path
}

func kernelFor[T la.Scalar, D la.Vector[T], V la.Vector[T]]() (func(D, V), la.Path) {
	key := la.PairOf[D, V]()
	p, ok := plans.Load(key)
	if !ok {
		p, _ = plans.LoadOrStore(key, resolve[T, D, V]())
		log.Debug().
			Stringer("diagonal", key.A).
			Stringer("vector", key.B).
			Stringer("path", p.(plan).path).
			Msg("diagmv resolved")
	}
	return p.(plan).kernel.(func(D, V)), p.(plan).path
}

func resolve[T la.Scalar, D la.Vector[T], V la.Vector[T]]() plan {
	raw := la.HasRawVector[T, D]() && la.HasRawVector[T, V]()
	kind := la.KindOf[T]()
	switch {
	case raw && native.Current() != nil && HasOptimized(la.StorageOf[D](), la.StorageOf[V](), kind, kind):
		return plan{path: la.PathNative, kernel: diagmvNative[T, D, V]}
	case raw:
		return plan{path: la.PathRaw, kernel: diagmvRaw[T, D, V]}
	default:
		return plan{path: la.PathGeneric, kernel: BaseDiagmv[T, D, V]}
	}
}

// BaseDiagmv computes x[i] = d[i]·x[i] through the view accessors.
func BaseDiagmv[T la.Scalar, D la.Vector[T], V la.Vector[T]](d D, x V) {
	n := checkLen[T](d, x)
	for i := range n {
		x.SetVec(i, d.AtVec(i)*x.AtVec(i))
	}
}

func checkLen[T la.Scalar, D la.Vector[T], V la.Vector[T]](d D, x V) int {
	n := d.Len()
	if x.Len() != n {
		panic(errLength)
	}
	return n
}

func rawPair[T la.Scalar, D la.Vector[T], V la.Vector[T]](d D, x V, n int) (la.VectorStorage[T], la.VectorStorage[T]) {
	sd := any(d).(la.RawVectorer[T]).RawVector()
	sx := any(x).(la.RawVectorer[T]).RawVector()
	if sd.Inc < 1 || sx.Inc < 1 {
		panic(errInc)
	}
	if len(sd.Data) < (n-1)*sd.Inc+1 || len(sx.Data) < (n-1)*sx.Inc+1 {
		panic(errShort)
	}
	return sd, sx
}

func diagmvRaw[T la.Scalar, D la.Vector[T], V la.Vector[T]](d D, x V) {
	n := checkLen[T](d, x)
	if n == 0 {
		return
	}
	sd, sx := rawPair[T](d, x, n)
	for i := range n {
		sx.Data[i*sx.Inc] *= sd.Data[i*sd.Inc]
	}
}

// diagmvNative treats d as an n×n band matrix with no off-diagonals:
// row-major band storage puts row i's diagonal at a[i*lda], so d's
// increment is the leading dimension.
func diagmvNative[T la.Scalar, D la.Vector[T], V la.Vector[T]](d D, x V) {
	n := checkLen[T](d, x)
	if n == 0 {
		return
	}
	sd, sx := rawPair[T](d, x, n)
	b := native.Current()
	if b == nil {
		panic(errNoBackend)
	}

	const o, ul, tA, dg = native.RowMajor, blas.Upper, blas.NoTrans, blas.NonUnit
	switch a := any(sd.Data).(type) {
	case []float32:
		b.Stbmv(o, ul, tA, dg, n, 0, a, sd.Inc, any(sx.Data).([]float32), sx.Inc)
	case []float64:
		b.Dtbmv(o, ul, tA, dg, n, 0, a, sd.Inc, any(sx.Data).([]float64), sx.Inc)
	case []complex64:
		b.Ctbmv(o, ul, tA, dg, n, 0, a, sd.Inc, any(sx.Data).([]complex64), sx.Inc)
	case []complex128:
		b.Ztbmv(o, ul, tA, dg, n, 0, a, sd.Inc, any(sx.Data).([]complex128), sx.Inc)
	default:
		diagmvRaw[T](d, x)
	}
}
