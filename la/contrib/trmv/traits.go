package trmv

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/native"
)

// HasOptimized reports whether a native ?trmv exists for operands with
// the given storage and element tags. It is false unless both operands
// are dense and share one of the four BLAS element types.
func HasOptimized(sa, sb la.StorageKind, ea, eb la.ElemKind) bool {
	if sa != la.StorageDense || sb != la.StorageDense || ea != eb {
		return false
	}
	switch ea {
	case la.ElemFloat32, la.ElemFloat64, la.ElemComplex64, la.ElemComplex128:
		return true
	default:
		return false
	}
}

// plan is the cached decision for one (M, V) pairing. kernel holds a
// func(la.Triangular[T, M], V).
type plan struct {
	path   la.Path
	kernel any
}

var plans sync.Map // la.PairKey -> plan

// Resolve returns the path Trmv takes for matrix type M and vector type V.
func Resolve[T la.Scalar, M la.Matrix[T], V la.Vector[T]]() la.Path {
	_, path := kernelFor[T, M, V]()
	return path
}

func kernelFor[T la.Scalar, M la.Matrix[T], V la.Vector[T]]() (func(la.Triangular[T, M], V), la.Path) {
	key := la.PairOf[M, V]()
	if p, ok := plans.Load(key); ok {
		p := p.(plan)
		return p.kernel.(func(la.Triangular[T, M], V)), p.path
	}

	p := resolve[T, M, V]()
	actual, _ := plans.LoadOrStore(key, p)
	p = actual.(plan)
	log.Debug().
		Stringer("matrix", key.A).
		Stringer("vector", key.B).
		Stringer("path", p.path).
		Msg("trmv resolved")
	return p.kernel.(func(la.Triangular[T, M], V)), p.path
}

func resolve[T la.Scalar, M la.Matrix[T], V la.Vector[T]]() plan {
	raw := la.HasRawMatrix[T, M]() && la.HasRawVector[T, V]()
	kind := la.KindOf[T]()
	if raw && native.Current() != nil && HasOptimized(la.StorageOf[M](), la.StorageOf[V](), kind, kind) {
		return plan{path: la.PathNative, kernel: trmvNative[T, M, V]}
	}
	if raw {
		return plan{path: la.PathRaw, kernel: trmvRaw[T, M, V]}
	}
	return plan{path: la.PathGeneric, kernel: BaseTrmv[T, M, V]}
}
