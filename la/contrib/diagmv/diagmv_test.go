package diagmv

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/native"
)

type kelvin float32

func TestHasOptimized(t *testing.T) {
	assert.True(t, HasOptimized(la.StorageDense, la.StorageDense, la.ElemComplex64, la.ElemComplex64))
	assert.False(t, HasOptimized(la.StorageDense, la.StorageIndexed, la.ElemFloat64, la.ElemFloat64))
	assert.False(t, HasOptimized(la.StorageDense, la.StorageDense, la.ElemFloat64, la.ElemFloat32))
	assert.False(t, HasOptimized(la.StorageDense, la.StorageDense, la.ElemOther, la.ElemOther))
}

func TestResolve(t *testing.T) {
	want := la.PathRaw
	if native.Enabled() {
		want = la.PathNative
	}
	assert.Equal(t, want, Resolve[float32, *la.Strided[float32], *la.Strided[float32]]())
	assert.Equal(t, la.PathRaw, Resolve[kelvin, *la.Strided[kelvin], *la.Strided[kelvin]]())
	assert.Equal(t, la.PathGeneric, Resolve[float32, *la.Indexed[float32], *la.Strided[float32]]())
}

func checkPaths[T la.Scalar](t *testing.T, d, x []T, inc int, want []T) {
	t.Helper()
	n := len(want)
	run := func(name string, kernel func(*la.Strided[T], *la.Strided[T])) {
		dd := make([]T, max((n-1)*inc+1, 0))
		xx := make([]T, max((n-1)*inc+1, 0))
		for i := range n {
			dd[i*inc], xx[i*inc] = d[i], x[i]
		}
		xv := la.NewStrided(n, inc, xx)
		kernel(la.NewStrided(n, inc, dd), xv)
		got := make([]T, n)
		for i := range got {
			got[i] = xv.AtVec(i)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s inc=%d (-want +got):\n%s", name, inc, diff)
		}
	}
	run("Diagmv", Diagmv[T, *la.Strided[T], *la.Strided[T]])
	run("BaseDiagmv", BaseDiagmv[T, *la.Strided[T], *la.Strided[T]])
	run("raw", diagmvRaw[T, *la.Strided[T], *la.Strided[T]])
	if native.Enabled() && native.Current() != nil {
		run("native", diagmvNative[T, *la.Strided[T], *la.Strided[T]])
	}
}

func TestPathEquivalence(t *testing.T) {
	for _, inc := range []int{1, 3} {
		t.Run(fmt.Sprint("inc=", inc), func(t *testing.T) {
			checkPaths(t, []float64{2, -1, 0.5}, []float64{1, 4, 8}, inc, []float64{2, -4, 4})
			checkPaths(t, []float32{3}, []float32{-2}, inc, []float32{-6})
			checkPaths(t, []complex128{1i, 2}, []complex128{1i, 1 + 1i}, inc, []complex128{-1, 2 + 2i})
			checkPaths(t, []complex64{2}, []complex64{1i}, inc, []complex64{2i})
			checkPaths(t, []int{2, 3, 4}, []int{5, 6, 7}, inc, []int{10, 18, 28})
			checkPaths(t, []kelvin{2, 0.5}, []kelvin{3, 4}, inc, []kelvin{6, 2})
			checkPaths(t, []float64{}, []float64{}, inc, []float64{})
		})
	}
}

func TestIndexed(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	x := la.NewIndexed(buf, []int{3, 0})
	Diagmv[float64](la.NewVector([]float64{10, 100}), x)
	assert.Equal(t, []float64{100, 2, 3, 40}, buf)
}

func TestLengthMismatch(t *testing.T) {
	assert.PanicsWithValue(t, errLength, func() {
		Diagmv[float64](la.NewVector([]float64{1, 2}), la.NewVector([]float64{1}))
	})
	assert.PanicsWithValue(t, errLength, func() {
		BaseDiagmv[int](la.NewVector([]int{1}), la.NewVector([]int{1, 2}))
	})
}
