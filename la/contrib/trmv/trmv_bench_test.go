package trmv

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-linalg/la"
)

func BenchmarkTrmv(b *testing.B) {
	for _, n := range []int{16, 128, 512} {
		f := newFixture[float64](n, 0, 1, la.RowMajor)
		a, x := f.views()
		tri := a.Triangular(la.Upper, la.NonUnit)

		b.Run(fmt.Sprintf("dispatch/%d", n), func(b *testing.B) {
			for b.Loop() {
				Trmv(tri, x)
			}
		})
		b.Run(fmt.Sprintf("raw/%d", n), func(b *testing.B) {
			for b.Loop() {
				trmvRaw(tri, x)
			}
		})
		b.Run(fmt.Sprintf("generic/%d", n), func(b *testing.B) {
			for b.Loop() {
				BaseTrmv(tri, x)
			}
		})
		b.Run(fmt.Sprintf("csr/%d", n), func(b *testing.B) {
			csr := la.CSRFromDense[float64](a).Triangular(la.Upper, la.NonUnit)
			for b.Loop() {
				Trmv(csr, x)
			}
		})
	}
}
