package trmv_test

import (
	"fmt"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/contrib/trmv"
)

func ExampleTrmv() {
	a := la.NewDense(2, 2, []float64{
		2, 3,
		0, 4,
	}, la.RowMajor)
	x := []float64{1, 1}
	trmv.Trmv(a.Triangular(la.Upper, la.NonUnit), la.NewVector(x))
	fmt.Println(x)
	// Output: [5 4]
}

func ExampleTrmv_transpose() {
	// A^T·x with A upper: the transposed view holds a lower triangle.
	a := la.NewDense(2, 2, []float64{
		2, 3,
		0, 4,
	}, la.RowMajor)
	x := []float64{1, 1}
	trmv.Trmv(a.T().Triangular(la.Lower, la.NonUnit), la.NewVector(x))
	fmt.Println(x)
	// Output: [2 7]
}

func ExampleResolve() {
	fmt.Println(trmv.Resolve[int, *la.Dense[int], *la.Strided[int]]())
	fmt.Println(trmv.Resolve[float64, *la.CSR[float64], *la.Strided[float64]]())
	// Output:
	// raw
	// generic
}
