package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/contrib/trmv"
	"github.com/ajroetker/go-linalg/la/native"
)

// timeIt returns the mean duration of f over iters calls.
func timeIt(iters int, f func()) time.Duration {
	start := time.Now()
	for range iters {
		f()
	}
	return time.Since(start) / time.Duration(iters)
}

func runBench(out io.Writer, n, iters int, backend string) error {
	if n < 1 || iters < 1 {
		return fmt.Errorf("size and iterations must be positive")
	}
	if backend != "" {
		if err := native.Use(backend); err != nil {
			return err
		}
	}

	a := make([]float64, n*n)
	for i := range a {
		a[i] = 1 / float64(i%13+1)
	}
	x := make([]float64, n)
	tri := la.NewDense(n, n, a, la.RowMajor).Triangular(la.Upper, la.NonUnit)
	v := la.NewVector(x)
	reset := func() {
		for i := range x {
			x[i] = 1
		}
	}

	dispatched := timeIt(iters, func() { reset(); trmv.Trmv(tri, v) })
	generic := timeIt(iters, func() { reset(); trmv.BaseTrmv(tri, v) })

	path := trmv.Resolve[float64, *la.Dense[float64], *la.Strided[float64]]()
	name := "-"
	if b := native.Current(); b != nil && path == la.PathNative {
		name = b.Name()
	}
	fmt.Fprintf(out, "n=%d float64 row-major upper\n", n)
	fmt.Fprintf(out, "  %-8s %-10s %v\n", path, name, dispatched)
	fmt.Fprintf(out, "  %-8s %-10s %v\n", la.PathGeneric, "-", generic)
	fmt.Fprintf(out, "  speedup  %.2fx\n", float64(generic)/float64(max(dispatched, 1)))
	return nil
}

func newBenchCmd() *cobra.Command {
	var (
		n, iters int
		backend  string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the dispatched path against the generic fallback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), n, iters, backend)
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", 512, "matrix order")
	cmd.Flags().IntVar(&iters, "iters", 200, "iterations per path")
	cmd.Flags().StringVar(&backend, "backend", "", "native backend to select (default: automatic)")
	return cmd
}
