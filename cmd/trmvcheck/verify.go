package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/contrib/trmv"
)

var errMismatch = errors.New("paths disagree")

// fill returns k as a T; complex members of la.Scalar rule out a plain
// conversion.
func fill[T la.Scalar](k int) T {
	var v T
	for range k {
		v++
	}
	return v
}

// shape is one operand configuration to check.
type shape struct {
	n     int
	order la.Orientation
	uplo  la.Uplo
	diag  la.Diag
}

func (s shape) String() string {
	return fmt.Sprintf("n=%d %v %v %v", s.n, s.order, s.uplo, s.diag)
}

// verifyShape runs the dispatched kernel on padded dense storage and the
// generic kernel on a gathered copy and reports whether they agree.
// Entries are small integers so every path is exact.
func verifyShape[T la.Scalar](s shape) bool {
	ld := s.n + 1
	a := make([]T, max(s.n*ld, 1))
	for i := range a {
		a[i] = fill[T](i%7 + 1)
	}
	x := make([]T, s.n)
	for i := range x {
		x[i] = fill[T](i%3 + 1)
	}
	m := la.NewDenseStride(s.n, s.n, ld, a, s.order)

	got := slices.Clone(x)
	trmv.Trmv(m.Triangular(s.uplo, s.diag), la.NewVector(got))

	want := slices.Clone(x)
	index := make([]int, s.n)
	for i := range index {
		index[i] = i
	}
	trmv.BaseTrmv(la.CSRFromDense[T](m).Triangular(s.uplo, s.diag), la.NewIndexed(want, index))

	return slices.Equal(got, want)
}

// checker verifies one element type over a set of shapes.
type checker struct {
	path  func() la.Path
	check func(shape) bool
}

func checkerFor[T la.Scalar]() checker {
	return checker{
		path:  trmv.Resolve[T, *la.Dense[T], *la.Strided[T]],
		check: verifyShape[T],
	}
}

var checkers = map[string]checker{
	"float32":    checkerFor[float32](),
	"float64":    checkerFor[float64](),
	"complex64":  checkerFor[complex64](),
	"complex128": checkerFor[complex128](),
	"int":        checkerFor[int](),
	"int32":      checkerFor[int32](),
	"uint64":     checkerFor[uint64](),
}

func runVerify(out io.Writer, types []string, sizes []int) error {
	known := lo.Keys(checkers)
	slices.Sort(known)
	if unknown := lo.Without(types, known...); len(unknown) > 0 {
		return fmt.Errorf("unknown element types %s (known: %s)", strings.Join(unknown, ", "), strings.Join(known, ", "))
	}
	if bad := lo.Filter(sizes, func(n, _ int) bool { return n < 0 }); len(bad) > 0 {
		return fmt.Errorf("negative sizes %v", bad)
	}

	var failed int
	for _, name := range lo.Uniq(types) {
		c := checkers[name]
		var total, bad int
		for _, n := range sizes {
			for _, order := range []la.Orientation{la.RowMajor, la.ColMajor} {
				for _, uplo := range []la.Uplo{la.Upper, la.Lower} {
					for _, diag := range []la.Diag{la.NonUnit, la.Unit} {
						s := shape{n: n, order: order, uplo: uplo, diag: diag}
						total++
						if !c.check(s) {
							bad++
							log.Error().Str("type", name).Stringer("shape", s).Msg("mismatch")
						}
					}
				}
			}
		}
		status := "ok"
		if bad > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-4s %-10s path=%-7s %d/%d\n", status, name, c.path(), total-bad, total)
		failed += bad
	}
	if failed > 0 {
		return fmt.Errorf("%w in %d configurations", errMismatch, failed)
	}
	return nil
}

func newVerifyCmd() *cobra.Command {
	var (
		types []string
		sizes []int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the dispatched and generic paths agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.OutOrStdout(), types, sizes)
		},
	}
	cmd.Flags().StringSliceVar(&types, "types", []string{"float32", "float64", "complex64", "complex128", "int"}, "element types to check")
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{0, 1, 2, 5, 16, 33}, "matrix orders to check")
	return cmd
}
