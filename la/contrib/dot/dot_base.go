package dot

import "github.com/ajroetker/go-linalg/la"

// Dot computes the dot product of two slices.
// The result is the sum of element-wise products: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
func Dot[T la.Scalar](a, b []T) T {
	n := min(len(a), len(b))
	var sum T
	for i := range n {
		sum += a[i] * b[i]
	}
	return sum
}

// Strided computes Σ(a[i*incA] * b[i*incB]) for i in [0, n).
//
// Panics if an increment is not positive or a slice is too short.
func Strided[T la.Scalar](n int, a []T, incA int, b []T, incB int) T {
	if n <= 0 {
		return 0
	}
	if incA < 1 || incB < 1 {
		panic("dot: increment must be positive")
	}
	if len(a) <= (n-1)*incA || len(b) <= (n-1)*incB {
		panic("dot: slice too small")
	}
	if incA == 1 && incB == 1 {
		return Dot(a[:n], b[:n])
	}
	var sum T
	var ia, ib int
	for range n {
		sum += a[ia] * b[ib]
		ia += incA
		ib += incB
	}
	return sum
}
