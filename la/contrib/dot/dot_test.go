package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{name: "empty", a: nil, b: []float32{1}, want: 0},
		{name: "basic", a: []float32{1, 2, 3}, b: []float32{4, 5, 6}, want: 32},
		{name: "uneven uses shorter", a: []float32{1, 2, 3, 4}, b: []float32{1, 1}, want: 3},
		{name: "negative", a: []float32{-1, 2}, b: []float32{3, -4}, want: -11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dot(tt.a, tt.b))
		})
	}
}

func TestDotComplexIsUnconjugated(t *testing.T) {
	a := []complex128{1i, 2}
	b := []complex128{1i, 3}
	// i*i + 2*3 = -1 + 6
	assert.Equal(t, complex128(5), Dot(a, b))
}

func TestStrided(t *testing.T) {
	m := []int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	v := []int{1, 1, 1}

	assert.Equal(t, 12, Strided(3, m, 3, v, 1), "column 0")
	assert.Equal(t, 15, Strided(3, m[2:], 2, v, 1), "anti-diagonal")
	assert.Equal(t, 6, Strided(3, m, 1, v, 1), "row 0")
	assert.Equal(t, 0, Strided(0, m, 0, v, 0), "n == 0 ignores increments")
}

func TestStridedPanics(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.PanicsWithValue(t, "dot: increment must be positive", func() { Strided(2, a, 0, a, 1) })
	assert.PanicsWithValue(t, "dot: slice too small", func() { Strided(2, a, 3, a, 1) })
}
