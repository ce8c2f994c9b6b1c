package normalizer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestConstructors(t *testing.T) {
	n := New(3, true)
	assert.Equal(t, "Normalizer", n.Name())
	assert.True(t, n.HasOffset())
	assert.Equal(t, 3, n.InputSize())
	assert.Equal(t, 3, n.OutputSize())
	assert.Equal(t, 6, n.NumberOfParameters())
	assert.Equal(t, []float64{0, 0, 0}, n.Offset())

	d := NewFromDiagonal([]float64{1, 2})
	assert.False(t, d.HasOffset())
	assert.Nil(t, d.Offset())
	assert.Equal(t, 2, d.NumberOfParameters())

	o := NewWithOffset([]float64{1, 2}, []float64{3, 4})
	assert.Equal(t, []float64{1, 2, 3, 4}, o.ParameterVector())

	assert.PanicsWithValue(t, errOffset, func() { NewWithOffset([]float64{1}, nil) })
	assert.PanicsWithValue(t, errDim, func() { New(-1, false) })
}

func TestConstructorsCopy(t *testing.T) {
	diag := []float64{1, 2}
	n := NewFromDiagonal(diag)
	diag[0] = 100
	n.Diagonal()[1] = 100
	assert.Equal(t, []float64{1, 2}, n.Diagonal())
}

func TestParameterVectorRoundTrip(t *testing.T) {
	n := New(2, true)
	n.SetParameterVector([]float64{2, 3, -1, 1})
	assert.Equal(t, []float64{2, 3}, n.Diagonal())
	assert.Equal(t, []float64{-1, 1}, n.Offset())
	assert.Equal(t, []float64{2, 3, -1, 1}, n.ParameterVector())

	assert.PanicsWithValue(t, errParams, func() { n.SetParameterVector([]float64{1, 2}) })
}

func TestSetDimension(t *testing.T) {
	n := NewFromDiagonal([]float64{1, 2, 3})
	n.SetDimension(2, false)
	assert.Equal(t, []float64{1, 2}, n.Diagonal())

	n.SetDimension(4, true)
	assert.Equal(t, []float64{1, 2, 0, 0}, n.Diagonal())
	assert.Equal(t, []float64{0, 0, 0, 0}, n.Offset())
}

func TestEval(t *testing.T) {
	n := NewWithOffset([]float64{2, 0.5}, []float64{1, -1})
	input := mat.NewDense(3, 2, []float64{
		1, 2,
		0, 0,
		-1, 4,
	})
	got := n.Eval(input)
	want := mat.NewDense(3, 2, []float64{
		3, 0,
		1, -1,
		-1, 1,
	})
	assert.True(t, mat.Equal(want, got), "got %v", mat.Formatted(got))
	assert.Equal(t, 1.0, input.At(0, 0), "input untouched")

	assert.PanicsWithValue(t, errWidth, func() { n.Eval(mat.NewDense(1, 3, nil)) })
}

func TestEvalVectorMatchesEval(t *testing.T) {
	for _, n := range []*Normalizer{
		NewFromDiagonal([]float64{1.5, -2, 0.25}),
		NewWithOffset([]float64{1.5, -2, 0.25}, []float64{0.1, 0.2, 0.3}),
	} {
		x := []float64{4, 5, 6}
		got := n.EvalVector(x)
		want := n.Eval(mat.NewDense(1, 3, x)).RawRowView(0)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
			t.Errorf("offset=%v (-want +got):\n%s", n.HasOffset(), diff)
		}
		assert.Equal(t, []float64{4, 5, 6}, x)
	}
}

func TestEvalRowsMatchEvalVector(t *testing.T) {
	n := NewWithOffset([]float64{2, -0.5}, []float64{1, 0})
	full := mat.NewDense(4, 3, []float64{
		1, 2, 9,
		3, 4, 9,
		-5, 6, 9,
		0, 8, 9,
	})
	batch := full.Slice(0, 4, 0, 2)
	got := n.Eval(batch)
	r, c := got.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)
	for i := range r {
		want := n.EvalVector(mat.Row(nil, i, batch))
		if diff := cmp.Diff(want, got.RawRowView(i)); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", i, diff)
		}
	}
	assert.Equal(t, 9.0, full.At(2, 2))
	assert.Equal(t, 1.0, full.At(0, 0))
}

func TestPersistence(t *testing.T) {
	for _, n := range []*Normalizer{
		NewFromDiagonal([]float64{1, 2}),
		NewWithOffset([]float64{0.5, -3}, []float64{7, 8}),
		New(0, false),
	} {
		var buf bytes.Buffer
		require.NoError(t, n.Write(&buf))

		got := New(5, true)
		require.NoError(t, got.Read(&buf))
		assert.Equal(t, n.HasOffset(), got.HasOffset())
		assert.Equal(t, n.InputSize(), got.InputSize())
		assert.Equal(t, n.ParameterVector(), got.ParameterVector())
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "syntax", doc: "diagonal: [1, 2", want: ErrDecode},
		{name: "type", doc: "diagonal: yes", want: ErrDecode},
		{name: "offset length", doc: "diagonal: [1, 2]\noffset: [1]\nhas_offset: true\n", want: ErrDimension},
		{name: "stray offset", doc: "diagonal: [1]\noffset: [1]\nhas_offset: false\n", want: ErrDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewFromDiagonal([]float64{9})
			err := n.Read(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, []float64{9}, n.Diagonal(), "model unchanged on error")
		})
	}
}
