// Package normalizer implements the affine model y = diag(a)·x + b used
// to rescale feature vectors, typically to zero mean and unit variance.
//
// The offset b is optional. Single samples and each row of a *mat.Dense
// batch go through the diagmv kernel.
package normalizer

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-linalg/la"
	"github.com/ajroetker/go-linalg/la/contrib/diagmv"
)

var (
	// ErrDimension is returned when persisted parameters are inconsistent.
	ErrDimension = errors.New("normalizer: dimension mismatch")

	// ErrDecode is returned when a persisted model cannot be parsed.
	ErrDecode = errors.New("normalizer: malformed model")
)

const (
	errParams = "normalizer: parameter vector has wrong size"
	errOffset = "normalizer: diagonal and offset lengths differ"
	errWidth  = "normalizer: input width does not match dimension"
	errDim    = "normalizer: negative dimension"
)

// Normalizer is the model y = diag(a)·x + b.
type Normalizer struct {
	a         []float64
	b         []float64
	hasOffset bool
}

// New returns a dim-dimensional model with a zero diagonal and, when
// hasOffset is set, a zero offset.
func New(dim int, hasOffset bool) *Normalizer {
	n := &Normalizer{}
	n.SetDimension(dim, hasOffset)
	return n
}

// NewFromDiagonal returns a model scaling by diag with no offset.
func NewFromDiagonal(diag []float64) *Normalizer {
	n := &Normalizer{}
	n.SetDiagonal(diag)
	return n
}

// NewWithOffset returns the model y = diag(diag)·x + offset.
//
// Panics if the lengths differ.
func NewWithOffset(diag, offset []float64) *Normalizer {
	n := &Normalizer{}
	n.SetDiagonalOffset(diag, offset)
	return n
}

// Name returns "Normalizer".
func (n *Normalizer) Name() string { return "Normalizer" }

// HasOffset reports whether b is part of the model.
func (n *Normalizer) HasOffset() bool { return n.hasOffset }

// Diagonal returns a copy of a.
func (n *Normalizer) Diagonal() []float64 { return slices.Clone(n.a) }

// Offset returns a copy of b, or nil when the model has no offset.
func (n *Normalizer) Offset() []float64 {
	if !n.hasOffset {
		return nil
	}
	return slices.Clone(n.b)
}

func (n *Normalizer) InputSize() int  { return len(n.a) }
func (n *Normalizer) OutputSize() int { return len(n.a) }

// NumberOfParameters is the dimension, doubled when there is an offset.
func (n *Normalizer) NumberOfParameters() int {
	if n.hasOffset {
		return 2 * len(n.a)
	}
	return len(n.a)
}

// ParameterVector returns a followed by b when there is an offset.
func (n *Normalizer) ParameterVector() []float64 {
	p := make([]float64, 0, n.NumberOfParameters())
	p = append(p, n.a...)
	if n.hasOffset {
		p = append(p, n.b...)
	}
	return p
}

// SetParameterVector is the inverse of ParameterVector.
//
// Panics if len(p) != NumberOfParameters().
func (n *Normalizer) SetParameterVector(p []float64) {
	if len(p) != n.NumberOfParameters() {
		panic(errParams)
	}
	dim := len(n.a)
	copy(n.a, p[:dim])
	if n.hasOffset {
		copy(n.b, p[dim:])
	}
}

// SetDimension resizes the model, keeping existing leading entries and
// zero filling new ones.
func (n *Normalizer) SetDimension(dim int, hasOffset bool) {
	if dim < 0 {
		panic(errDim)
	}
	n.a = resize(n.a, dim)
	n.hasOffset = hasOffset
	if hasOffset {
		n.b = resize(n.b, dim)
	}
}

// SetDiagonal replaces a with a copy of diag and drops the offset.
func (n *Normalizer) SetDiagonal(diag []float64) {
	n.a = slices.Clone(diag)
	n.hasOffset = false
}

// SetDiagonalOffset replaces both a and b.
//
// Panics if the lengths differ.
func (n *Normalizer) SetDiagonalOffset(diag, offset []float64) {
	if len(diag) != len(offset) {
		panic(errOffset)
	}
	n.a = slices.Clone(diag)
	n.b = slices.Clone(offset)
	n.hasOffset = true
}

func resize(s []float64, n int) []float64 {
	if n <= len(s) {
		return s[:n:n]
	}
	return append(s, make([]float64, n-len(s))...)
}

// Eval applies the model to every row of input and returns the results as
// a new matrix of the same shape.
//
// Panics if input does not have InputSize() columns.
func (n *Normalizer) Eval(input mat.Matrix) *mat.Dense {
	r, c := input.Dims()
	if c != len(n.a) {
		panic(errWidth)
	}
	out := mat.DenseCopyOf(input)
	d := la.NewVector(n.a)
	for i := range r {
		row := out.RawRowView(i)
		diagmv.Diagmv[float64](d, la.NewVector(row))
		if n.hasOffset {
			floats.Add(row, n.b)
		}
	}
	return out
}

// EvalVector applies the model to a single sample.
//
// Panics if len(x) != InputSize().
func (n *Normalizer) EvalVector(x []float64) []float64 {
	y := slices.Clone(x)
	if y == nil {
		y = []float64{}
	}
	diagmv.Diagmv[float64](la.NewVector(n.a), la.NewVector(y))
	if n.hasOffset {
		floats.Add(y, n.b)
	}
	return y
}

// state is the persisted form of a Normalizer.
type state struct {
	Diagonal  []float64 `yaml:"diagonal"`
	Offset    []float64 `yaml:"offset,omitempty"`
	HasOffset bool      `yaml:"has_offset"`
}

// Write serializes the model as YAML.
func (n *Normalizer) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	s := state{Diagonal: n.a, HasOffset: n.hasOffset}
	if n.hasOffset {
		s.Offset = n.b
	}
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("normalizer: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("normalizer: encode: %w", err)
	}
	return nil
}

// Read replaces the model with one previously stored by Write. On error
// the receiver is left unchanged.
func (n *Normalizer) Read(r io.Reader) error {
	var s state
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if s.HasOffset && len(s.Offset) != len(s.Diagonal) {
		return fmt.Errorf("%w: %d diagonal entries, %d offset entries", ErrDimension, len(s.Diagonal), len(s.Offset))
	}
	if !s.HasOffset && len(s.Offset) != 0 {
		return fmt.Errorf("%w: offset present but has_offset is false", ErrDimension)
	}
	if s.HasOffset {
		n.SetDiagonalOffset(s.Diagonal, s.Offset)
	} else {
		n.SetDiagonal(s.Diagonal)
	}
	return nil
}
