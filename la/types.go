// Copyright 2025 go-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package la provides borrowed matrix and vector views, their storage
// descriptors and the compile-time style trait tags that kernel packages
// (see la/contrib/...) use to choose between a native BLAS backend and a
// generic Go implementation.
//
// Basic usage:
//
//	import (
//	    "github.com/ajroetker/go-linalg/la"
//	    "github.com/ajroetker/go-linalg/la/contrib/trmv"
//	)
//
//	a := la.NewDense(2, 2, []float64{2, 3, 0, 4}, la.RowMajor)
//	x := la.NewVector([]float64{1, 1})
//	trmv.Trmv(a.Triangular(la.Upper, la.NonUnit), x)
//	// x = [5, 4]
package la

// Floats is a constraint for real floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for complex floating-point types.
type Complexes interface {
	~complex64 | ~complex128
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Scalar is the element constraint accepted by every view and kernel.
// Anything supporting + and * qualifies; only the four exact BLAS types
// are ever routed to a native backend.
type Scalar interface {
	SignedInts | UnsignedInts | Floats | Complexes
}

// ElemKind tags the element type of a container for kernel dispatch.
type ElemKind int

const (
	// ElemOther is any element type without a native entry point,
	// including named types whose underlying type is a BLAS type.
	ElemOther ElemKind = iota

	// ElemFloat32 is real single precision (BLAS "s").
	ElemFloat32

	// ElemFloat64 is real double precision (BLAS "d").
	ElemFloat64

	// ElemComplex64 is complex single precision (BLAS "c").
	ElemComplex64

	// ElemComplex128 is complex double precision (BLAS "z").
	ElemComplex128
)

// String returns a human-readable name for the element kind.
func (k ElemKind) String() string {
	switch k {
	case ElemOther:
		return "other"
	case ElemFloat32:
		return "float32"
	case ElemFloat64:
		return "float64"
	case ElemComplex64:
		return "complex64"
	case ElemComplex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// KindOf returns the element kind of T. Only the exact predeclared types
// map to a BLAS kind; `type Celsius float64` is ElemOther.
func KindOf[T Scalar]() ElemKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return ElemFloat32
	case float64:
		return ElemFloat64
	case complex64:
		return ElemComplex64
	case complex128:
		return ElemComplex128
	default:
		return ElemOther
	}
}
