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

package la

import "reflect"

// storageTagger is satisfied by every Matrix and Vector.
type storageTagger interface {
	StorageKind() StorageKind
}

// StorageOf returns the storage tag of container type C without needing a
// value. When C is itself an interface type the concrete layout is unknown
// and StorageOther is returned.
func StorageOf[C storageTagger]() StorageKind {
	if reflect.TypeFor[C]().Kind() == reflect.Interface {
		return StorageOther
	}
	var zero C
	return zero.StorageKind()
}

// HasRawMatrix reports whether matrix type M exposes its buffer.
func HasRawMatrix[T Scalar, M Matrix[T]]() bool {
	if reflect.TypeFor[M]().Kind() == reflect.Interface {
		return false
	}
	var zero M
	_, ok := any(zero).(RawMatrixer[T])
	return ok
}

// HasRawVector reports whether vector type V exposes its buffer.
func HasRawVector[T Scalar, V Vector[T]]() bool {
	if reflect.TypeFor[V]().Kind() == reflect.Interface {
		return false
	}
	var zero V
	_, ok := any(zero).(RawVectorer[T])
	return ok
}

// PairKey identifies a concrete (operand A, operand B) type pairing.
// Kernel packages key their resolved dispatch decisions on it.
type PairKey struct {
	A, B reflect.Type
}

// PairOf returns the key of the pairing (A, B).
func PairOf[A, B any]() PairKey {
	return PairKey{A: reflect.TypeFor[A](), B: reflect.TypeFor[B]()}
}

// Path is the code path a kernel resolved to for a type pairing.
type Path int

const (
	// PathGeneric runs the reference kernel through At/AtVec/SetVec.
	PathGeneric Path = iota

	// PathRaw runs the reference kernel directly over raw buffers; used
	// for dense containers whose element type has no native entry point.
	PathRaw

	// PathNative hands the storage descriptors to the native backend.
	PathNative
)

func (p Path) String() string {
	switch p {
	case PathGeneric:
		return "generic"
	case PathRaw:
		return "raw"
	case PathNative:
		return "native"
	default:
		return "unknown"
	}
}
