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

// Package trmv provides the in-place triangular matrix-vector product
// x := A·x with type-directed dispatch to a native BLAS backend.
//
// # Dispatch
//
// Trmv is generic over the element type and the concrete matrix and vector
// view types. For each (matrix type, vector type) pairing the decision is
// made once and cached:
//
//   - native: both operands are dense, expose raw storage, and the element
//     type is exactly float32, float64, complex64 or complex128. The
//     storage descriptors go to ?trmv of the selected la/native backend.
//   - raw: both operands expose raw storage but the element type has no
//     native entry point (integers, named float types). The reference
//     sweep runs over the raw buffers.
//   - generic: anything else (CSR matrices, gathered vectors, interface
//     typed operands). The reference sweep runs through At/AtVec/SetVec.
//
// All three produce the same result; only speed differs.
//
// # Triangles
//
// Only the Uplo triangle of A is read. With Diag set to la.Unit the
// diagonal is taken to be ones and not read either. The transpose is never
// a parameter: pass m.T() with the opposite triangle instead.
//
// # Example Usage
//
//	a := la.NewDense(2, 2, []float64{
//	    2, 3,
//	    0, 4,
//	}, la.RowMajor)
//	x := la.NewVector([]float64{1, 1})
//	trmv.Trmv(a.Triangular(la.Upper, la.NonUnit), x)
//	// x = [5, 4]
//
// # Preconditions
//
// A must be square and x.Len() must equal its order; the matrix and vector
// buffers must not alias. Violations panic.
package trmv
