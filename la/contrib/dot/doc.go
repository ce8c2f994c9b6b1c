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

// Package dot provides generic dot products over raw, possibly strided,
// buffers. The generic kernels in la/contrib use it when an operand
// exposes its storage but has no native entry point.
//
// # Dot Product
//
//   - Dot(a, b []T) T: Σ a[i]*b[i] over the shorter slice
//   - Strided(n, a, incA, b, incB) T: Σ a[i*incA]*b[i*incB] for i < n
//
// No conjugation is applied to complex inputs; this is BLAS "dotu".
//
// # Example Usage
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := dot.Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
//
//	// Column 0 of a row-major 3×3 matrix against a contiguous vector
//	m := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
//	v := []int{1, 1, 1}
//	dot.Strided(3, m, 3, v, 1) // 1 + 4 + 7 = 12
package dot
